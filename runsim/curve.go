package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"episim/abm"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var errNoHistory = errors.New("no frames recorded")

// Builds the healthy/infected/dead curves over the recorded frames.
func curveChart(history []abm.Census) (chart.Chart, error) {
	if len(history) < 2 {
		return chart.Chart{}, errNoHistory
	}
	frames := make([]float64, len(history))
	healthy := make([]float64, len(history))
	infected := make([]float64, len(history))
	dead := make([]float64, len(history))
	for i, census := range history {
		frames[i] = float64(census.Frame)
		healthy[i] = float64(census.Healthy)
		infected[i] = float64(census.Infected)
		dead[i] = float64(census.Dead)
	}
	population := float64(history[0].Healthy + history[0].Infected + history[0].Dead)

	graph := chart.Chart{
		Width:  1024,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "Frame",
			Range: &chart.ContinuousRange{Min: frames[0], Max: frames[len(frames)-1]},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Agents",
			Range: &chart.ContinuousRange{Min: 0, Max: population},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Healthy",
				XValues: frames,
				YValues: healthy,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 90, G: 90, B: 90, A: 255},
					StrokeWidth: 2.0,
				},
			},
			chart.ContinuousSeries{
				Name:    "Infected",
				XValues: frames,
				YValues: infected,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2.0,
				},
			},
			chart.ContinuousSeries{
				Name:    "Dead",
				XValues: frames,
				YValues: dead,
				Style: chart.Style{
					StrokeColor: chart.ColorBlack,
					StrokeWidth: 2.0,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph, nil
}

func renderCurve(w io.Writer, history []abm.Census) error {
	graph, err := curveChart(history)
	if err != nil {
		return err
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// Writes the epidemic curve as a PNG file.
func writeCurve(path string, history []abm.Census) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := renderCurve(f, history); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
