package main

import (
	"flag"
	"image/color"
	"math/rand/v2"
	"os"
	"time"

	"episim/abm"

	"github.com/charmbracelet/log"
)

type options struct {
	frames    int
	speed     int
	untilOver bool
	chart     string
	verbose   bool
}

// Process the command line arguments and return values set in
// parameters struct.
func processFlags() (abm.Parameters, options) {
	params := abm.NewParameters()
	p := params
	var o options
	flag.IntVar(&p.NumAgents, "agents", params.NumAgents, "Number of agents")
	flag.IntVar(&p.Width, "width", params.Width, "Width of the arena")
	flag.IntVar(&p.Height, "height", params.Height, "Height of the arena")
	flag.IntVar(&p.Radius, "radius", params.Radius, "Agent radius, half the contact distance")
	flag.IntVar(&p.FPS, "fps", params.FPS, "Frames per second used in the probabilities")
	flag.IntVar(&p.Mutate, "mutate", params.Mutate, "Mutation roll ceiling")
	flag.IntVar(&p.MutateIncrement, "mutation-step", params.MutateIncrement, "Infection rate added by a mutation")
	flag.IntVar(&p.InfectionRate, "infection-rate", params.InfectionRate, "Infection rate of the first infected agent")
	flag.IntVar(&p.DeathRate, "death-rate", params.DeathRate, "Death rate of the first infected agent")
	flag.IntVar(&o.frames, "frames", 3600, "Number of frames to simulate")
	flag.IntVar(&o.speed, "speed", 1, "Global agent speed")
	flag.BoolVar(&o.untilOver, "until-over", false, "Stop early once no infected agents remain")
	flag.StringVar(&o.chart, "chart", "", "Write the epidemic curve as PNG to this file")
	flag.BoolVar(&o.verbose, "v", false, "Log every infection, death and mutation")
	flag.Parse()
	return p, o
}

// Renderer that draws nothing, for running without a window.
type headless struct{}

func (headless) DrawDisk(x, y, radius float64, c color.RGBA) {}

func main() {
	parameters, opts := processFlags()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runsim",
	})
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if err := parameters.Validate(); err != nil {
		logger.Fatal("bad parameters", "err", err)
	}

	now := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(now, now>>1))
	simulation := abm.NewSimulation(&parameters, rng, logger)
	if opts.speed != 1 {
		simulation.SetGlobalSpeed(opts.speed)
	}

	logger.Info("simulation started", "agents", parameters.NumAgents, "frames", opts.frames)
	start := time.Now()
	for range opts.frames {
		simulation.Step(headless{})
		if opts.untilOver && simulation.Over() {
			break
		}
	}
	logger.Info("simulation finished", "frames", simulation.Frame(), "elapsed", time.Since(start))

	simulation.Analysis(os.Stdout)

	if opts.chart != "" {
		if err := writeCurve(opts.chart, simulation.History()); err != nil {
			logger.Fatal("writing chart", "file", opts.chart, "err", err)
		}
		logger.Info("chart written", "file", opts.chart)
	}
}
