package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"episim/abm"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Process the command line arguments and return values set in
// parameters struct.
func processFlags() abm.Parameters {
	params := abm.NewParameters()
	p := params
	flag.IntVar(&p.NumAgents, "agents", params.NumAgents, "Number of agents")
	flag.IntVar(&p.Width, "width", params.Width, "Width of the window and arena")
	flag.IntVar(&p.Height, "height", params.Height, "Height of the window and arena")
	flag.IntVar(&p.Radius, "radius", params.Radius, "Agent radius, half the contact distance")
	flag.IntVar(&p.FPS, "fps", params.FPS, "Frames per second")
	flag.IntVar(&p.Mutate, "mutate", params.Mutate, "Mutation roll ceiling")
	flag.Parse()
	return p
}

func main() {
	parameters := processFlags()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "viewsim",
	})
	if err := parameters.Validate(); err != nil {
		logger.Fatal("bad parameters", "err", err)
	}

	now := uint64(time.Now().UnixNano())
	simulation := abm.NewSimulation(&parameters, rand.New(rand.NewPCG(now, now>>1)), logger)
	game := newGame(simulation)

	ebiten.SetWindowSize(parameters.Width, parameters.Height)
	ebiten.SetWindowTitle("Epidemic Simulator")
	ebiten.SetTPS(parameters.FPS)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("window closed with error", "err", err)
	}
	simulation.Analysis(os.Stdout)
}
