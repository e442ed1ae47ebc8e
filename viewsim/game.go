package main

import (
	"fmt"
	"image/color"

	"episim/abm"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const maxSpeed = 9

var background = color.RGBA{R: 128, G: 128, B: 128, A: 255}

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game steps the simulation once per tick. Agents are queued while the
// movement pass visits them and drawn in Draw.
type Game struct {
	simulation *abm.Simulation
	frame      abm.Recorder
	paused     bool
}

func newGame(simulation *abm.Simulation) *Game {
	return &Game{simulation: simulation}
}

func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	speed := g.simulation.Speed()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && speed < maxSpeed {
		g.simulation.SetGlobalSpeed(speed + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && speed > 0 {
		g.simulation.SetGlobalSpeed(speed - 1)
	}
	for digit, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.simulation.SetGlobalSpeed(digit)
		}
	}
	return nil
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	if g.paused {
		return nil
	}
	g.frame.Reset()
	g.simulation.Step(&g.frame)
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, d := range g.frame.Disks() {
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(d.Radius), d.Color, true)
	}
	population := g.simulation.Population()
	status := ""
	if g.paused {
		status = " [paused]"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"frame %d  healthy %d  infected %d  dead %d  speed %d%s\nup/down or 0-9: speed  space: pause  esc: quit",
		g.simulation.Frame(), population.NumHealthy(), population.NumInfected(),
		population.NumDead(), g.simulation.Speed(), status))
}

// Layout returns the screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	params := g.simulation.Parameters()
	return params.Width, params.Height
}
