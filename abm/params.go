package abm

import (
	"errors"
	"fmt"
	"image/color"
)

// Inclusive rectangle of integer coordinates in which agents are spawned.
type Area struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Display colors. Only the renderer looks at these.
type Palette struct {
	Healthy  color.RGBA
	Infected color.RGBA
	Mutated  color.RGBA
	Dead     color.RGBA
}

// These can be set on the command line
type Parameters struct {
	NumAgents       int
	Width           int
	Height          int
	Radius          int
	FPS             int
	Mutate          int
	MutateIncrement int
	InfectionRate   int
	DeathRate       int
	HealthyArea     Area
	SeedArea        Area
	Palette         Palette
}

// Sets the default values for the parameters
func NewParameters() Parameters {
	return Parameters{
		NumAgents:       100,
		Width:           1400,
		Height:          800,
		Radius:          10,
		FPS:             60,
		Mutate:          1000,
		MutateIncrement: 5,
		InfectionRate:   20,
		DeathRate:       20,
		HealthyArea:     Area{MinX: 100, MaxX: 1300, MinY: 100, MaxY: 700},
		SeedArea:        Area{MinX: 650, MaxX: 750, MinY: 350, MaxY: 450},
		Palette: Palette{
			Healthy:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Infected: color.RGBA{R: 255, A: 255},
			Mutated:  color.RGBA{R: 255, B: 255, A: 255},
			Dead:     color.RGBA{A: 255},
		},
	}
}

var ErrInvalidParameters = errors.New("invalid parameters")

// Checks the preconditions the simulation relies on. The passes themselves
// never re-check them, e.g. FPS 0 would divide by zero in the death roll.
func (p *Parameters) Validate() error {
	switch {
	case p.NumAgents < 1:
		return fmt.Errorf("%w: need at least one agent, got %d", ErrInvalidParameters, p.NumAgents)
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: arena %dx%d", ErrInvalidParameters, p.Width, p.Height)
	case p.Radius <= 0:
		return fmt.Errorf("%w: radius %d", ErrInvalidParameters, p.Radius)
	case p.FPS < 1:
		return fmt.Errorf("%w: fps %d", ErrInvalidParameters, p.FPS)
	case p.Mutate < 0:
		return fmt.Errorf("%w: mutate ceiling %d", ErrInvalidParameters, p.Mutate)
	case p.InfectionRate < 0 || p.DeathRate < 0:
		return fmt.Errorf("%w: rates %d/%d", ErrInvalidParameters, p.InfectionRate, p.DeathRate)
	}
	if err := p.HealthyArea.validate(); err != nil {
		return fmt.Errorf("%w: healthy area: %w", ErrInvalidParameters, err)
	}
	if err := p.SeedArea.validate(); err != nil {
		return fmt.Errorf("%w: seed area: %w", ErrInvalidParameters, err)
	}
	return nil
}

func (a Area) validate() error {
	if a.MinX > a.MaxX || a.MinY > a.MaxY {
		return fmt.Errorf("inverted rectangle [%d,%d]x[%d,%d]", a.MinX, a.MaxX, a.MinY, a.MaxY)
	}
	return nil
}
