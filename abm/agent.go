package abm

import (
	"image/color"
	"math"
)

type State int

const (
	HEALTHY  State = 0
	INFECTED State = 1
	DEAD     State = 2
)

func (s State) String() string {
	switch s {
	case HEALTHY:
		return "healthy"
	case INFECTED:
		return "infected"
	case DEAD:
		return "dead"
	}
	return "unknown"
}

// Rates carried by an infected agent. DeathRate is kept and inherited on
// promotion but the death roll only reads InfectionRate.
type Infection struct {
	InfectionRate int
	DeathRate     int
}

// Data structure for each individual in the simulation.
// state is the variant tag: infection is only meaningful while the agent
// is INFECTED.
type Agent struct {
	x         float64
	y         float64
	velocity  int
	direction float64
	color     color.RGBA
	state     State
	infection Infection
}

// Creates a healthy agent
func NewAgent(x, y float64, velocity int, direction float64, c color.RGBA) *Agent {
	return &Agent{
		x:         x,
		y:         y,
		velocity:  Abs(velocity),
		direction: direction,
		color:     c,
		state:     HEALTHY,
	}
}

// Creates an infected agent with the given rates
func NewInfectious(x, y float64, velocity int, direction float64, c color.RGBA, infectionRate, deathRate int) *Agent {
	agent := NewAgent(x, y, velocity, direction, c)
	agent.state = INFECTED
	agent.infection = Infection{InfectionRate: infectionRate, DeathRate: deathRate}
	return agent
}

func (a *Agent) X() float64         { return a.x }
func (a *Agent) Y() float64         { return a.y }
func (a *Agent) Velocity() int      { return a.velocity }
func (a *Agent) Direction() float64 { return a.direction }
func (a *Agent) Color() color.RGBA  { return a.color }
func (a *Agent) State() State       { return a.state }

// Overwrites the heading. Angles are not normalised.
func (a *Agent) SetDirection(d float64) {
	a.direction = d
}

// Stores the magnitude of v, so callers may pass any sign.
func (a *Agent) SetVelocity(v int) {
	a.velocity = Abs(v)
}

// Returns the infection rates and whether the agent is infected at all.
func (a *Agent) Infection() (Infection, bool) {
	if a.state != INFECTED {
		return Infection{}, false
	}
	return a.infection, true
}

// Advances the agent one tick along its heading. No bounds check.
func (a *Agent) Move() {
	v := float64(a.velocity)
	a.x += v * math.Cos(a.direction)
	a.y += v * math.Sin(a.direction)
}

// Strengthens the strain carried by an infected agent and recolors it.
// DeathRate is left alone.
func (a *Agent) Mutate(increment int, c color.RGBA) {
	if a.state != INFECTED {
		return
	}
	a.infection.InfectionRate += increment
	a.color = c
}

func (a *Agent) Draw(r Renderer, radius float64) {
	r.DrawDisk(a.x, a.y, radius, a.color)
}

// Healthy -> infected, keeping position, velocity and heading.
func (a *Agent) infect(from Infection, c color.RGBA) {
	a.state = INFECTED
	a.infection = from
	a.color = c
}

// Infected -> dead. Dead agents rest where they fell.
func (a *Agent) kill(c color.RGBA) {
	a.state = DEAD
	a.infection = Infection{}
	a.velocity = 0
	a.direction = 0
	a.color = c
}

// Euclidean distance between the centres of two agents.
func (a *Agent) distance(b *Agent) float64 {
	return math.Hypot(b.x-a.x, b.y-a.y)
}
