// Package abm implements an agent based model of an epidemic: agents wander
// a bounded arena, infect each other on contact, the strain mutates and
// infected agents may die.

package abm

import (
	"io"
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Partition sizes after a frame, recorded for analysis and plotting.
type Census struct {
	Frame            int
	Healthy          int
	Infected         int
	Dead             int
	MaxInfectionRate int
	Promotions       int
	Deaths           int
	Mutations        int
}

// Data structure used by the simulation engine to manage
// state.
type Simulation struct {
	params     Parameters
	population *Population
	rng        *rand.Rand
	logger     *log.Logger
	frame      int
	speed      int
	history    []Census
	// Counters for the frame in progress
	promotions int
	deaths     int
	mutations  int
	endedAt    int
}

// Creates a new simulation with a freshly seeded population. A nil logger
// discards all output.
func NewSimulation(parameters *Parameters, rng *rand.Rand, logger *log.Logger) *Simulation {
	return NewSimulationWith(parameters, NewPopulation(parameters, rng), rng, logger)
}

// Creates a simulation around an existing population.
func NewSimulationWith(parameters *Parameters, population *Population, rng *rand.Rand, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulation{
		params:     *parameters,
		population: population,
		rng:        rng,
		logger:     logger,
		speed:      1,
		endedAt:    -1,
	}
}

func (s *Simulation) Population() *Population { return s.population }
func (s *Simulation) Parameters() Parameters  { return s.params }
func (s *Simulation) Frame() int              { return s.frame }
func (s *Simulation) Speed() int              { return s.speed }
func (s *Simulation) History() []Census       { return s.history }

// True once no infected agents are left; nothing can change any more
// except the wandering of the healthy.
func (s *Simulation) Over() bool {
	return s.population.NumInfected() == 0
}

// Advances the simulation by one frame. Agents are drawn on r as they are
// visited by the movement pass.
func (s *Simulation) Step(r Renderer) {
	s.promotions, s.deaths, s.mutations = 0, 0, 0
	s.MovePass(r)
	s.InfectionPass()
	s.DeathPass()
	s.MutationPass()
	s.frame++
	s.record()
}

// Draws every agent, dead ones included, and moves the ones that have a
// velocity. With probability 1/FPS an agent picks a new random heading.
func (s *Simulation) MovePass(r Renderer) {
	radius := float64(s.params.Radius)
	for i := range s.population.Len() {
		agent := s.population.Indexed(i, true)
		if r != nil {
			agent.Draw(r, radius)
		}
		if agent.Velocity() == 0 {
			continue
		}
		agent.Move()
		if s.rng.IntN(s.params.FPS) == 0 {
			agent.SetDirection(s.rng.Float64() * 2 * math.Pi)
		}
		if s.HitWall(agent.X(), agent.Y(), agent.Direction()) {
			agent.SetDirection(agent.Direction() + math.Pi)
		}
	}
}

// Reports whether an agent at (x, y) heading in direction is leaving the
// arena. The x axis is checked first and a hit there short-circuits the y
// check, so a corner hit reverses the heading once.
func (s *Simulation) HitWall(x, y, direction float64) bool {
	r := float64(s.params.Radius)
	width := float64(s.params.Width)
	height := float64(s.params.Height)
	cos := math.Cos(direction)
	if x-r < 0 && cos < 0 || x-r >= 0 && x+r > width && cos > 0 {
		return true
	}
	sin := math.Sin(direction)
	return y-r < 0 && sin < 0 || y-r >= 0 && y+r > height && sin > 0
}

// Promotes healthy agents whose disks overlap an infected agent.
func (s *Simulation) InfectionPass() {
	reach := 2 * float64(s.params.Radius)
	n := s.population.spread(reach, s.params.Palette.Infected)
	s.promotions += n
	if n > 0 {
		s.logger.Debug("infections", "frame", s.frame, "new", n,
			"infected", s.population.NumInfected())
	}
}

// The death ceiling shrinks as agents move faster. Agents frozen by a
// global speed of 0 roll as if they had velocity 1.
func (s *Simulation) deathCeiling(agent *Agent) int {
	velocity := max(agent.Velocity(), 1)
	return agent.infection.InfectionRate * s.params.FPS / velocity
}

// Rolls death for every infected agent. A roll of 0 in
// [0, infectionRate*FPS/velocity] kills the agent.
func (s *Simulation) DeathPass() {
	n := s.population.bury(func(agent *Agent) bool {
		return s.rng.IntN(s.deathCeiling(agent)+1) == 0
	}, s.params.Palette.Dead)
	s.deaths += n
	if n > 0 {
		s.logger.Debug("deaths", "frame", s.frame, "new", n,
			"dead", s.population.NumDead())
	}
}

// Rolls mutation for every infected agent. A roll of 0 in [0, Mutate]
// strengthens the strain.
func (s *Simulation) MutationPass() {
	for _, agent := range s.population.Infected() {
		if s.rng.IntN(s.params.Mutate+1) == 0 {
			agent.Mutate(s.params.MutateIncrement, s.params.Palette.Mutated)
			s.mutations++
			s.logger.Debug("mutation", "frame", s.frame,
				"infectionRate", agent.infection.InfectionRate)
		}
	}
}

// Sets the velocity of every living agent to |speed|. Dead agents stay put.
func (s *Simulation) SetGlobalSpeed(speed int) {
	s.speed = Abs(speed)
	for i := range s.population.LivingCount() {
		s.population.Indexed(i, false).SetVelocity(speed)
	}
	s.logger.Debug("speed changed", "speed", s.speed)
}

func (s *Simulation) record() {
	census := Census{
		Frame:      s.frame,
		Healthy:    s.population.NumHealthy(),
		Infected:   s.population.NumInfected(),
		Dead:       s.population.NumDead(),
		Promotions: s.promotions,
		Deaths:     s.deaths,
		Mutations:  s.mutations,
	}
	for _, agent := range s.population.Infected() {
		census.MaxInfectionRate = max(census.MaxInfectionRate, agent.infection.InfectionRate)
	}
	s.history = append(s.history, census)
	if s.endedAt < 0 && s.Over() {
		s.endedAt = s.frame
		s.logger.Info("epidemic over", "frame", s.frame,
			"healthy", census.Healthy, "dead", census.Dead)
	}
}
