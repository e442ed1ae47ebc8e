package abm

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
)

// The three partitions of a fixed-size population. Agents move between
// partitions by pointer when their state changes, so the partition sizes
// always add up to the population size.
type Population struct {
	size     int
	healthy  []*Agent
	infected []*Agent
	dead     []*Agent
}

// Creates count agents at uniformly random integer positions inside area,
// all with velocity 1 and a uniform heading in [-pi, pi]. When rates is
// non-nil the agents are infected with those rates.
func Generate(rng *rand.Rand, count int, area Area, c color.RGBA, rates *Infection) []*Agent {
	agents := make([]*Agent, 0, count)
	for range count {
		x := float64(area.MinX + rng.IntN(area.MaxX-area.MinX+1))
		y := float64(area.MinY + rng.IntN(area.MaxY-area.MinY+1))
		direction := -math.Pi + rng.Float64()*2*math.Pi
		if rates == nil {
			agents = append(agents, NewAgent(x, y, 1, direction, c))
		} else {
			agents = append(agents, NewInfectious(x, y, 1, direction, c, rates.InfectionRate, rates.DeathRate))
		}
	}
	return agents
}

// Seeds a population of NumAgents-1 healthy agents and one infected agent.
func NewPopulation(params *Parameters, rng *rand.Rand) *Population {
	seed := Infection{InfectionRate: params.InfectionRate, DeathRate: params.DeathRate}
	return NewPopulationFrom(
		Generate(rng, params.NumAgents-1, params.HealthyArea, params.Palette.Healthy, nil),
		Generate(rng, 1, params.SeedArea, params.Palette.Infected, &seed),
	)
}

// Builds a population out of explicit healthy and infected agents. Mostly
// useful for setting up scenarios.
func NewPopulationFrom(healthy, infected []*Agent) *Population {
	return &Population{
		size:     len(healthy) + len(infected),
		healthy:  healthy,
		infected: infected,
		dead:     make([]*Agent, 0, len(healthy)+len(infected)),
	}
}

// Resolves a flat index across healthy, then infected, then (only when
// includeDead is set) dead agents. Indices outside that range are a bug in
// the caller.
func (p *Population) Indexed(i int, includeDead bool) *Agent {
	if i < len(p.healthy) {
		return p.healthy[i]
	}
	i -= len(p.healthy)
	if i < len(p.infected) {
		return p.infected[i]
	}
	i -= len(p.infected)
	if includeDead && i < len(p.dead) {
		return p.dead[i]
	}
	panic(fmt.Sprintf("abm: index %d out of range (living %d, dead %d, includeDead %v)",
		i+len(p.healthy)+len(p.infected), p.LivingCount(), len(p.dead), includeDead))
}

func (p *Population) Len() int { return p.size }

// Number of agents that are not dead
func (p *Population) LivingCount() int { return p.size - len(p.dead) }

func (p *Population) NumHealthy() int  { return len(p.healthy) }
func (p *Population) NumInfected() int { return len(p.infected) }
func (p *Population) NumDead() int     { return len(p.dead) }

// The partition slices are handed out for reading, e.g. by a renderer.
// Callers must not modify them.
func (p *Population) Healthy() []*Agent  { return p.healthy }
func (p *Population) Infected() []*Agent { return p.infected }
func (p *Population) Dead() []*Agent     { return p.dead }

// Promotes every healthy agent within reach of one of the infected agents
// that existed when the pass started. Healthy agents are compacted in place
// so removal never shifts an index still to be visited. Returns the number
// of promotions.
func (p *Population) spread(reach float64, c color.RGBA) int {
	infectors := len(p.infected)
	promoted := 0
	for i := range infectors {
		infector := p.infected[i]
		kept := p.healthy[:0]
		for _, agent := range p.healthy {
			if infector.distance(agent) < reach {
				agent.infect(infector.infection, c)
				p.infected = append(p.infected, agent)
				promoted++
			} else {
				kept = append(kept, agent)
			}
		}
		clear(p.healthy[len(kept):])
		p.healthy = kept
	}
	return promoted
}

// Moves every infected agent for which dies returns true into the dead
// partition. Returns the number of deaths.
func (p *Population) bury(dies func(*Agent) bool, c color.RGBA) int {
	kept := p.infected[:0]
	deaths := 0
	for _, agent := range p.infected {
		if dies(agent) {
			agent.kill(c)
			p.dead = append(p.dead, agent)
			deaths++
		} else {
			kept = append(kept, agent)
		}
	}
	clear(p.infected[len(kept):])
	p.infected = kept
	return deaths
}
