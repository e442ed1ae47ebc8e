package abm

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestGenerate(t *testing.T) {
	area := Area{MinX: 650, MaxX: 750, MinY: 350, MaxY: 450}
	agents := Generate(newRand(), 500, area, white, nil)
	require.Len(t, agents, 500)
	for _, agent := range agents {
		require.GreaterOrEqual(t, agent.X(), 650.0)
		require.LessOrEqual(t, agent.X(), 750.0)
		require.GreaterOrEqual(t, agent.Y(), 350.0)
		require.LessOrEqual(t, agent.Y(), 450.0)
		require.Equal(t, math.Trunc(agent.X()), agent.X(), "positions are integers")
		require.Equal(t, 1, agent.Velocity())
		require.GreaterOrEqual(t, agent.Direction(), -math.Pi)
		require.LessOrEqual(t, agent.Direction(), math.Pi)
		require.Equal(t, HEALTHY, agent.State())
	}

	seeded := Generate(newRand(), 1, area, red, &Infection{InfectionRate: 20, DeathRate: 20})
	rates, ok := seeded[0].Infection()
	require.True(t, ok)
	assert.Equal(t, Infection{InfectionRate: 20, DeathRate: 20}, rates)
}

func TestNewPopulation(t *testing.T) {
	params := NewParameters()
	population := NewPopulation(&params, newRand())
	assert.Equal(t, params.NumAgents, population.Len())
	assert.Equal(t, params.NumAgents-1, population.NumHealthy())
	assert.Equal(t, 1, population.NumInfected())
	assert.Equal(t, 0, population.NumDead())
	assert.Equal(t, params.NumAgents, population.LivingCount())
}

func TestIndexed(t *testing.T) {
	h0 := NewAgent(0, 0, 1, 0, white)
	h1 := NewAgent(1, 0, 1, 0, white)
	i0 := NewInfectious(2, 0, 1, 0, red, 20, 20)
	i1 := NewInfectious(3, 0, 1, 0, red, 20, 20)
	population := NewPopulationFrom([]*Agent{h0, h1}, []*Agent{i0, i1})

	// Kill i0 so that the dead partition is not empty.
	population.bury(func(a *Agent) bool { return a == i0 }, black)

	assert.Equal(t, 3, population.LivingCount())
	assert.Same(t, h0, population.Indexed(0, false))
	assert.Same(t, h1, population.Indexed(1, false))
	assert.Same(t, i1, population.Indexed(2, false))
	assert.Same(t, i0, population.Indexed(3, true), "dead agents come last")
	assert.Panics(t, func() { population.Indexed(3, false) }, "dead agents are out of range unless included")
	assert.Panics(t, func() { population.Indexed(4, true) })
}

func TestBuryKeepsPartitionsConsistent(t *testing.T) {
	infected := make([]*Agent, 10)
	for i := range infected {
		infected[i] = NewInfectious(float64(i), 0, 2, 1, red, 20, 20)
	}
	population := NewPopulationFrom(nil, infected)
	deaths := population.bury(func(a *Agent) bool { return int(a.X())%2 == 0 }, black)
	assert.Equal(t, 5, deaths)
	assert.Equal(t, 5, population.NumInfected())
	assert.Equal(t, 5, population.NumDead())
	for _, agent := range population.Dead() {
		assert.Equal(t, DEAD, agent.State())
		assert.Equal(t, 0, agent.Velocity())
		assert.Equal(t, 0.0, agent.Direction())
		assert.Equal(t, black, agent.Color())
	}
	for i, agent := range population.Infected() {
		assert.Equal(t, float64(2*i+1), agent.X(), "survivors keep their order")
	}
}
