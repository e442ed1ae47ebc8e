package main

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"episim/abm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCurve(t *testing.T) {
	params := abm.NewParameters()
	params.NumAgents = 30
	simulation := abm.NewSimulation(&params, rand.New(rand.NewPCG(3, 4)), nil)
	for range 50 {
		simulation.Step(headless{})
	}

	var buf bytes.Buffer
	require.NoError(t, renderCurve(&buf, simulation.History()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "output is a PNG")
}

func TestRenderCurveNeedsHistory(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, renderCurve(&buf, nil), errNoHistory)
	assert.ErrorIs(t, renderCurve(&buf, []abm.Census{{Frame: 1, Healthy: 1}}), errNoHistory)
	assert.Zero(t, buf.Len())
}
