package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusyFields_outOfRangePlayer(t *testing.T) {
	g, err := New(3, 3, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, g.BusyFields(0))
	assert.Equal(t, 0, g.BusyFields(3))
}

func TestGoldenPossible_falseWithNoOpponentStones(t *testing.T) {
	g, err := New(3, 3, 2, 2)
	require.NoError(t, err)
	require.True(t, g.Move(1, 0, 0))
	assert.False(t, g.GoldenPossible(1))
}

func TestGoldenPossible_restoresStateAfterScanning(t *testing.T) {
	g, err := New(4, 4, 3, 2)
	require.NoError(t, err)
	require.True(t, g.Move(1, 0, 0))
	require.True(t, g.Move(2, 1, 0))
	require.True(t, g.Move(3, 2, 2))

	before := snapshot(g)
	possible := g.GoldenPossible(1)
	assert.True(t, possible)
	assert.Equal(t, before, snapshot(g))
}

func TestGoldenPossible_falseOnceUsed(t *testing.T) {
	g, err := New(3, 1, 2, 3)
	require.NoError(t, err)
	require.True(t, g.Move(1, 0, 0))
	require.True(t, g.Move(2, 1, 0))
	require.True(t, g.GoldenMove(1, 1, 0))
	assert.False(t, g.GoldenPossible(1))
}
