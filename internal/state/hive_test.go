package state_test

import (
	"testing"

	. "github.com/janpfeifer/antsGo/internal/state"
	. "github.com/janpfeifer/antsGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleAndRelease(t *testing.T) {
	g := BuildGame(GameSpec{Tunnels: 2})
	h := g.Hive
	h.ScheduleWave(2, 3)
	assert.Equal(t, 3, h.Pending())
	assert.Equal(t, []int{2}, h.WaveTurns())

	// Releasing on a turn with no wave returns nothing and changes nothing.
	released := h.Release(g.Colony, 1)
	assert.Empty(t, released)
	assert.Equal(t, 3, h.Pending())

	// Releasing on the scheduled turn attaches every bee to some entrance.
	released = h.Release(g.Colony, 2)
	require.Len(t, released, 3)
	entrances := g.Colony.Entrances()
	for _, bee := range released {
		assert.Contains(t, entrances, bee.Place)
		assert.Equal(t, 3, bee.Armor)
		assert.Equal(t, 1, bee.Damage)
	}
	assert.Equal(t, 0, h.Pending())
	assert.Empty(t, h.WaveTurns())

	// The wave is gone: a second release of the same turn is a no-op.
	assert.Empty(t, h.Release(g.Colony, 2))
}

func TestScheduleSameTurnOverwrites(t *testing.T) {
	g := BuildGame(GameSpec{})
	h := g.Hive
	h.ScheduleWave(4, 2)
	h.ScheduleWave(4, 5)
	assert.Equal(t, 5, h.WaveSize(4))
	// The two replaced bees stay pending in the hive forever.
	assert.Equal(t, 7, h.Pending())

	released := h.Release(g.Colony, 4)
	assert.Len(t, released, 5)
	assert.Equal(t, 2, h.Pending())
}

func TestMultipleWaves(t *testing.T) {
	g := BuildGame(GameSpec{})
	h := g.Hive
	h.ScheduleWave(1, 1)
	h.ScheduleWave(3, 2)
	assert.Equal(t, []int{1, 3}, h.WaveTurns())
	assert.Equal(t, 1, h.WaveSize(1))
	assert.Equal(t, 2, h.WaveSize(3))
	assert.Equal(t, 0, h.WaveSize(2))
}

func TestAssaultPlanApply(t *testing.T) {
	h := NewHive(3, 1)
	plan := AssaultPlan{Start: 2, Interval: 3, Waves: 4, WaveSize: 2, Growth: 2}
	plan.Apply(h)
	assert.Equal(t, []int{2, 5, 8, 11}, h.WaveTurns())
	assert.Equal(t, 2, h.WaveSize(2))
	assert.Equal(t, 2, h.WaveSize(5))
	assert.Equal(t, 3, h.WaveSize(8))
	assert.Equal(t, 3, h.WaveSize(11))
	assert.Equal(t, 10, h.Pending())
}
