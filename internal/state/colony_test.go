package state_test

import (
	"testing"

	. "github.com/janpfeifer/antsGo/internal/state"
	. "github.com/janpfeifer/antsGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeployChecksFoodFirst(t *testing.T) {
	g := BuildGame(GameSpec{Food: 3})
	c := g.Colony
	p := MustPlaceAt(g, 0, 3)

	// Thrower costs 4: rejected, board and food untouched.
	err := c.Deploy(NewAnt(Thrower), p)
	require.ErrorIs(t, err, ErrInsufficientFood)
	assert.Equal(t, 3, c.Food)
	assert.Nil(t, p.Ant)

	// Grower costs 2: accepted and debited.
	require.NoError(t, c.Deploy(NewAnt(Grower), p))
	assert.Equal(t, 1, c.Food)

	// Occupied slot: food stays untouched as well.
	err = c.Deploy(NewAnt(Grower), p)
	require.ErrorIs(t, err, ErrOccupied)
	assert.Equal(t, 1, c.Food)

	// The insufficient-food check runs before the slot check.
	err = c.Deploy(NewAnt(Thrower), p)
	assert.ErrorIs(t, err, ErrInsufficientFood)
}

func TestApplyBoost(t *testing.T) {
	g := BuildGame(GameSpec{})
	c := g.Colony
	p := MustPlaceAt(g, 0, 2)

	// BugSpray is registered at zero stock: not applicable until found.
	err := c.ApplyBoost(BoostBugSpray, p)
	require.ErrorIs(t, err, ErrUnknownBoost)
	// Completely unknown names fail the same way.
	err = c.ApplyBoost(BoostName("TurboLeaf"), p)
	require.ErrorIs(t, err, ErrUnknownBoost)

	// No ant on the place.
	err = c.ApplyBoost(BoostFlyingLeaf, p)
	require.ErrorIs(t, err, ErrNoAnt)

	// Inventory counts discovery, not stock: applying does not decrement.
	thrower := NewAnt(Thrower)
	require.NoError(t, c.Deploy(thrower, p))
	require.NoError(t, c.ApplyBoost(BoostFlyingLeaf, p))
	assert.Equal(t, BoostFlyingLeaf, thrower.Boost)
	assert.Equal(t, 1, c.BoostCount(BoostFlyingLeaf))
	require.NoError(t, c.ApplyBoost(BoostFlyingLeaf, p), "still applicable")
}

func TestApplyBoostPrefersRegularAnt(t *testing.T) {
	g := BuildGame(GameSpec{Food: 20})
	c := g.Colony
	p := MustPlaceAt(g, 0, 2)
	thrower := NewAnt(Thrower)
	guard := NewAnt(Guard)
	require.NoError(t, c.Deploy(thrower, p))
	require.NoError(t, c.Deploy(guard, p))

	require.NoError(t, c.ApplyBoost(BoostIcyLeaf, p))
	assert.Equal(t, BoostIcyLeaf, thrower.Boost)
	assert.Empty(t, guard.Boost)

	// With only a guard present, the guard receives it.
	p2 := MustPlaceAt(g, 0, 3)
	guard2 := NewAnt(Guard)
	require.NoError(t, c.Deploy(guard2, p2))
	require.NoError(t, c.ApplyBoost(BoostIcyLeaf, p2))
	assert.Equal(t, BoostIcyLeaf, guard2.Boost)
}

func TestAddBoostRegistersUnknownNames(t *testing.T) {
	g := BuildGame(GameSpec{})
	c := g.Colony
	assert.Equal(t, 0, c.BoostCount(BoostName("MintLeaf")))
	c.AddBoost(BoostName("MintLeaf"))
	assert.Equal(t, 1, c.BoostCount(BoostName("MintLeaf")))
}

func TestAvailableBoostsSorted(t *testing.T) {
	g := BuildGame(GameSpec{})
	c := g.Colony
	// BugSpray starts at 0 and is excluded until found.
	assert.Equal(t, []BoostName{BoostFlyingLeaf, BoostIcyLeaf, BoostStickyLeaf},
		c.AvailableBoosts())
	c.AddBoost(BoostBugSpray)
	assert.Equal(t, []BoostName{BoostBugSpray, BoostFlyingLeaf, BoostIcyLeaf, BoostStickyLeaf},
		c.AvailableBoosts())
}

func TestGuardedAntActsTwicePerSweep(t *testing.T) {
	g := BuildGame(GameSpec{Food: 20})
	c := g.Colony
	p := MustPlaceAt(g, 0, 2)
	require.NoError(t, c.Deploy(NewAnt(Thrower), p))
	require.NoError(t, c.Deploy(NewAnt(Guard), p))
	bee := AddBeeAt(MustPlaceAt(g, 0, 4), 10, 1)

	// The guard triggers the shielded Thrower once, then the normal pass
	// drives it again: two hits per sweep.
	c.SweepDefenders()
	assert.Equal(t, 8, bee.Armor)

	// Without the guard it is back to one hit per sweep.
	assert.Equal(t, Guard, p.RemoveAnt().Kind)
	c.SweepDefenders()
	assert.Equal(t, 7, bee.Armor)
}

func TestSweepDefendersOrder(t *testing.T) {
	g := BuildGame(GameSpec{Tunnels: 2, Length: 4, Food: 20})
	c := g.Colony

	// Two throwers in tunnel 0 share a reachable bee with armor 1: board-scan
	// order says the leftmost one lands the kill.
	left := NewAnt(Thrower)
	right := NewAnt(Thrower)
	require.NoError(t, c.Deploy(left, MustPlaceAt(g, 0, 0)))
	require.NoError(t, c.Deploy(right, MustPlaceAt(g, 0, 2)))
	bee := AddBeeAt(MustPlaceAt(g, 0, 2), 1, 1)

	c.SweepDefenders()
	assert.Nil(t, bee.Place, "bee dies to the first thrower in scan order")
	assert.Equal(t, 0, bee.Armor, "exactly one hit landed")
}

func TestSweepBees(t *testing.T) {
	g := BuildGame(GameSpec{Length: 5})
	c := g.Colony
	walker := AddBeeAt(MustPlaceAt(g, 0, 4), 3, 1)
	stinger := AddBeeAt(MustPlaceAt(g, 0, 2), 3, 1)
	thrower := NewAnt(Thrower)
	require.NoError(t, c.Deploy(thrower, MustPlaceAt(g, 0, 2)))

	c.SweepBees()
	assert.Same(t, MustPlaceAt(g, 0, 3), walker.Place, "unblocked bee advances")
	assert.Same(t, MustPlaceAt(g, 0, 2), stinger.Place, "blocked bee stays")
	assert.Equal(t, 1, thrower.Armor, "blocked bee stings")
}

func TestStuckAndColdStatuses(t *testing.T) {
	g := BuildGame(GameSpec{Length: 5})
	c := g.Colony

	stuck := AddBeeAt(MustPlaceAt(g, 0, 4), 3, 1)
	stuck.Status = StatusStuck
	c.SweepBees()
	assert.Same(t, MustPlaceAt(g, 0, 4), stuck.Place, "stuck bee does not advance")
	assert.Equal(t, StatusNone, stuck.Status, "status is spent after the action")
	c.SweepBees()
	assert.Same(t, MustPlaceAt(g, 0, 3), stuck.Place, "next turn it moves again")

	// A cold bee skips its sting even when blocked.
	thrower := NewAnt(Thrower)
	require.NoError(t, c.Deploy(thrower, MustPlaceAt(g, 0, 1)))
	cold := AddBeeAt(MustPlaceAt(g, 0, 1), 3, 1)
	cold.Status = StatusCold
	armorBefore := thrower.Armor
	cold.Act(c)
	assert.Equal(t, armorBefore, thrower.Armor, "cold bee does not sting")
	assert.Same(t, MustPlaceAt(g, 0, 0), cold.Place, "and slips past instead")
	assert.Equal(t, StatusNone, cold.Status)
}

func TestSweepTerrain(t *testing.T) {
	g := BuildGame(GameSpec{WaterStride: 3, Food: 20})
	c := g.Colony
	water := MustPlaceAt(g, 0, 2)
	require.NoError(t, c.Deploy(NewAnt(Scuba), water))
	require.NoError(t, c.Deploy(NewAnt(Guard), water))
	dry := MustPlaceAt(g, 0, 1)
	require.NoError(t, c.Deploy(NewAnt(Thrower), dry))

	c.SweepTerrain()
	assert.Nil(t, water.Guard, "guards always drown")
	assert.NotNil(t, water.Ant, "scuba survives water")
	assert.NotNil(t, dry.Ant, "dry places are unaffected")
}

func TestBeesOnBoardExcludesStomachAndHive(t *testing.T) {
	g := BuildGame(GameSpec{})
	c := g.Colony
	g.Hive.ScheduleWave(5, 2)
	assert.Equal(t, 0, c.BeesOnBoard(), "hive bees are not on the board")

	AddBeeAt(MustPlaceAt(g, 0, 2), 3, 1)
	AddBeeAt(c.Queen(), 3, 1)
	assert.Equal(t, 2, c.BeesOnBoard(), "queen place counts")

	eater := NewAnt(Eater)
	require.NoError(t, c.Deploy(eater, MustPlaceAt(g, 0, 2)))
	eater.Act(c)
	assert.Equal(t, 1, c.BeesOnBoard(), "swallowed bees are off the board")
}
