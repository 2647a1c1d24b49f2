package state

import (
	"math/rand/v2"

	"github.com/janpfeifer/antsGo/internal/event"
	"github.com/janpfeifer/antsGo/internal/generics"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// BoostName identifies a behavior modifier found by Growers and applied to one
// ant at a time.
type BoostName string

const (
	BoostFlyingLeaf BoostName = "FlyingLeaf"
	BoostStickyLeaf BoostName = "StickyLeaf"
	BoostIcyLeaf    BoostName = "IcyLeaf"
	BoostBugSpray   BoostName = "BugSpray"
)

// Colony owns the tunnel grid, the queen place, the food counter and the boost
// inventory, and runs the three per-turn sweeps.
//
// The inventory counts track boosts ever discovered, not consumable stock:
// ApplyBoost never decrements them.
type Colony struct {
	Food int

	places    [][]*Place // [tunnel][step], step 0 next to the queen.
	queen     *Place
	entrances []*Place // Rightmost place of each tunnel.
	boosts    map[BoostName]int

	rng    *rand.Rand
	events *event.Dispatcher
}

// Queen returns the place the bees are after. Any bee reaching it loses the game.
func (c *Colony) Queen() *Place {
	return c.queen
}

// Entrances returns the rightmost place of each tunnel, where waves enter.
func (c *Colony) Entrances() []*Place {
	return c.entrances
}

// RandomEntrance picks one entrance uniformly from the injected random source.
func (c *Colony) RandomEntrance() *Place {
	return c.entrances[c.rng.IntN(len(c.entrances))]
}

// Tunnels is the number of tunnels (grid rows).
func (c *Colony) Tunnels() int {
	return len(c.places)
}

// TunnelLength is the number of places per tunnel (grid columns).
func (c *Colony) TunnelLength() int {
	if len(c.places) == 0 {
		return 0
	}
	return len(c.places[0])
}

// PlaceAt returns the place at the given tunnel/step coordinate, or false when
// the coordinate falls outside the grid.
func (c *Colony) PlaceAt(row, col int) (*Place, bool) {
	if row < 0 || row >= len(c.places) || col < 0 || col >= len(c.places[row]) {
		return nil, false
	}
	return c.places[row][col], true
}

// Deploy places the ant, debiting its food cost. The food check runs first:
// a too-expensive ant fails with ErrInsufficientFood even if the slot is also
// occupied.
func (c *Colony) Deploy(a *Ant, p *Place) error {
	cost := a.Kind.Cost()
	if c.Food < cost {
		return errors.Wrapf(ErrInsufficientFood, "%s costs %d, have %d", a.Kind, cost, c.Food)
	}
	if err := p.PlaceAnt(a); err != nil {
		return err
	}
	c.Food -= cost
	klog.V(1).Infof("Deployed %s at %s (food left %d)", a.Kind, p, c.Food)
	c.events.Dispatch(event.Event{Type: event.AntDeployed, Data: a.String()})
	return nil
}

// Remove detaches and returns the guard ant at p if present, else the regular
// ant. Food is not refunded.
func (c *Colony) Remove(p *Place) *Ant {
	removed := p.RemoveAnt()
	if removed != nil {
		c.events.Dispatch(event.Event{Type: event.AntRemoved, Data: removed.Kind.String()})
	}
	return removed
}

// ApplyBoost activates a discovered boost on the ant at p: the regular ant when
// present, otherwise the guard. The inventory count is not decremented, see the
// Colony doc.
func (c *Colony) ApplyBoost(name BoostName, p *Place) error {
	if c.boosts[name] == 0 {
		return errors.Wrapf(ErrUnknownBoost, "%q", name)
	}
	target := p.Ant
	if target == nil {
		target = p.Guard
	}
	if target == nil {
		return errors.Wrapf(ErrNoAnt, "cannot boost %s", p)
	}
	target.Boost = name
	c.events.Dispatch(event.Event{Type: event.BoostApplied, Data: string(name)})
	return nil
}

// AddBoost increments the inventory count for name, registering an unseen name
// at zero first.
func (c *Colony) AddBoost(name BoostName) {
	c.boosts[name]++
	klog.V(2).Infof("Boost %s found (now %d)", name, c.boosts[name])
	c.events.Dispatch(event.Event{Type: event.BoostFound, Data: string(name)})
}

// BoostCount returns the inventory count for name, 0 for unregistered names.
func (c *Colony) BoostCount(name BoostName) int {
	return c.boosts[name]
}

// AvailableBoosts lists the boost names with a positive count, sorted by name.
func (c *Colony) AvailableBoosts() []BoostName {
	var names []BoostName
	for name, count := range generics.SortedKeysAndValues(c.boosts) {
		if count > 0 {
			names = append(names, name)
		}
	}
	return names
}

// placesInOrder iterates the grid in the stable board-scan order every sweep
// uses: tunnel-major, then step. The queen place is not included.
func (c *Colony) placesInOrder(visit func(p *Place)) {
	for _, tunnel := range c.places {
		for _, p := range tunnel {
			visit(p)
		}
	}
}

// SweepDefenders drives every ant's action once per turn, in board-scan order.
// In a guarded place the guard first triggers the shielded ant's action and
// then its own; the shielded ant then acts again in the normal pass, so it
// acts twice per turn. Intentional: a guarded ant works double shifts.
func (c *Colony) SweepDefenders() {
	c.placesInOrder(func(p *Place) {
		if p.Guard != nil {
			if p.Ant != nil {
				p.Ant.Act(c)
			}
			p.Guard.Act(c)
		}
		if p.Ant != nil {
			p.Ant.Act(c)
		}
	})
}

// SweepBees drives every bee's action once, in board-scan order and arrival
// order within a place. The set of bees is snapshotted up front: bees released,
// swallowed or killed mid-sweep do not gain or lose a slot.
func (c *Colony) SweepBees() {
	var bees []*Bee
	c.placesInOrder(func(p *Place) {
		bees = append(bees, p.Bees...)
	})
	bees = append(bees, c.queen.Bees...)
	for _, bee := range bees {
		if bee.Armor > 0 && bee.Place != nil {
			bee.Act(c)
		}
	}
}

// SweepTerrain applies the water rule to every place in board-scan order.
func (c *Colony) SweepTerrain() {
	c.placesInOrder(func(p *Place) {
		for _, washed := range p.TerrainEffect() {
			klog.V(1).Infof("%s washed away at %s", washed.Kind, p)
			c.events.Dispatch(event.Event{Type: event.AntKilled, Data: washed.Kind.String()})
		}
	})
}

// BeesOnBoard counts the bees currently in the tunnels or on the queen place.
// Bees inside the hive or inside an Eater's stomach do not count.
func (c *Colony) BeesOnBoard() int {
	count := len(c.queen.Bees)
	c.placesInOrder(func(p *Place) {
		count += len(p.Bees)
	})
	return count
}

// Ants returns every ant on the board in board-scan order, guard before
// regular within one place.
func (c *Colony) Ants() []*Ant {
	var ants []*Ant
	c.placesInOrder(func(p *Place) {
		if p.Guard != nil {
			ants = append(ants, p.Guard)
		}
		if p.Ant != nil {
			ants = append(ants, p.Ant)
		}
	})
	return ants
}
