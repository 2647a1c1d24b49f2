// Package state implements the ants-vs-bees simulation engine: the tunnel graph,
// the insect behaviors, the hive wave scheduler and the per-turn orchestration.
//
// This file holds Place, one node of the tunnel graph, and its occupancy rules.
package state

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Place is one cell of a tunnel. It holds at most one regular ant, at most one
// guard ant and any number of bees. Forward points towards the queen, Backward
// towards the hive; the queen place is the only one without a Forward link and
// the entrances (rightmost cells) are the only ones without a Backward link.
type Place struct {
	Name     string
	Row, Col int
	Water    bool

	// Occupants. Bees keeps arrival order, which is the tie-break used by
	// ClosestBee and the bee sweep.
	Ant   *Ant
	Guard *Ant
	Bees  []*Bee

	Forward, Backward *Place
}

func newPlace(name string, row, col int) *Place {
	return &Place{Name: name, Row: row, Col: col}
}

func (p *Place) String() string {
	return p.Name
}

// PlaceAnt puts the ant on the slot matching its kind: the guard slot for Guard
// ants, the regular slot for everyone else. It fails with ErrOccupied if that
// slot is already taken, and on success binds the ant's location to p.
func (p *Place) PlaceAnt(a *Ant) error {
	slot := &p.Ant
	if a.Kind == Guard {
		slot = &p.Guard
	}
	if *slot != nil {
		return errors.Wrapf(ErrOccupied, "%s at %s", (*slot).Kind, p)
	}
	*slot = a
	a.Place = p
	return nil
}

// RemoveAnt removes and returns the guard ant if present, otherwise the regular
// ant. It returns nil if the place holds no ant.
func (p *Place) RemoveAnt() *Ant {
	removed := p.Guard
	if removed != nil {
		p.Guard = nil
	} else if p.Ant != nil {
		removed = p.Ant
		p.Ant = nil
	}
	if removed != nil {
		removed.Place = nil
	}
	return removed
}

// AddBee appends the bee to this place, preserving arrival order.
func (p *Place) AddBee(b *Bee) {
	p.Bees = append(p.Bees, b)
	b.Place = p
}

// removeBee detaches the bee from this place. The bee keeps its Place pointer;
// callers either re-attach it elsewhere or nil it out.
func (p *Place) removeBee(b *Bee) {
	for ii, other := range p.Bees {
		if other == b {
			p.Bees = append(p.Bees[:ii], p.Bees[ii+1:]...)
			return
		}
	}
	panicf("bee not found at %s", p)
}

// ClosestBee walks the Backward links starting at p, at increasing distance, and
// returns the first bee whose distance lies in [minDistance, maxDistance].
// Within one place the earliest-arrived bee wins. It returns nil if the chain
// reaches the hive boundary before a match.
func (p *Place) ClosestBee(maxDistance, minDistance int) *Bee {
	distance := 0
	for current := p; current != nil; current = current.Backward {
		if distance > maxDistance {
			return nil
		}
		if distance >= minDistance && len(current.Bees) > 0 {
			return current.Bees[0]
		}
		distance++
	}
	return nil
}

// AdvanceBee moves the bee one place towards the queen. A bee on the queen
// place has nowhere left to go and stays put; the game is already decided.
func (p *Place) AdvanceBee(b *Bee) {
	if b.Place != p {
		panicf("advancing bee that is not at %s", p)
	}
	if p.Forward == nil {
		return
	}
	p.removeBee(b)
	p.Forward.AddBee(b)
}

// TerrainEffect applies the water rule: a water place washes away its guard ant
// unconditionally and its regular ant unless it is amphibious (Scuba). It
// returns the removed ants; non-water places return nothing.
func (p *Place) TerrainEffect() (removed []*Ant) {
	if !p.Water {
		return nil
	}
	if p.Guard != nil {
		g := p.Guard
		p.Guard = nil
		g.Place = nil
		removed = append(removed, g)
	}
	if p.Ant != nil && p.Ant.Kind != Scuba {
		a := p.Ant
		p.Ant = nil
		a.Place = nil
		removed = append(removed, a)
	}
	return removed
}

// panicf panics with an error value. Invariant violations are programmer
// errors: Game.AdvanceTurn contains them with exceptions.TryCatch so a broken
// entity never takes the process down.
func panicf(format string, args ...any) {
	exceptions.Panicf(format, args...)
}
