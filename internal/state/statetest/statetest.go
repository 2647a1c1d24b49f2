// Package statetest provides helpers to build small colonies for tests.
package statetest

import (
	. "github.com/janpfeifer/antsGo/internal/state"
)

// GameSpec shapes the test game built by BuildGame. Zero values fall back to a
// 1-tunnel, 9-place dry colony with 10 food, 3/1 bees and no scheduled waves.
type GameSpec struct {
	Tunnels, Length     int
	WaterStride         int
	Food                int
	BeeArmor, BeeDamage int
	Seed                uint64
}

func (spec GameSpec) withDefaults() GameSpec {
	if spec.Tunnels == 0 {
		spec.Tunnels = 1
	}
	if spec.Length == 0 {
		spec.Length = 9
	}
	if spec.Food == 0 {
		spec.Food = 10
	}
	if spec.BeeArmor == 0 {
		spec.BeeArmor = 3
	}
	if spec.BeeDamage == 0 {
		spec.BeeDamage = 1
	}
	if spec.Seed == 0 {
		spec.Seed = 42
	}
	return spec
}

// BuildGame creates a deterministic game with an empty wave schedule: tests
// schedule their own waves or drop bees with AddBeeAt.
func BuildGame(spec GameSpec) *Game {
	spec = spec.withDefaults()
	cfg := Config{
		Layout: LayoutConfig{
			Tunnels:     spec.Tunnels,
			Length:      spec.Length,
			WaterStride: spec.WaterStride,
			StartFood:   spec.Food,
		},
		BeeArmor:  spec.BeeArmor,
		BeeDamage: spec.BeeDamage,
		Seed:      spec.Seed,
	}
	return NewGame(cfg, nil)
}

// AddBeeAt drops a new bee directly on the given place, bypassing the hive.
func AddBeeAt(p *Place, armor, damage int) *Bee {
	bee := NewBee(armor, damage)
	p.AddBee(bee)
	return bee
}

// MustPlaceAt returns the place at row,col and panics if outside the grid.
func MustPlaceAt(g *Game, row, col int) *Place {
	p, ok := g.Colony.PlaceAt(row, col)
	if !ok {
		panic("test coordinate outside the grid")
	}
	return p
}
