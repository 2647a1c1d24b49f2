package state

import (
	"fmt"
	"math/rand/v2"

	"github.com/janpfeifer/antsGo/internal/event"
	"github.com/janpfeifer/antsGo/internal/parameters"
	"github.com/pkg/errors"
)

// LayoutConfig describes the tunnel grid built once at colony construction.
type LayoutConfig struct {
	Tunnels int // Number of parallel tunnels.
	Length  int // Places per tunnel; the rightmost one is the entrance.

	// WaterStride > 0 makes every place whose 1-based step index is a
	// multiple of the stride a water place. 0 builds a dry layout.
	WaterStride int

	StartFood int
}

// DefaultLayout is the standard 3x9 dry colony with 2 starting food.
var DefaultLayout = LayoutConfig{Tunnels: 3, Length: 9, StartFood: 2}

// BuildColony constructs the grid: per tunnel a doubly-linked chain of places
// with the shared queen place as the forward sink of every tunnel and the
// rightmost place as the entrance. The grid is never resized afterwards.
func BuildColony(cfg LayoutConfig, rng *rand.Rand, events *event.Dispatcher) *Colony {
	if cfg.Tunnels <= 0 || cfg.Length <= 0 {
		panicf("colony layout needs at least one tunnel and one place, got %dx%d",
			cfg.Tunnels, cfg.Length)
	}
	c := &Colony{
		Food:  cfg.StartFood,
		queen: newPlace("Queen", -1, -1),
		boosts: map[BoostName]int{
			BoostFlyingLeaf: 1,
			BoostStickyLeaf: 1,
			BoostIcyLeaf:    1,
			BoostBugSpray:   0,
		},
		rng:    rng,
		events: events,
	}
	c.places = make([][]*Place, cfg.Tunnels)
	for row := range c.places {
		tunnel := make([]*Place, cfg.Length)
		for col := range tunnel {
			p := newPlace(fmt.Sprintf("%d,%d", row, col), row, col)
			p.Water = cfg.WaterStride > 0 && (col+1)%cfg.WaterStride == 0
			tunnel[col] = p
			if col == 0 {
				p.Forward = c.queen
			} else {
				p.Forward = tunnel[col-1]
				tunnel[col-1].Backward = p
			}
		}
		c.places[row] = tunnel
		c.entrances = append(c.entrances, tunnel[cfg.Length-1])
	}
	return c
}

// AssaultPlan is the basic wave-table: Waves waves starting at turn Start,
// Interval turns apart, beginning at WaveSize bees and growing by one bee
// every Growth waves (0 disables growth).
type AssaultPlan struct {
	Start, Interval int
	Waves, WaveSize int
	Growth          int
}

// defaultPlan sends 4 waves of 2 to 3 bees, the first one on turn 2.
var defaultPlan = AssaultPlan{Start: 2, Interval: 3, Waves: 4, WaveSize: 2, Growth: 2}

// Apply schedules the plan's waves on the hive.
func (plan AssaultPlan) Apply(h *Hive) {
	for ii := 0; ii < plan.Waves; ii++ {
		size := plan.WaveSize
		if plan.Growth > 0 {
			size += ii / plan.Growth
		}
		h.ScheduleWave(plan.Start+ii*plan.Interval, size)
	}
}

// Config gathers everything needed to build a Game.
type Config struct {
	Layout              LayoutConfig
	BeeArmor, BeeDamage int
	Plan                AssaultPlan
	Seed                uint64
}

// DefaultConfig is the standard assault on the default layout.
func DefaultConfig() Config {
	return Config{
		Layout:    DefaultLayout,
		BeeArmor:  3,
		BeeDamage: 1,
		Plan:      defaultPlan,
		Seed:      1,
	}
}

// ConfigFromParams builds a Config from a user parameters map, starting from
// DefaultConfig. Recognized keys: tunnels, length, water, food, bee_armor,
// bee_damage, wave_start, wave_interval, waves, wave_size, wave_growth, seed.
// Unrecognized keys are an error.
func ConfigFromParams(params parameters.Params) (Config, error) {
	cfg := DefaultConfig()
	var err error
	pop := func(key string, target *int) {
		if err != nil {
			return
		}
		*target, err = parameters.PopParamOr(params, key, *target)
	}
	pop("tunnels", &cfg.Layout.Tunnels)
	pop("length", &cfg.Layout.Length)
	pop("water", &cfg.Layout.WaterStride)
	pop("food", &cfg.Layout.StartFood)
	pop("bee_armor", &cfg.BeeArmor)
	pop("bee_damage", &cfg.BeeDamage)
	pop("wave_start", &cfg.Plan.Start)
	pop("wave_interval", &cfg.Plan.Interval)
	pop("waves", &cfg.Plan.Waves)
	pop("wave_size", &cfg.Plan.WaveSize)
	pop("wave_growth", &cfg.Plan.Growth)
	if err != nil {
		return cfg, err
	}
	seed, err := parameters.PopParamOr(params, "seed", int(cfg.Seed))
	if err != nil {
		return cfg, err
	}
	cfg.Seed = uint64(seed)
	if err := parameters.CheckExhausted(params); err != nil {
		return cfg, err
	}
	if cfg.Layout.Tunnels <= 0 || cfg.Layout.Length <= 0 {
		return cfg, errors.Errorf("colony must have positive dimensions, got %dx%d",
			cfg.Layout.Tunnels, cfg.Layout.Length)
	}
	return cfg, nil
}
