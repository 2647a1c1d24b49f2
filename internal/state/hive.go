package state

import (
	"slices"

	"github.com/janpfeifer/antsGo/internal/event"
	"github.com/janpfeifer/antsGo/internal/generics"
	"k8s.io/klog/v2"
)

// Hive owns the bees not yet released and the schedule mapping a turn number to
// the wave released on that turn.
type Hive struct {
	// BeeArmor and BeeDamage configure every bee this hive creates.
	BeeArmor, BeeDamage int

	pending generics.Set[*Bee]
	waves   map[int][]*Bee
}

// NewHive creates an empty hive whose bees will have the given armor and damage.
func NewHive(beeArmor, beeDamage int) *Hive {
	return &Hive{
		BeeArmor:  beeArmor,
		BeeDamage: beeDamage,
		pending:   generics.MakeSet[*Bee](),
		waves:     make(map[int][]*Bee),
	}
}

// ScheduleWave creates count bees inside the hive and records them to be
// released on the given turn. Scheduling the same turn again replaces the
// earlier wave for that turn; the replaced bees stay in the hive forever and
// still count as pending.
func (h *Hive) ScheduleWave(turn, count int) {
	wave := make([]*Bee, count)
	for ii := range wave {
		bee := NewBee(h.BeeArmor, h.BeeDamage)
		wave[ii] = bee
		h.pending.Insert(bee)
	}
	h.waves[turn] = wave
}

// Release moves the wave scheduled for turn, if any, into the colony: each bee
// enters at a uniformly random entrance. It returns the released bees, empty
// when nothing is scheduled.
func (h *Hive) Release(c *Colony, turn int) []*Bee {
	wave, found := h.waves[turn]
	if !found {
		return nil
	}
	delete(h.waves, turn)
	for _, bee := range wave {
		h.pending.Delete(bee)
		entrance := c.RandomEntrance()
		entrance.AddBee(bee)
	}
	klog.V(1).Infof("Turn %d: hive released %d bees", turn, len(wave))
	c.events.Dispatch(event.Event{Type: event.WaveReleased, Data: len(wave)})
	return wave
}

// Pending is the number of bees still inside the hive.
func (h *Hive) Pending() int {
	return len(h.pending)
}

// WaveTurns lists the turns with a wave still scheduled, in ascending order.
func (h *Hive) WaveTurns() []int {
	return slices.Collect(generics.SortedKeys(h.waves))
}

// WaveSize returns the number of bees scheduled for the given turn, 0 if none.
func (h *Hive) WaveSize(turn int) int {
	return len(h.waves[turn])
}
