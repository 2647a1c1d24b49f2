package state

import (
	"fmt"

	"github.com/janpfeifer/antsGo/internal/event"
)

// BeeStatus is a transient effect that shapes exactly the next action a bee
// resolves and is cleared afterwards, whether or not it mattered.
type BeeStatus uint8

const (
	StatusNone BeeStatus = iota
	StatusStuck
	StatusCold
)

// Bee is a mobile attacker advancing from the hive towards the queen.
type Bee struct {
	Armor  int
	Damage int // Fixed at creation, applied per sting.
	Status BeeStatus
	Place  *Place // nil while in the hive, in a stomach, or dead.
}

// NewBee creates a bee with the given armor and sting damage.
func NewBee(armor, damage int) *Bee {
	return &Bee{Armor: armor, Damage: damage}
}

func (b *Bee) String() string {
	if b.Place == nil {
		return fmt.Sprintf("Bee(%d)", b.Armor)
	}
	return fmt.Sprintf("Bee(%d)@%s", b.Armor, b.Place)
}

// blocker returns the ant standing in this bee's way: the guard shields the
// regular ant, so it takes the stings first.
func (b *Bee) blocker() *Ant {
	if b.Place == nil {
		return nil
	}
	if b.Place.Guard != nil {
		return b.Place.Guard
	}
	return b.Place.Ant
}

// Act resolves one bee turn: sting the blocking ant unless cold, otherwise
// advance one place unless stuck. The transient status is cleared at the end
// regardless of which branch ran.
func (b *Bee) Act(c *Colony) {
	if blocker := b.blocker(); blocker != nil && b.Status != StatusCold {
		blocker.TakeDamage(b.Damage, c)
	} else if b.Armor > 0 && b.Status != StatusStuck {
		b.Place.AdvanceBee(b)
	}
	b.Status = StatusNone
}

// TakeDamage reduces armor and removes the bee from its place when it drops to
// zero or below, returning true for a kill.
func (b *Bee) TakeDamage(amount int, c *Colony) bool {
	b.Armor -= amount
	if b.Armor > 0 {
		return false
	}
	if b.Place != nil {
		b.Place.removeBee(b)
		b.Place = nil
	}
	c.events.Dispatch(event.Event{Type: event.BeeKilled})
	return true
}
