package state

import (
	"fmt"
	"strings"

	"github.com/janpfeifer/antsGo/internal/event"
)

var _ = fmt.Print

// AntKind is the closed set of ant variants. Behaviors dispatch with an
// exhaustive switch, so adding a kind without a policy fails loudly.
type AntKind uint8

const (
	NoAnt AntKind = iota
	Grower
	Thrower
	Eater
	Scuba
	Guard
	LastAntKind
)

var (
	AntKindLetters = [LastAntKind]string{"-", "G", "T", "E", "S", "B"}
	AntKindNames   = [LastAntKind]string{"None", "Grower", "Thrower", "Eater", "Scuba", "Guard"}

	// AntKinds enumerates the deployable kinds, skipping NoAnt.
	AntKinds = [LastAntKind - 1]AntKind{Grower, Thrower, Eater, Scuba, Guard}

	nameToAntKind = map[string]AntKind{
		"G": Grower, "GROWER": Grower,
		"T": Thrower, "THROWER": Thrower,
		"E": Eater, "EATER": Eater,
		"S": Scuba, "SCUBA": Scuba,
		"B": Guard, "GUARD": Guard,
	}
)

// String returns the long ant kind name.
func (k AntKind) String() string {
	return AntKindNames[k]
}

// antStats are the deployment cost and starting armor per kind.
var antStats = [LastAntKind]struct{ cost, armor int }{
	Grower:  {cost: 2, armor: 1},
	Thrower: {cost: 4, armor: 2},
	Eater:   {cost: 4, armor: 1},
	Scuba:   {cost: 6, armor: 2},
	Guard:   {cost: 4, armor: 2},
}

// Cost is the food debited when an ant of this kind is deployed.
func (k AntKind) Cost() int {
	return antStats[k].cost
}

// StartArmor is the armor an ant of this kind starts with.
func (k AntKind) StartArmor() int {
	return antStats[k].armor
}

// AntKindFromName resolves a kind from its full name or single letter,
// case-insensitively. It returns NoAnt, false for unrecognized names.
func AntKindFromName(name string) (AntKind, bool) {
	kind, ok := nameToAntKind[strings.ToUpper(name)]
	return kind, ok
}

// Combat tuning shared by Thrower and Scuba.
const (
	throwerDamage   = 1
	throwerRange    = 3
	flyingLeafRange = 5
	bugSprayDamage  = 10
)

// Grower production thresholds over one uniform sample in [0,1):
// lower-inclusive, upper-exclusive.
const (
	growFoodThreshold     = 0.60
	growFlyingThreshold   = 0.70
	growStickyThreshold   = 0.80
	growIcyThreshold      = 0.90
	growBugSprayThreshold = 0.95
)

// Ant is a stationary defender occupying one place slot.
type Ant struct {
	Kind  AntKind
	Armor int
	Boost BoostName // Empty when no boost is active.
	Place *Place

	// Eater state: at most one swallowed bee, and how many turns it has
	// been digesting. digestTurns == 0 means the stomach is ready.
	stomach     *Bee
	digestTurns int
}

// NewAnt creates an ant of the given kind with its default stats.
func NewAnt(kind AntKind) *Ant {
	if kind <= NoAnt || kind >= LastAntKind {
		panicf("cannot create ant of kind %d", kind)
	}
	return &Ant{Kind: kind, Armor: kind.StartArmor()}
}

func (a *Ant) String() string {
	if a.Place == nil {
		return a.Kind.String()
	}
	return fmt.Sprintf("%s@%s", a.Kind, a.Place)
}

// Stomach returns the swallowed bee of an Eater, nil for every other kind or
// when the stomach is empty. The board renderer uses it for the "full" marker.
func (a *Ant) Stomach() *Bee {
	return a.stomach
}

// Act performs this ant's single behavior step for the turn.
func (a *Ant) Act(c *Colony) {
	switch a.Kind {
	case Grower:
		a.growerAct(c)
	case Thrower, Scuba:
		a.throwerAct(c)
	case Eater:
		a.eaterAct(c)
	case Guard:
		// Guards act by existing: the colony sweep drives the shielded
		// ant's extra action, see Colony.SweepDefenders.
	default:
		panicf("no act policy for ant kind %d", a.Kind)
	}
}

// growerAct rolls once and either harvests food or finds a boost.
func (a *Ant) growerAct(c *Colony) {
	roll := c.rng.Float64()
	switch {
	case roll < growFoodThreshold:
		c.Food++
		c.events.Dispatch(event.Event{Type: event.FoodProduced, Data: a.String()})
	case roll < growFlyingThreshold:
		c.AddBoost(BoostFlyingLeaf)
	case roll < growStickyThreshold:
		c.AddBoost(BoostStickyLeaf)
	case roll < growIcyThreshold:
		c.AddBoost(BoostIcyLeaf)
	case roll < growBugSprayThreshold:
		c.AddBoost(BoostBugSpray)
	default:
		// Barren roll, nothing found this turn.
	}
}

// throwerAct is the shared Thrower/Scuba combat policy. Scuba differs only by
// surviving water, which is handled by Place.TerrainEffect.
func (a *Ant) throwerAct(c *Colony) {
	if a.Boost == BoostBugSpray {
		// Fumigate: 10 damage to every bee here, then 10 to ourselves.
		// The boost is spent by the self-damage, never cleared explicitly.
		for {
			target := a.Place.ClosestBee(0, 0)
			if target == nil {
				break
			}
			target.TakeDamage(bugSprayDamage, c)
		}
		a.TakeDamage(bugSprayDamage, c)
		return
	}

	reach := throwerRange
	if a.Boost == BoostFlyingLeaf {
		reach = flyingLeafRange
	}
	target := a.Place.ClosestBee(reach, 0)
	if target == nil {
		// No target: the boost stays active for a later turn.
		return
	}
	target.TakeDamage(throwerDamage, c)
	switch a.Boost {
	case BoostStickyLeaf:
		target.Status = StatusStuck
	case BoostIcyLeaf:
		target.Status = StatusCold
	}
	// A non-BugSpray boost is single-use: it is cleared once a throw lands.
	a.Boost = ""
}

// eaterAct swallows the bee sharing the place, or keeps digesting one already
// swallowed. A digested bee is destroyed once the counter passes 3.
func (a *Ant) eaterAct(c *Colony) {
	if a.digestTurns == 0 {
		target := a.Place.ClosestBee(0, 0)
		if target == nil {
			return
		}
		target.Place.removeBee(target)
		target.Place = nil
		a.stomach = target
		a.digestTurns = 1
		c.events.Dispatch(event.Event{Type: event.BeeSwallowed, Data: a.String()})
		return
	}
	if a.digestTurns > 3 {
		a.stomach = nil
		a.digestTurns = 0
		return
	}
	a.digestTurns++
}

// coughUp returns the swallowed bee alive to the Eater's current place.
func (a *Ant) coughUp(c *Colony) {
	if a.stomach == nil || a.Place == nil {
		return
	}
	a.Place.AddBee(a.stomach)
	c.events.Dispatch(event.Event{Type: event.BeeCoughedUp, Data: a.String()})
	a.stomach = nil
}

// TakeDamage reduces armor and detaches the ant from the board when it drops
// to zero or below, returning true for a kill. Eaters interrupted while
// digesting cough their bee back: alive on non-fatal damage during the first
// digestion turn (the counter then jumps to 3), and on fatal damage during
// turns 1 or 2.
func (a *Ant) TakeDamage(amount int, c *Colony) bool {
	a.Armor -= amount
	if a.Armor > 0 {
		if a.Kind == Eater && a.digestTurns == 1 {
			a.coughUp(c)
			a.digestTurns = 3
		}
		return false
	}
	if a.Kind == Eater && (a.digestTurns == 1 || a.digestTurns == 2) {
		a.coughUp(c)
	}
	a.detach()
	c.events.Dispatch(event.Event{Type: event.AntKilled, Data: a.Kind.String()})
	return true
}

// detach clears whichever slot the ant occupies.
func (a *Ant) detach() {
	p := a.Place
	if p == nil {
		return
	}
	if p.Guard == a {
		p.Guard = nil
	} else if p.Ant == a {
		p.Ant = nil
	}
	a.Place = nil
}
