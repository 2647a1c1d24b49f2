package state

import (
	"math/rand/v2"
	"regexp"
	"strconv"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/antsGo/internal/event"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Outcome is the game verdict as seen from the current state.
type Outcome uint8

const (
	OutcomeUndecided Outcome = iota
	OutcomeWon
	OutcomeLost
)

var outcomeNames = [3]string{"Undecided", "Won", "Lost"}

func (o Outcome) String() string {
	return outcomeNames[o]
}

// Game owns one colony and one hive and sequences full turns. All driver
// commands go through it; it never lets an engine panic escape to the caller.
type Game struct {
	Colony *Colony
	Hive   *Hive

	// Turn starts at 0 and increases monotonically; it never stops by
	// itself, the driver decides when an Outcome is final.
	Turn int

	events   *event.Dispatcher
	reported bool // A decided outcome is announced on the sink only once.
}

// NewGame builds the colony and hive from cfg with a seeded random source.
// The dispatcher may be nil.
func NewGame(cfg Config, events *event.Dispatcher) *Game {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9E3779B97F4A7C15))
	colony := BuildColony(cfg.Layout, rng, events)
	hive := NewHive(cfg.BeeArmor, cfg.BeeDamage)
	cfg.Plan.Apply(hive)
	return &Game{Colony: colony, Hive: hive, events: events}
}

// AdvanceTurn runs one full round: ants act, bees act, terrain acts, the hive
// releases the wave scheduled for the current turn, and the turn counter
// increments. Engine panics (programmer errors) are caught and returned as
// errors instead of crashing the driver.
func (g *Game) AdvanceTurn() error {
	err := exceptions.TryCatch[error](func() {
		g.Colony.SweepDefenders()
		g.Colony.SweepBees()
		g.Colony.SweepTerrain()
		g.Hive.Release(g.Colony, g.Turn)
		g.Turn++
	})
	if err != nil {
		return errors.WithMessagef(err, "turn %d did not complete", g.Turn)
	}
	klog.V(2).Infof("Turn %d done: %d bees on board, %d pending, food=%d",
		g.Turn, g.Colony.BeesOnBoard(), g.Hive.Pending(), g.Colony.Food)
	g.announceOutcome()
	return nil
}

// Outcome evaluates the win/loss state. Loss is checked first: a bee on the
// queen place loses the game even on the turn the last other bee died.
func (g *Game) Outcome() Outcome {
	if len(g.Colony.Queen().Bees) > 0 {
		return OutcomeLost
	}
	if g.Colony.BeesOnBoard() == 0 && g.Hive.Pending() == 0 {
		return OutcomeWon
	}
	return OutcomeUndecided
}

func (g *Game) announceOutcome() {
	if g.reported {
		return
	}
	switch g.Outcome() {
	case OutcomeWon:
		g.events.Dispatch(event.Event{Type: event.GameWon, Data: g.Turn})
	case OutcomeLost:
		g.events.Dispatch(event.Event{Type: event.GameLost, Data: g.Turn})
	default:
		return
	}
	g.reported = true
}

var coordParser = regexp.MustCompile(`^\s*(-?\d+)\s*,\s*(-?\d+)\s*$`)

// ParsePlace resolves an external "row,col" coordinate to a grid place. It
// fails with ErrIllegalLocation on malformed or out-of-range coordinates.
func (g *Game) ParsePlace(coord string) (*Place, error) {
	matches := coordParser.FindStringSubmatch(coord)
	if matches == nil {
		return nil, errors.Wrapf(ErrIllegalLocation, "%q", coord)
	}
	row, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, errors.Wrapf(ErrIllegalLocation, "%q", coord)
	}
	col, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, errors.Wrapf(ErrIllegalLocation, "%q", coord)
	}
	p, ok := g.Colony.PlaceAt(row, col)
	if !ok {
		return nil, errors.Wrapf(ErrIllegalLocation, "%q is outside the %dx%d grid",
			coord, g.Colony.Tunnels(), g.Colony.TunnelLength())
	}
	return p, nil
}

// DeployByName deploys a new ant of the named kind ("Thrower" or "T") at the
// "row,col" coordinate.
func (g *Game) DeployByName(kindName, coord string) error {
	kind, ok := AntKindFromName(kindName)
	if !ok {
		return errors.Wrapf(ErrUnknownAntKind, "%q", kindName)
	}
	p, err := g.ParsePlace(coord)
	if err != nil {
		return err
	}
	return g.Colony.Deploy(NewAnt(kind), p)
}

// RemoveAt removes the ant at the coordinate, guard first. Removing from an
// empty place is a no-op.
func (g *Game) RemoveAt(coord string) error {
	p, err := g.ParsePlace(coord)
	if err != nil {
		return err
	}
	g.Colony.Remove(p)
	return nil
}

// BoostAt applies the named boost to the ant at the coordinate.
func (g *Game) BoostAt(name, coord string) error {
	p, err := g.ParsePlace(coord)
	if err != nil {
		return err
	}
	return g.Colony.ApplyBoost(BoostName(name), p)
}
