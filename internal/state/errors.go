package state

import "github.com/pkg/errors"

// Sentinel errors returned by the colony and game command surfaces.
// Callers match them with errors.Is; the wrapped message carries the context
// (which place, which ant kind, how much food was missing).
var (
	ErrInsufficientFood = errors.New("insufficient food")
	ErrOccupied         = errors.New("tunnel already occupied")
	ErrNoAnt            = errors.New("no ant at place")
	ErrUnknownBoost     = errors.New("unknown boost")
	ErrUnknownAntKind   = errors.New("unknown ant type")
	ErrIllegalLocation  = errors.New("illegal location")
)
