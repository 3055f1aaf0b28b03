package game

import "fmt"

// IllegalActionError reports an action outside the legal set for the current
// actor. It is fatal for the hand: the engine aborts rather than coercing the
// action, so that no invalid chip movement can reach the pots.
type IllegalActionError struct {
	Seat      int
	Attempted Action
	Legal     []ValidAction
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action by seat %d: %s (legal: %v)", e.Seat, e.Attempted, e.Legal)
}

// InvariantViolationError reports a chip-conservation mismatch after a pot
// computation. It indicates a logic defect, never a recoverable runtime
// condition, so the hand halts instead of producing an incorrect award.
type InvariantViolationError struct {
	Stage string
	Want  int
	Got   int
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("chip conservation violated at %s: want %d chips, got %d", e.Stage, e.Want, e.Got)
}
