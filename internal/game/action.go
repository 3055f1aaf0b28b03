package game

import "fmt"

// Street represents a phase of the hand.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
	Complete
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown", "complete"}[s]
}

// ActionKind represents the kind of a player action.
type ActionKind int

const (
	Fold ActionKind = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (a ActionKind) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin"}[a]
}

// Action is a single decision by a player. Amount is the number of chips
// moved from the player's stack, never a "raise to" total, and is always at
// most the player's remaining stack.
type Action struct {
	Kind   ActionKind
	Amount int
}

func (a Action) String() string {
	if a.Amount == 0 {
		return a.Kind.String()
	}
	return fmt.Sprintf("%s %d", a.Kind, a.Amount)
}

// ValidAction describes one legal action kind with its amount bounds (both
// inclusive, in chips moved from the stack). Fold and Check carry zero
// bounds, Call an exact amount.
type ValidAction struct {
	Kind ActionKind
	Min  int
	Max  int
}

// ActionRecord is one entry in the hand's ordered action log.
type ActionRecord struct {
	Street Street
	Seat   int
	Name   string
	Action Action
}

func (r ActionRecord) String() string {
	return fmt.Sprintf("%s: %s %s", r.Street, r.Name, r.Action)
}
