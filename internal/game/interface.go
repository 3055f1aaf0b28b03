package game

import "github.com/handlab/holdem/poker"

// PlayerPublic is the publicly visible state of a seated player.
type PlayerPublic struct {
	Seat      int
	Name      string
	Chips     int
	StreetBet int
	TotalBet  int
	Status    Status
}

// TableState is the read-only view handed to an agent when it is asked to
// act. It carries the acting player's private cards plus everything public.
type TableState struct {
	Street     Street
	Board      []poker.Card
	Pots       []Pot
	CurrentBet int
	MinRaise   int
	BigBlind   int
	Button     int

	// The acting player's own view.
	ActingSeat int
	HoleCards  []poker.Card
	Chips      int
	StreetBet  int
	TotalBet   int

	Players []PlayerPublic
}

// ToCall returns the chips the acting player must move to match the current
// bet, capped by their stack.
func (ts TableState) ToCall() int {
	toCall := ts.CurrentBet - ts.StreetBet
	if toCall > ts.Chips {
		toCall = ts.Chips
	}
	if toCall < 0 {
		toCall = 0
	}
	return toCall
}

// PotTotal returns the chips in all pot layers so far.
func (ts TableState) PotTotal() int {
	total := 0
	for _, p := range ts.Pots {
		total += p.Amount
	}
	return total
}

// Agent decides actions for a player. Implementations must return one of the
// offered valid actions with an amount inside its bounds; anything else is a
// protocol violation that aborts the hand. MakeDecision is invoked
// synchronously and must not retain the state after returning.
type Agent interface {
	MakeDecision(state TableState, valid []ValidAction) Action
}
