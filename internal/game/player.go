package game

import "github.com/handlab/holdem/poker"

// Status describes what a player can still do in the current hand.
type Status int

const (
	// Active players hold chips and may act.
	Active Status = iota
	// Folded players are out of the hand but their committed chips stay in.
	Folded
	// StatusAllIn players have committed their whole stack and cannot act further.
	StatusAllIn
	// SittingOut players take no part in the hand at all.
	SittingOut
)

func (s Status) String() string {
	return [...]string{"active", "folded", "allin", "sittingout"}[s]
}

// Player is the engine's view of a seated player. The table owns players
// between hands; the engine mutates stack, commitments and status only while
// a hand is in progress. Seat is the stable id within a hand.
type Player struct {
	Seat      int
	Name      string
	Chips     int
	HoleCards []poker.Card
	Status    Status

	// StreetBet is the amount committed on the current street, TotalBet the
	// amount committed over the whole hand. TotalBet only ever shrinks when
	// the pot allocator returns an uncalled excess at round close.
	StreetBet int
	TotalBet  int
}

// CanAct reports whether the player may still take actions.
func (p *Player) CanAct() bool {
	return p.Status == Active
}

// InHand reports whether the player still contends for the pot.
func (p *Player) InHand() bool {
	return p.Status == Active || p.Status == StatusAllIn
}

// pay moves up to amount chips from the stack into the player's commitment,
// marking the player all-in when the stack empties. Returns the chips moved.
func (p *Player) pay(amount int) int {
	if amount >= p.Chips {
		amount = p.Chips
		p.Status = StatusAllIn
	}
	p.Chips -= amount
	p.StreetBet += amount
	p.TotalBet += amount
	return amount
}
