package game

import (
	"fmt"
	"math/rand/v2"
)

// Table owns players across hands: it seats them, rotates the button past
// busted seats, and starts each hand with the configured blinds. Busted
// players keep their seats but sit out until they are re-funded.
type Table struct {
	players    []*Player
	button     int
	smallBlind int
	bigBlind   int
	handsDealt int
}

// NewTable creates an empty table with the given blind levels.
func NewTable(smallBlind, bigBlind int) *Table {
	return &Table{smallBlind: smallBlind, bigBlind: bigBlind, button: -1}
}

// AddPlayer seats a player at the next free seat and returns it.
func (t *Table) AddPlayer(name string, chips int) *Player {
	p := &Player{Seat: len(t.players), Name: name, Chips: chips, Status: SittingOut}
	t.players = append(t.players, p)
	return p
}

// Players returns the seated players in seat order.
func (t *Table) Players() []*Player {
	return t.players
}

// BigBlind returns the table's big blind level.
func (t *Table) BigBlind() int {
	return t.bigBlind
}

// Button returns the current button seat, or -1 before the first hand.
func (t *Table) Button() int {
	return t.button
}

// HandsDealt returns how many hands the table has started.
func (t *Table) HandsDealt() int {
	return t.handsDealt
}

// FundedCount returns how many seats hold chips.
func (t *Table) FundedCount() int {
	n := 0
	for _, p := range t.players {
		if p.Chips > 0 {
			n++
		}
	}
	return n
}

// StartHand moves the button to the next funded seat and deals a hand.
func (t *Table) StartHand(rng *rand.Rand, opts ...HandOption) (*Hand, error) {
	if t.FundedCount() < 2 {
		return nil, fmt.Errorf("need at least 2 funded players, have %d", t.FundedCount())
	}
	t.button = t.nextFunded(t.button + 1)
	h, err := NewHand(rng, t.players, t.button, t.smallBlind, t.bigBlind, opts...)
	if err != nil {
		return nil, err
	}
	t.handsDealt++
	return h, nil
}

func (t *Table) nextFunded(from int) int {
	n := len(t.players)
	if from < 0 {
		from += n
	}
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if t.players[seat].Chips > 0 {
			return seat
		}
	}
	return -1
}

// PositionName names a funded seat relative to the button: BU/SB/BB, then
// UTG through the cutoff. Heads-up the button is also the small blind and is
// named BU. Unfunded seats are named empty.
func (t *Table) PositionName(seat int) string {
	if t.players[seat].Chips == 0 {
		return ""
	}
	var order []int
	n := len(t.players)
	start := t.button
	if start < 0 {
		start = 0
	}
	for i := 0; i < n; i++ {
		s := (start + i) % n
		if t.players[s].Chips > 0 {
			order = append(order, s)
		}
	}
	return positionName(order, seat)
}

// positionName names seat within the button-first ring order. The three
// seats after the button are always BU/SB/BB (BU/BB heads-up); the rest run
// UTG upward with the last seats before the button taking the late names.
func positionName(order []int, seat int) string {
	idx := -1
	for i, s := range order {
		if s == seat {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ""
	}

	m := len(order)
	if m == 2 {
		return [2]string{"BU", "BB"}[idx]
	}
	switch idx {
	case 0:
		return "BU"
	case 1:
		return "SB"
	case 2:
		return "BB"
	}

	early := m - 3
	j := idx - 3
	lateNames := []string{"CO", "HJ", "LJ"}
	lateUsed := early - 1
	if lateUsed > 3 {
		lateUsed = 3
	}
	if j < early-lateUsed {
		if j == 0 {
			return "UTG"
		}
		return fmt.Sprintf("UTG+%d", j)
	}
	return lateNames[early-1-j]
}
