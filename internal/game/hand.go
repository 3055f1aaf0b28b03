package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/handlab/holdem/internal/evaluator"
	"github.com/handlab/holdem/poker"
)

// Hand runs a single hand from blinds to resolution. It owns the deck and
// the betting round and mutates the players' stacks and statuses in place;
// the table owns the players between hands.
type Hand struct {
	ID      uuid.UUID
	Players []*Player
	Button  int

	SmallBlind int
	BigBlind   int

	Street Street
	Board  []poker.Card
	Log    []ActionRecord

	// Resolution is set once Street reaches Complete.
	Resolution *Resolution

	deck       *poker.Deck
	betting    *BettingRound
	startTotal int
	startChips []int
}

// NewHand posts blinds, deals hole cards and opens preflop betting. Players
// with chips are dealt in; players without chips sit the hand out. The hand
// may already be Complete on return when the blinds put everyone all-in and
// the run-out decides it.
func NewHand(rng *rand.Rand, players []*Player, button, smallBlind, bigBlind int, opts ...HandOption) (*Hand, error) {
	h := &Hand{
		ID:         uuid.New(),
		Players:    players,
		Button:     button,
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
		Street:     Preflop,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.deck == nil {
		h.deck = poker.NewDeck(rng)
	}

	dealtIn := 0
	for i, p := range players {
		p.Seat = i
		p.HoleCards = nil
		p.StreetBet = 0
		p.TotalBet = 0
		if p.Chips > 0 {
			p.Status = Active
			dealtIn++
		} else {
			p.Status = SittingOut
		}
		h.startTotal += p.Chips
		h.startChips = append(h.startChips, p.Chips)
	}
	if dealtIn < 2 {
		return nil, fmt.Errorf("need at least 2 funded players, have %d", dealtIn)
	}
	if players[button].Status != Active {
		return nil, fmt.Errorf("button seat %d is not dealt in", button)
	}
	if smallBlind <= 0 || bigBlind < smallBlind {
		return nil, fmt.Errorf("invalid blinds %d/%d", smallBlind, bigBlind)
	}

	// Heads-up the button posts the small blind and acts first preflop.
	var sbSeat, bbSeat int
	if dealtIn == 2 {
		sbSeat = button
		bbSeat = h.nextDealtIn(button + 1)
	} else {
		sbSeat = h.nextDealtIn(button + 1)
		bbSeat = h.nextDealtIn(sbSeat + 1)
	}
	sbPosted := players[sbSeat].pay(smallBlind)
	bbPosted := players[bbSeat].pay(bigBlind)

	// Two passes, one card at a time, starting left of the button.
	for pass := 0; pass < 2; pass++ {
		for i := 1; i <= len(players); i++ {
			p := players[(button+i)%len(players)]
			if p.Status == SittingOut {
				continue
			}
			p.HoleCards = append(p.HoleCards, h.deck.DealOne())
		}
	}

	// A short all-in blind opens for less than the full blind; the minimum
	// raise size stays pinned to the big blind.
	currentBet := bbPosted
	if sbPosted > currentBet {
		currentBet = sbPosted
	}
	h.betting = newBettingRound(players, (bbSeat+1)%len(players), currentBet, bigBlind, bigBlind)

	if err := h.advance(); err != nil {
		return nil, err
	}
	return h, nil
}

// nextDealtIn returns the first seat at or after from (clockwise) that is
// dealt into the hand.
func (h *Hand) nextDealtIn(from int) int {
	n := len(h.Players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if h.Players[seat].Status != SittingOut && h.Players[seat].Status != Folded {
			return seat
		}
	}
	return -1
}

// PositionName names a dealt-in seat relative to this hand's button. Unlike
// the table's naming it is stable after the hand: stacks changing mid-hand
// do not move anyone's position.
func (h *Hand) PositionName(seat int) string {
	if h.Players[seat].Status == SittingOut {
		return ""
	}
	var order []int
	n := len(h.Players)
	for i := 0; i < n; i++ {
		s := (h.Button + i) % n
		if h.Players[s].Status != SittingOut {
			order = append(order, s)
		}
	}
	return positionName(order, seat)
}

func (h *Hand) contenders() []*Player {
	var in []*Player
	for _, p := range h.Players {
		if p.InHand() {
			in = append(in, p)
		}
	}
	return in
}

// Complete reports whether the hand has been resolved.
func (h *Hand) Complete() bool {
	return h.Street == Complete
}

// CurrentSeat returns the seat due to act, or -1 when no action is pending.
func (h *Hand) CurrentSeat() int {
	if h.Street >= Showdown || h.betting == nil {
		return -1
	}
	return h.betting.Actor()
}

// ValidActions returns the legal actions for the current actor.
func (h *Hand) ValidActions() []ValidAction {
	if h.CurrentSeat() == -1 {
		return nil
	}
	return h.betting.ValidActions()
}

// StateFor builds the table view handed to the agent acting for seat.
func (h *Hand) StateFor(seat int) TableState {
	p := h.Players[seat]
	ts := TableState{
		Street:     h.Street,
		Board:      append([]poker.Card(nil), h.Board...),
		Pots:       h.potsSnapshot(),
		CurrentBet: h.betting.CurrentBet,
		MinRaise:   h.betting.MinRaise,
		BigBlind:   h.BigBlind,
		Button:     h.Button,
		ActingSeat: seat,
		HoleCards:  append([]poker.Card(nil), p.HoleCards...),
		Chips:      p.Chips,
		StreetBet:  p.StreetBet,
		TotalBet:   p.TotalBet,
	}
	for _, q := range h.Players {
		ts.Players = append(ts.Players, PlayerPublic{
			Seat:      q.Seat,
			Name:      q.Name,
			Chips:     q.Chips,
			StreetBet: q.StreetBet,
			TotalBet:  q.TotalBet,
			Status:    q.Status,
		})
	}
	return ts
}

// potsSnapshot layers the chips committed so far. Mid-street the top layer
// always has an eligible committer, so allocation cannot fail here.
func (h *Hand) potsSnapshot() []Pot {
	pots, err := allocatePots(h.Players)
	if err != nil {
		return nil
	}
	return pots
}

// Apply executes the current actor's action and advances the hand as far as
// it can go without further input: closing streets, running out the board
// when nobody can act, and resolving the hand when it ends.
func (h *Hand) Apply(action Action) error {
	seat := h.CurrentSeat()
	if seat == -1 {
		return &IllegalActionError{Seat: -1, Attempted: action}
	}
	if err := h.betting.Apply(action); err != nil {
		return err
	}
	h.Log = append(h.Log, ActionRecord{
		Street: h.Street,
		Seat:   seat,
		Name:   h.Players[seat].Name,
		Action: action,
	})
	return h.advance()
}

func (h *Hand) advance() error {
	for {
		if h.Street == Complete {
			return nil
		}
		if len(h.contenders()) == 1 {
			return h.finishFoldOut()
		}
		if h.Street == Showdown {
			return h.finishShowdown()
		}
		if !h.betting.Closed() {
			return nil
		}
		if err := h.closeStreet(); err != nil {
			return err
		}
	}
}

// closeStreet settles the finished betting round and deals the next street.
func (h *Hand) closeStreet() error {
	h.refundUncalled()
	for _, p := range h.Players {
		p.StreetBet = 0
	}
	if err := h.checkConservation(h.Street.String()); err != nil {
		return err
	}

	switch h.Street {
	case Preflop:
		h.Street = Flop
		if err := h.dealBoard(3); err != nil {
			return err
		}
	case Flop:
		h.Street = Turn
		if err := h.dealBoard(1); err != nil {
			return err
		}
	case Turn:
		h.Street = River
		if err := h.dealBoard(1); err != nil {
			return err
		}
	case River:
		h.Street = Showdown
		h.betting = nil
		return nil
	}

	// Postflop action starts left of the button. With at most one player
	// still able to act the round closes immediately and the board runs out.
	h.betting = newBettingRound(h.Players, h.nextDealtIn(h.Button+1), 0, h.BigBlind, h.BigBlind)
	return nil
}

func (h *Hand) dealBoard(n int) error {
	h.deck.Burn()
	cards := h.deck.Deal(n)
	if cards == nil {
		return fmt.Errorf("dealing %s: %w", h.Street, evaluator.ErrInsufficientCards)
	}
	h.Board = append(h.Board, cards...)
	return nil
}

// refundUncalled returns chips committed above what any opponent matched.
// Those chips can never enter a contested pot layer, so they go back to
// their owner before the layers are cut.
func (h *Hand) refundUncalled() {
	seat, amount := uncalledExcess(h.Players)
	if amount == 0 {
		return
	}
	p := h.Players[seat]
	p.Chips += amount
	p.TotalBet -= amount
	if p.StreetBet >= amount {
		p.StreetBet -= amount
	} else {
		p.StreetBet = 0
	}
}

// checkConservation verifies no chips appeared or vanished: stacks plus
// commitments must always equal the chips the hand started with.
func (h *Hand) checkConservation(stage string) error {
	got := 0
	for _, p := range h.Players {
		got += p.Chips + p.TotalBet
	}
	if got != h.startTotal {
		return &InvariantViolationError{Stage: stage, Want: h.startTotal, Got: got}
	}
	return nil
}
