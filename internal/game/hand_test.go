package game

import (
	"testing"

	"github.com/handlab/holdem/internal/randutil"
	"github.com/handlab/holdem/poker"
)

func mustHand(t *testing.T, players []*Player, button, sb, bb int, opts ...HandOption) *Hand {
	t.Helper()
	h, err := NewHand(randutil.New(1), players, button, sb, bb, opts...)
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}
	return h
}

func playScript(t *testing.T, h *Hand, actions ...Action) {
	t.Helper()
	for i, a := range actions {
		if h.Complete() {
			t.Fatalf("hand complete before action %d (%s)", i, a)
		}
		if err := h.Apply(a); err != nil {
			t.Fatalf("action %d (%s) by seat %d: %v", i, a, h.CurrentSeat(), err)
		}
	}
}

func TestNewHandBlindsAndOrder(t *testing.T) {
	t.Parallel()

	players := newTestPlayers(100, 100, 100)
	h := mustHand(t, players, 0, 5, 10)

	if players[1].TotalBet != 5 || players[1].Chips != 95 {
		t.Errorf("small blind: bet %d chips %d, want 5/95", players[1].TotalBet, players[1].Chips)
	}
	if players[2].TotalBet != 10 || players[2].Chips != 90 {
		t.Errorf("big blind: bet %d chips %d, want 10/90", players[2].TotalBet, players[2].Chips)
	}
	if h.CurrentSeat() != 0 {
		t.Errorf("first to act = %d, want 0 (left of big blind)", h.CurrentSeat())
	}
	if h.Street != Preflop {
		t.Errorf("street = %s, want preflop", h.Street)
	}
	for i, p := range players {
		if len(p.HoleCards) != 2 {
			t.Errorf("player %d has %d hole cards, want 2", i, len(p.HoleCards))
		}
	}
}

func TestNewHandHeadsUpButtonIsSmallBlind(t *testing.T) {
	t.Parallel()

	players := newTestPlayers(100, 100)
	h := mustHand(t, players, 0, 5, 10)

	if players[0].TotalBet != 5 {
		t.Errorf("button posted %d, want small blind 5", players[0].TotalBet)
	}
	if players[1].TotalBet != 10 {
		t.Errorf("non-button posted %d, want big blind 10", players[1].TotalBet)
	}
	if h.CurrentSeat() != 0 {
		t.Errorf("first to act = %d, want button", h.CurrentSeat())
	}
}

func TestHandFoldOut(t *testing.T) {
	t.Parallel()

	players := newTestPlayers(100, 100, 100)
	h := mustHand(t, players, 0, 5, 10)

	playScript(t, h, Action{Kind: Fold}, Action{Kind: Fold})

	if !h.Complete() {
		t.Fatal("hand should be complete when only one contender remains")
	}
	res := h.Resolution
	if res.ByShowdown {
		t.Error("fold-out must not be a showdown")
	}
	// The big blind keeps their own blind (the uncalled excess) and wins the
	// small blind.
	if players[2].Chips != 105 {
		t.Errorf("winner chips = %d, want 105", players[2].Chips)
	}
	if players[1].Chips != 95 || players[0].Chips != 100 {
		t.Errorf("loser chips = %d/%d, want 95/100", players[1].Chips, players[0].Chips)
	}
	for _, pr := range res.Players {
		if pr.Showdown {
			t.Errorf("seat %d revealed a hand on a fold-out", pr.Seat)
		}
	}
}

func TestHandCheckDownToShowdown(t *testing.T) {
	t.Parallel()

	// Heads-up, button seat 0. Dealing goes one card at a time starting left
	// of the button, so the deck reads: seat1, seat0, seat1, seat0, then
	// burn + flop, burn + turn, burn + river.
	deck := poker.NewOrderedDeck(poker.MustCards(
		"Kd", "As", "Kc", "Ah",
		"Jh", "2c", "7d", "9h",
		"Jc", "3s",
		"Js", "5d",
	)...)
	players := newTestPlayers(100, 100)
	h := mustHand(t, players, 0, 5, 10, WithDeck(deck))

	playScript(t, h,
		Action{Kind: Call, Amount: 5}, // button completes
		Action{Kind: Check},           // big blind option
	)
	if h.Street != Flop || len(h.Board) != 3 {
		t.Fatalf("street = %s board %v, want flop with 3 cards", h.Street, h.Board)
	}
	if h.CurrentSeat() != 1 {
		t.Fatalf("postflop first to act = %d, want non-button seat", h.CurrentSeat())
	}

	playScript(t, h,
		Action{Kind: Check}, Action{Kind: Check}, // flop
		Action{Kind: Bet, Amount: 20}, Action{Kind: Call, Amount: 20}, // turn
		Action{Kind: Check}, Action{Kind: Bet, Amount: 30}, Action{Kind: Call, Amount: 30}, // river
	)

	if !h.Complete() {
		t.Fatalf("hand should be complete, street = %s", h.Street)
	}
	res := h.Resolution
	if !res.ByShowdown {
		t.Fatal("hand must resolve by showdown")
	}
	// Aces beat kings: seat 0 wins the 120-chip pot.
	if players[0].Chips != 160 || players[1].Chips != 40 {
		t.Errorf("stacks = %d/%d, want 160/40", players[0].Chips, players[1].Chips)
	}
	if len(res.Pots) != 1 || res.Pots[0].Amount != 120 {
		t.Fatalf("pots = %v, want one 120-chip pot", res.Pots)
	}
	if len(res.Pots[0].Winners) != 1 || res.Pots[0].Winners[0] != 0 {
		t.Errorf("winners = %v, want [0]", res.Pots[0].Winners)
	}
	if len(res.Board) != 5 {
		t.Errorf("board = %v, want 5 cards", res.Board)
	}
}

func TestHandAllInRunout(t *testing.T) {
	t.Parallel()

	// Identical high-card hands split the pot after an automatic run-out.
	deck := poker.NewOrderedDeck(poker.MustCards(
		"As", "Ah", "Ks", "Kh",
		"Jd", "2c", "7d", "9h",
		"Jc", "3s",
		"Jh", "5d",
	)...)
	players := newTestPlayers(100, 100)
	h := mustHand(t, players, 0, 5, 10, WithDeck(deck))

	playScript(t, h,
		Action{Kind: AllIn, Amount: 95},
		Action{Kind: Call, Amount: 90},
	)

	if !h.Complete() {
		t.Fatalf("hand should run out once everyone is all-in, street = %s", h.Street)
	}
	if len(h.Board) != 5 {
		t.Errorf("board = %v, want full run-out", h.Board)
	}
	if players[0].Chips != 100 || players[1].Chips != 100 {
		t.Errorf("stacks = %d/%d, want an even split", players[0].Chips, players[1].Chips)
	}
}

func TestHandUncalledAllInRefunded(t *testing.T) {
	t.Parallel()

	players := newTestPlayers(500, 100)
	h := mustHand(t, players, 0, 5, 10)

	playScript(t, h,
		Action{Kind: AllIn, Amount: 495},
		Action{Kind: Fold},
	)

	if !h.Complete() {
		t.Fatal("hand should be complete")
	}
	if players[0].Chips != 510 {
		t.Errorf("winner chips = %d, want 510 (excess over the blind refunded)", players[0].Chips)
	}
	if players[1].Chips != 90 {
		t.Errorf("folder chips = %d, want 90", players[1].Chips)
	}
}

func TestHandShortAllInBigBlind(t *testing.T) {
	t.Parallel()

	// The big blind can post only 4 of the 10 chips. The opening bet is the
	// 5-chip small blind, and the short blind caps the main pot at 4 apiece.
	deck := poker.NewOrderedDeck(poker.MustCards(
		"Qh", "Ah", "Kh", "Qd", "Ad", "Kd",
		"2c", "3c", "4d", "7s",
		"2d", "8h",
		"2h", "9s",
	)...)
	players := newTestPlayers(100, 100, 4)
	h := mustHand(t, players, 0, 5, 10, WithDeck(deck))

	if players[2].Status != StatusAllIn {
		t.Fatalf("short big blind status = %s, want allin", players[2].Status)
	}
	valid := h.ValidActions()
	foundCall := false
	for _, v := range valid {
		if v.Kind == Call && v.Min == 5 {
			foundCall = true
		}
	}
	if !foundCall {
		t.Fatalf("opener should call the 5-chip small blind, got %v", valid)
	}

	playScript(t, h,
		Action{Kind: Call, Amount: 5}, // button
		Action{Kind: Check},           // small blind completes nothing
		Action{Kind: Check}, Action{Kind: Check}, // flop
		Action{Kind: Check}, Action{Kind: Check}, // turn
		Action{Kind: Check}, Action{Kind: Check}, // river
	)

	if !h.Complete() {
		t.Fatalf("hand should be complete, street = %s", h.Street)
	}
	// Aces take the 12-chip main pot; kings beat queens for the 2-chip side.
	if players[2].Chips != 12 {
		t.Errorf("short stack chips = %d, want 12", players[2].Chips)
	}
	if players[0].Chips != 97 {
		t.Errorf("side pot winner chips = %d, want 97", players[0].Chips)
	}
	if players[1].Chips != 95 {
		t.Errorf("side pot loser chips = %d, want 95", players[1].Chips)
	}
}

func TestHandOddChipGoesLeftOfButton(t *testing.T) {
	t.Parallel()

	// Board plays for both remaining players; the 5-chip pot splits 2/2 with
	// the odd chip going to the first winner left of the button.
	deck := poker.NewOrderedDeck(poker.MustCards(
		"9s", "2d", "2c", "9c", "3d", "3c",
		"7h", "Ah", "Ad", "Kh",
		"7s", "Kd",
		"7d", "Qs",
	)...)
	players := newTestPlayers(100, 100, 100)
	h := mustHand(t, players, 0, 1, 2, WithDeck(deck))

	playScript(t, h,
		Action{Kind: Call, Amount: 2}, // button
		Action{Kind: Fold},            // small blind
		Action{Kind: Check},           // big blind option
		Action{Kind: Check}, Action{Kind: Check}, // flop
		Action{Kind: Check}, Action{Kind: Check}, // turn
		Action{Kind: Check}, Action{Kind: Check}, // river
	)

	if !h.Complete() {
		t.Fatalf("hand should be complete, street = %s", h.Street)
	}
	// Seat 2 is the first winner left of the button and receives the odd chip.
	if players[2].Chips != 101 {
		t.Errorf("seat 2 chips = %d, want 101", players[2].Chips)
	}
	if players[0].Chips != 100 {
		t.Errorf("seat 0 chips = %d, want 100", players[0].Chips)
	}
	if players[1].Chips != 99 {
		t.Errorf("folder chips = %d, want 99", players[1].Chips)
	}
}

func TestHandRejectsIllegalAction(t *testing.T) {
	t.Parallel()

	players := newTestPlayers(100, 100, 100)
	h := mustHand(t, players, 0, 5, 10)

	err := h.Apply(Action{Kind: Bet, Amount: 50})
	if err == nil {
		t.Fatal("betting into the blinds must be rejected (only call/raise/fold)")
	}
	if _, ok := err.(*IllegalActionError); !ok {
		t.Fatalf("error = %T, want *IllegalActionError", err)
	}
	if h.CurrentSeat() != 0 {
		t.Errorf("rejected action must not advance the hand")
	}
	if len(h.Log) != 0 {
		t.Errorf("rejected action must not be logged, log = %v", h.Log)
	}
}

func TestHandSittingOutSkipped(t *testing.T) {
	t.Parallel()

	players := newTestPlayers(100, 0, 100, 100)
	h := mustHand(t, players, 0, 5, 10)

	if players[1].Status != SittingOut {
		t.Fatalf("bust seat status = %s, want sittingout", players[1].Status)
	}
	if len(players[1].HoleCards) != 0 {
		t.Errorf("bust seat was dealt %v", players[1].HoleCards)
	}
	// Blinds skip the empty seat: seat 2 posts small, seat 3 posts big.
	if players[2].TotalBet != 5 || players[3].TotalBet != 10 {
		t.Errorf("blinds = %d/%d, want 5/10", players[2].TotalBet, players[3].TotalBet)
	}
	if h.CurrentSeat() != 0 {
		t.Errorf("first to act = %d, want 0", h.CurrentSeat())
	}
}

func TestHandConservesChipsUnderRandomPlay(t *testing.T) {
	t.Parallel()

	rng := randutil.New(777)
	for trial := 0; trial < 200; trial++ {
		players := newTestPlayers(200, 150, 80, 200, 40, 200)
		startTotal := 0
		for _, p := range players {
			startTotal += p.Chips
		}

		h, err := NewHand(rng, players, trial%len(players), 5, 10)
		if err != nil {
			t.Fatalf("trial %d: NewHand: %v", trial, err)
		}
		for !h.Complete() {
			valid := h.ValidActions()
			pick := valid[rng.IntN(len(valid))]
			amount := pick.Min
			if pick.Max > pick.Min {
				amount += rng.IntN(pick.Max - pick.Min + 1)
			}
			if err := h.Apply(Action{Kind: pick.Kind, Amount: amount}); err != nil {
				t.Fatalf("trial %d: apply: %v", trial, err)
			}
		}

		total := 0
		for _, p := range players {
			total += p.Chips
			if p.TotalBet != 0 || p.StreetBet != 0 {
				t.Fatalf("trial %d: seat %d still has commitments after resolution", trial, p.Seat)
			}
		}
		if total != startTotal {
			t.Fatalf("trial %d: chips = %d, want %d", trial, total, startTotal)
		}

		// Resolution deltas must sum to zero and match the stacks.
		deltaSum := 0
		for _, pr := range h.Resolution.Players {
			deltaSum += pr.Delta
		}
		if deltaSum != 0 {
			t.Fatalf("trial %d: deltas sum to %d", trial, deltaSum)
		}
	}
}
