package game

import (
	"github.com/google/uuid"

	"github.com/handlab/holdem/internal/evaluator"
	"github.com/handlab/holdem/poker"
)

// PotResult records who contended for one pot layer and who won it.
type PotResult struct {
	Amount   int
	Eligible []int
	Winners  []int
}

// PlayerResult is one player's outcome for the hand. Value is set only for
// players whose hand was revealed at showdown.
type PlayerResult struct {
	Seat     int
	Name     string
	Delta    int
	Won      int
	Showdown bool
	Value    *evaluator.HandValue
}

// Resolution is the immutable outcome of a finished hand.
type Resolution struct {
	HandID     uuid.UUID
	ByShowdown bool
	Board      []poker.Card
	Pots       []PotResult
	Players    []PlayerResult
}

// finishFoldOut awards everything to the sole remaining contender.
func (h *Hand) finishFoldOut() error {
	h.refundUncalled()
	pots, err := allocatePots(h.Players)
	if err != nil {
		return err
	}

	won := make([]int, len(h.Players))
	var results []PotResult
	for _, pot := range pots {
		winner := pot.Eligible[0]
		h.Players[winner].Chips += pot.Amount
		won[winner] += pot.Amount
		results = append(results, PotResult{
			Amount:   pot.Amount,
			Eligible: pot.Eligible,
			Winners:  []int{winner},
		})
	}
	return h.finish(false, results, won, nil)
}

// finishShowdown evaluates every contender once, then settles each pot layer
// among its eligible seats, splitting ties and handing odd chips out one at a
// time in seat order starting left of the button.
func (h *Hand) finishShowdown() error {
	values := make(map[int]*evaluator.HandValue)
	for _, p := range h.contenders() {
		v, err := evaluator.Evaluate(append(append([]poker.Card(nil), p.HoleCards...), h.Board...))
		if err != nil {
			return err
		}
		values[p.Seat] = &v
	}

	pots, err := allocatePots(h.Players)
	if err != nil {
		return err
	}

	won := make([]int, len(h.Players))
	var results []PotResult
	for _, pot := range pots {
		winners := h.potWinners(pot, values)
		share := pot.Amount / len(winners)
		odd := pot.Amount % len(winners)
		for _, seat := range winners {
			h.Players[seat].Chips += share
			won[seat] += share
		}
		for _, seat := range h.oddChipOrder(winners) {
			if odd == 0 {
				break
			}
			h.Players[seat].Chips++
			won[seat]++
			odd--
		}
		results = append(results, PotResult{
			Amount:   pot.Amount,
			Eligible: pot.Eligible,
			Winners:  winners,
		})
	}
	return h.finish(true, results, won, values)
}

// potWinners returns the eligible seats holding the best hand, in seat order.
func (h *Hand) potWinners(pot Pot, values map[int]*evaluator.HandValue) []int {
	var winners []int
	var best *evaluator.HandValue
	for _, seat := range pot.Eligible {
		v := values[seat]
		switch {
		case best == nil || v.Compare(*best) > 0:
			best = v
			winners = winners[:0]
			winners = append(winners, seat)
		case v.Compare(*best) == 0:
			winners = append(winners, seat)
		}
	}
	return winners
}

// oddChipOrder reorders winners into seat order starting left of the button,
// which fixes who receives indivisible remainder chips.
func (h *Hand) oddChipOrder(winners []int) []int {
	isWinner := make(map[int]bool, len(winners))
	for _, seat := range winners {
		isWinner[seat] = true
	}
	ordered := make([]int, 0, len(winners))
	n := len(h.Players)
	for i := 1; i <= n; i++ {
		seat := (h.Button + i) % n
		if isWinner[seat] {
			ordered = append(ordered, seat)
		}
	}
	return ordered
}

// finish seals the hand: commitments are zeroed (the pots they funded have
// been paid out), the chip total is re-verified, and the resolution is built.
func (h *Hand) finish(byShowdown bool, pots []PotResult, won []int, values map[int]*evaluator.HandValue) error {
	for _, p := range h.Players {
		p.TotalBet = 0
		p.StreetBet = 0
	}
	h.Street = Complete
	h.betting = nil
	if err := h.checkConservation("resolution"); err != nil {
		return err
	}

	res := &Resolution{
		HandID:     h.ID,
		ByShowdown: byShowdown,
		Board:      append([]poker.Card(nil), h.Board...),
		Pots:       pots,
	}
	for i, p := range h.Players {
		res.Players = append(res.Players, PlayerResult{
			Seat:     p.Seat,
			Name:     p.Name,
			Delta:    p.Chips - h.startChips[i],
			Won:      won[i],
			Showdown: values != nil && values[p.Seat] != nil,
			Value:    values[p.Seat],
		})
	}
	h.Resolution = res
	return nil
}
