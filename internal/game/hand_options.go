package game

import "github.com/handlab/holdem/poker"

// HandOption configures a new hand.
type HandOption func(*Hand)

// WithDeck replaces the shuffled deck with a prepared one. Intended for
// tests that script exact hole cards and board run-outs.
func WithDeck(deck *poker.Deck) HandOption {
	return func(h *Hand) {
		h.deck = deck
	}
}

// WithUniformChips gives every seat the same stack before the deal.
func WithUniformChips(chips int) HandOption {
	return func(h *Hand) {
		for _, p := range h.Players {
			p.Chips = chips
		}
	}
}

// WithChips sets one seat's stack before the deal.
func WithChips(seat, chips int) HandOption {
	return func(h *Hand) {
		h.Players[seat].Chips = chips
	}
}
