package main

import (
	"fmt"
	"strings"

	"github.com/handlab/holdem/internal/evaluator"
	"github.com/handlab/holdem/poker"
)

// EvalCmd evaluates the best five-card hand from 5-7 cards given in compact
// notation, e.g. "AsKd" or "As Kd Qh Js Th 9c 2d".
type EvalCmd struct {
	Cards []string `arg:"" required:"" help:"Cards in notation like As Kd Qh Js Th"`
}

func (c *EvalCmd) Run() error {
	var cards []poker.Card
	for _, field := range c.Cards {
		// Accept both "AsKd" runs and space-separated cards.
		field = strings.TrimSpace(field)
		for i := 0; i+2 <= len(field); i += 2 {
			card, err := poker.ParseCard(field[i : i+2])
			if err != nil {
				return err
			}
			cards = append(cards, card)
		}
	}
	if len(cards) < 5 || len(cards) > 7 {
		return fmt.Errorf("need 5 to 7 cards, have %d", len(cards))
	}

	value, err := evaluator.Evaluate(cards)
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render(value.String()))
	return nil
}
