package bot

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/handlab/holdem/internal/evaluator"
	"github.com/handlab/holdem/internal/game"
	"github.com/handlab/holdem/poker"
)

// TAGBot is the tight-aggressive archetype: a narrow preflop range played
// with raises, and postflop aggression proportional to made-hand strength.
type TAGBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

func (t *TAGBot) MakeDecision(state game.TableState, valid []game.ValidAction) game.Action {
	if state.Street == game.Preflop {
		return t.preflop(state, valid)
	}
	return t.postflop(state, valid)
}

func (t *TAGBot) preflop(state game.TableState, valid []game.ValidAction) game.Action {
	switch holeCategory(state) {
	case poker.CategoryPremium:
		if hasKind(valid, game.Raise) {
			return t.sizedRaise(state, valid)
		}
		return pick(valid, game.AllIn, game.Call, game.Check)
	case poker.CategoryStrong:
		if t.rng.Float64() < 0.5 && hasKind(valid, game.Raise) {
			return t.sizedRaise(state, valid)
		}
		return pick(valid, game.Check, game.Call, game.Fold)
	case poker.CategoryMedium:
		// Set-mine cheap.
		if state.ToCall() <= state.BigBlind {
			return pick(valid, game.Check, game.Call, game.Fold)
		}
		return pick(valid, game.Check, game.Fold)
	default:
		return pick(valid, game.Check, game.Fold)
	}
}

func (t *TAGBot) postflop(state game.TableState, valid []game.ValidAction) game.Action {
	v, err := evaluator.Evaluate(append(append([]poker.Card(nil), state.HoleCards...), state.Board...))
	if err != nil {
		if t.logger != nil {
			t.logger.Warn("evaluating hand", "error", err)
		}
		return pick(valid, game.Check, game.Fold)
	}

	switch {
	case v.Category >= evaluator.TwoPair:
		if hasKind(valid, game.Bet) {
			return t.sizedBet(state, valid)
		}
		if hasKind(valid, game.Raise) {
			return t.sizedRaise(state, valid)
		}
		return pick(valid, game.Call, game.Check, game.AllIn)
	case v.Category == evaluator.Pair:
		if state.ToCall() <= state.BigBlind*3 {
			return pick(valid, game.Check, game.Call, game.Fold)
		}
		return pick(valid, game.Check, game.Fold)
	default:
		// Occasional stab at an unclaimed pot.
		if state.ToCall() == 0 && t.rng.Float64() < 0.15 && hasKind(valid, game.Bet) {
			return t.sizedBet(state, valid)
		}
		return pick(valid, game.Check, game.Fold)
	}
}

// sizedBet bets about two thirds of the pot, clamped to the legal bounds.
func (t *TAGBot) sizedBet(state game.TableState, valid []game.ValidAction) game.Action {
	return t.sized(state, valid, game.Bet)
}

func (t *TAGBot) sizedRaise(state game.TableState, valid []game.ValidAction) game.Action {
	return t.sized(state, valid, game.Raise)
}

func (t *TAGBot) sized(state game.TableState, valid []game.ValidAction, kind game.ActionKind) game.Action {
	for _, v := range valid {
		if v.Kind != kind {
			continue
		}
		amount := state.PotTotal() * 2 / 3
		if amount < v.Min {
			amount = v.Min
		}
		if amount > v.Max {
			amount = v.Max
		}
		return game.Action{Kind: kind, Amount: amount}
	}
	return pick(valid, game.Check, game.Call, game.Fold)
}
