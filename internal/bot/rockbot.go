package bot

import (
	"math/rand/v2"

	"github.com/handlab/holdem/internal/game"
	"github.com/handlab/holdem/poker"
)

// RockBot is the tight-passive archetype: it continues only with strong
// starting hands and even then mostly just calls.
type RockBot struct {
	rng *rand.Rand
}

func (r *RockBot) MakeDecision(state game.TableState, valid []game.ValidAction) game.Action {
	category := holeCategory(state)

	if state.Street == game.Preflop {
		switch category {
		case poker.CategoryPremium:
			// Occasionally raise the very top of the range.
			if r.rng.Float64() < 0.3 && hasKind(valid, game.Raise) {
				return pick(valid, game.Raise)
			}
			return pick(valid, game.Check, game.Call)
		case poker.CategoryStrong, poker.CategoryMedium:
			return pick(valid, game.Check, game.Call, game.Fold)
		default:
			return pick(valid, game.Check, game.Fold)
		}
	}

	// Postflop: never bets, calls only cheap bets with a playable range.
	if category == poker.CategoryPremium || category == poker.CategoryStrong {
		return pick(valid, game.Check, game.Call, game.Fold)
	}
	toCall := state.ToCall()
	if toCall > 0 && toCall <= state.BigBlind*2 && category == poker.CategoryMedium {
		return pick(valid, game.Call, game.Fold)
	}
	return pick(valid, game.Check, game.Fold)
}
