package bot

import (
	"math/rand/v2"

	"github.com/handlab/holdem/internal/game"
)

// ManiacBot is the loose-aggressive archetype: it raises most opportunities
// regardless of holding and almost never folds.
type ManiacBot struct {
	rng *rand.Rand
}

func (m *ManiacBot) MakeDecision(state game.TableState, valid []game.ValidAction) game.Action {
	roll := m.rng.Float64()

	if roll < 0.6 {
		for _, kind := range []game.ActionKind{game.Raise, game.Bet} {
			for _, v := range valid {
				if v.Kind != kind {
					continue
				}
				// Between a minimum and a pot-sized raise.
				amount := v.Min + m.rng.IntN(state.PotTotal()+1)
				if amount > v.Max {
					amount = v.Max
				}
				return game.Action{Kind: kind, Amount: amount}
			}
		}
	}
	if roll < 0.65 && hasKind(valid, game.AllIn) {
		return pick(valid, game.AllIn)
	}
	return pick(valid, game.Check, game.Call, game.Fold)
}
