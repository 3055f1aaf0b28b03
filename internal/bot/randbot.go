package bot

import (
	"math/rand/v2"

	"github.com/handlab/holdem/internal/game"
)

// RandBot picks uniformly among the legal actions with a uniform amount
// inside the chosen bounds. Good for fuzzing the engine.
type RandBot struct {
	rng *rand.Rand
}

func (r *RandBot) MakeDecision(_ game.TableState, valid []game.ValidAction) game.Action {
	v := valid[r.rng.IntN(len(valid))]
	amount := v.Min
	if v.Max > v.Min {
		amount += r.rng.IntN(v.Max - v.Min + 1)
	}
	return game.Action{Kind: v.Kind, Amount: amount}
}
