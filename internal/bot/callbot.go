package bot

import "github.com/handlab/holdem/internal/game"

// CallBot is the loose-passive archetype: it checks when free and calls any
// bet, never raising and never folding while it has chips to call with.
type CallBot struct{}

func (*CallBot) MakeDecision(_ game.TableState, valid []game.ValidAction) game.Action {
	return pick(valid, game.Check, game.Call, game.Fold)
}
