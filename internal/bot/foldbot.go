package bot

import "github.com/handlab/holdem/internal/game"

// FoldBot checks when free and otherwise folds. Useful as a baseline: any
// strategy should beat it.
type FoldBot struct{}

func (*FoldBot) MakeDecision(_ game.TableState, valid []game.ValidAction) game.Action {
	return pick(valid, game.Check, game.Fold)
}
