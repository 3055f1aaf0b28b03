// Package bot provides simple opponent archetypes for simulations. Each bot
// implements game.Agent and only ever returns actions from the offered legal
// set.
package bot

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/handlab/holdem/internal/game"
	"github.com/handlab/holdem/poker"
)

// New creates a bot by archetype name.
func New(name string, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	switch name {
	case "fold":
		return &FoldBot{}, nil
	case "call":
		return &CallBot{}, nil
	case "rock":
		return &RockBot{rng: rng}, nil
	case "tag":
		return &TAGBot{rng: rng, logger: logger.WithPrefix("tag")}, nil
	case "maniac":
		return &ManiacBot{rng: rng}, nil
	case "random":
		return &RandBot{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown bot type %q (want %v)", name, Types())
	}
}

// Types lists the available archetype names.
func Types() []string {
	return []string{"fold", "call", "rock", "tag", "maniac", "random"}
}

func hasKind(valid []game.ValidAction, kind game.ActionKind) bool {
	for _, v := range valid {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// pick returns the cheapest legal action of the given kind, falling back
// through the alternatives so the result is always legal.
func pick(valid []game.ValidAction, kinds ...game.ActionKind) game.Action {
	for _, kind := range kinds {
		for _, v := range valid {
			if v.Kind == kind {
				return game.Action{Kind: kind, Amount: v.Min}
			}
		}
	}
	return game.Action{Kind: valid[0].Kind, Amount: valid[0].Min}
}

func holeCategory(state game.TableState) poker.HoleCardCategory {
	if len(state.HoleCards) != 2 {
		return poker.CategoryTrash
	}
	return poker.CategorizeHoleCards(state.HoleCards[0], state.HoleCards[1])
}
