package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Engine drives a hand to completion by asking agents for decisions. An
// agent that returns an action outside the legal set aborts the hand with an
// IllegalActionError rather than having its action coerced.
type Engine struct {
	logger *log.Logger
}

// NewEngine creates an engine that logs decisions at debug level.
func NewEngine(logger *log.Logger) *Engine {
	return &Engine{logger: logger.WithPrefix("engine")}
}

// PlayHand loops the hand until resolution, routing each decision to the
// agent seated at the acting seat.
func (e *Engine) PlayHand(h *Hand, agents map[int]Agent) (*Resolution, error) {
	for !h.Complete() {
		seat := h.CurrentSeat()
		if seat == -1 {
			return nil, fmt.Errorf("hand %s stalled on %s with no actor", h.ID, h.Street)
		}
		agent, ok := agents[seat]
		if !ok {
			return nil, fmt.Errorf("no agent for seat %d", seat)
		}

		state := h.StateFor(seat)
		valid := h.ValidActions()
		action := agent.MakeDecision(state, valid)

		e.logger.Debug("decision",
			"hand", h.ID,
			"street", h.Street,
			"seat", seat,
			"player", h.Players[seat].Name,
			"action", action,
			"pot", state.PotTotal(),
			"to_call", state.ToCall(),
		)

		if err := h.Apply(action); err != nil {
			e.logger.Error("hand aborted", "hand", h.ID, "error", err)
			return nil, err
		}
	}

	res := h.Resolution
	for _, pr := range res.Players {
		if pr.Won > 0 {
			e.logger.Debug("awarded", "hand", h.ID, "player", pr.Name, "won", pr.Won, "delta", pr.Delta)
		}
	}
	return res, nil
}
