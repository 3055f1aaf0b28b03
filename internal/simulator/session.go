package simulator

import (
	"context"
	"fmt"

	"github.com/handlab/holdem/internal/bot"
	"github.com/handlab/holdem/internal/game"
	"github.com/handlab/holdem/internal/randutil"
	"github.com/handlab/holdem/internal/statistics"
)

// RunSession plays up to the configured number of hands at one persistent
// table: stacks carry over, the button rotates, and busted seats sit out.
// The session ends early when the hero busts or only one funded seat
// remains. Unlike Run, hands are sequential by nature, so no workers are
// involved.
func (s *Simulator) RunSession(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("nothing to simulate: %d hands", s.config.Hands)
	}
	if s.config.Seats < 2 {
		return nil, fmt.Errorf("need at least 2 seats, have %d", s.config.Seats)
	}

	rng := randutil.New(s.config.Seed)
	table := game.NewTable(s.config.SmallBlind, s.config.BigBlind)
	agents := make(map[int]game.Agent)
	const heroSeat = 0
	opponent := 0
	for seat := 0; seat < s.config.Seats; seat++ {
		archetype := s.config.Hero
		name := "hero"
		if seat != heroSeat {
			archetype = s.config.Opponents[opponent%len(s.config.Opponents)]
			name = fmt.Sprintf("%s-%d", archetype, seat)
			opponent++
		}
		table.AddPlayer(name, s.config.StartingChips)
		agent, err := bot.New(archetype, rng, s.config.Logger)
		if err != nil {
			return nil, err
		}
		agents[seat] = agent
	}

	engine := game.NewEngine(s.config.Logger)
	stats := &statistics.Statistics{}
	for i := 0; i < s.config.Hands; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hero := table.Players()[heroSeat]
		if hero.Chips == 0 {
			s.config.Logger.Info("hero busted", "hands_played", i)
			break
		}
		if table.FundedCount() < 2 {
			s.config.Logger.Info("table emptied", "hands_played", i)
			break
		}

		h, err := table.StartHand(rng)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
		res, err := engine.PlayHand(h, agents)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}

		heroResult := res.Players[heroSeat]
		potChips := 0
		for _, pot := range res.Pots {
			potChips += pot.Amount
		}
		stats.Add(statistics.HandResult{
			NetBB:          float64(heroResult.Delta) / float64(s.config.BigBlind),
			Seed:           s.config.Seed,
			Position:       h.PositionName(heroSeat),
			WentToShowdown: res.ByShowdown && heroResult.Showdown,
			PotBB:          float64(potChips) / float64(s.config.BigBlind),
		})
	}
	if stats.Hands == 0 {
		return nil, fmt.Errorf("no hands played")
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}
