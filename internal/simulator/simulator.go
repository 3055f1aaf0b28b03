// Package simulator plays large batches of hands between bot archetypes and
// aggregates the hero's results.
package simulator

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/handlab/holdem/internal/bot"
	"github.com/handlab/holdem/internal/game"
	"github.com/handlab/holdem/internal/randutil"
	"github.com/handlab/holdem/internal/statistics"
)

// Config holds simulation parameters. Hands are seeded independently from
// Seed, so results are identical regardless of worker count.
type Config struct {
	Hands         int
	Seed          int64
	Workers       int
	Seats         int
	SmallBlind    int
	BigBlind      int
	StartingChips int

	// Hero is the archetype under test; Opponents fill the remaining seats,
	// cycling when there are more seats than entries.
	Hero      string
	Opponents []string

	Logger        *log.Logger
	Clock         quartz.Clock
	ProgressEvery time.Duration
}

// Simulator runs poker hand simulations.
type Simulator struct {
	config Config
}

// New creates a simulator, filling config defaults.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if len(config.Opponents) == 0 {
		config.Opponents = []string{"call"}
	}
	return &Simulator{config: config}
}

// Run plays the configured number of hands and returns the hero's
// aggregated statistics.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("nothing to simulate: %d hands", s.config.Hands)
	}
	if s.config.Seats < 2 {
		return nil, fmt.Errorf("need at least 2 seats, have %d", s.config.Seats)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var played atomic.Int64
	progress := s.startProgress(ctx, &played)

	// Results are collected by hand number so aggregation order, and with it
	// every derived statistic, is independent of scheduling.
	results := make([]statistics.HandResult, s.config.Hands)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := 0; i < s.config.Hands; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.playHand(i)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i, err)
			}
			results[i] = result
			played.Add(1)
			return nil
		})
	}
	err := g.Wait()
	cancel()
	progress.wait()
	if err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playHand plays one independently seeded hand with the hero's seat rotated
// to remove positional bias.
func (s *Simulator) playHand(n int) (statistics.HandResult, error) {
	seed := randutil.Derive(s.config.Seed, n)
	rng := randutil.New(seed)

	heroSeat := n % s.config.Seats
	table := game.NewTable(s.config.SmallBlind, s.config.BigBlind)
	agents := make(map[int]game.Agent)
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
			return statistics.HandResult{}, err
		}
		agents[seat] = agent
	}

	h, err := table.StartHand(rng)
	if err != nil {
		return statistics.HandResult{}, err
	}

	engine := game.NewEngine(s.config.Logger)
	res, err := engine.PlayHand(h, agents)
	if err != nil {
		return statistics.HandResult{}, err
	}

	hero := res.Players[heroSeat]
	potChips := 0
	for _, pot := range res.Pots {
		potChips += pot.Amount
	}
	return statistics.HandResult{
		NetBB:          float64(hero.Delta) / float64(s.config.BigBlind),
		Seed:           seed,
		Position:       h.PositionName(heroSeat),
		WentToShowdown: res.ByShowdown && hero.Showdown,
		PotBB:          float64(potChips) / float64(s.config.BigBlind),
	}, nil
}
