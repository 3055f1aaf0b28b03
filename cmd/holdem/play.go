package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/handlab/holdem/internal/bot"
	"github.com/handlab/holdem/internal/game"
	"github.com/handlab/holdem/internal/randutil"
)

// PlayCmd deals a number of hands at one table and prints each hand's action
// log and outcome. Stacks carry over between hands and busted bots sit out.
type PlayCmd struct {
	Hands      int      `default:"1" help:"Number of hands to play"`
	Bots       []string `default:"tag,call,maniac" help:"Bot archetypes, one per seat"`
	Seed       int64    `default:"0" help:"RNG seed (0 for time-based)"`
	SmallBlind int      `default:"5" help:"Small blind"`
	BigBlind   int      `default:"10" help:"Big blind"`
	Chips      int      `default:"1000" help:"Starting chips per seat"`
	Debug      bool     `help:"Enable debug logging"`
}

var (
	boardStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	winnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func (c *PlayCmd) Run() error {
	logger := setupLogger(c.Debug)

	if len(c.Bots) < 2 {
		return fmt.Errorf("need at least 2 bots, have %d", len(c.Bots))
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("using time-based seed", "seed", seed)
	}
	rng := randutil.New(seed)

	table := game.NewTable(c.SmallBlind, c.BigBlind)
	agents := make(map[int]game.Agent)
	for seat, archetype := range c.Bots {
		name := fmt.Sprintf("%s-%d", archetype, seat)
		table.AddPlayer(name, c.Chips)
		agent, err := bot.New(archetype, rng, logger)
		if err != nil {
			return err
		}
		agents[seat] = agent
	}

	engine := game.NewEngine(logger)
	for i := 0; i < c.Hands; i++ {
		if table.FundedCount() < 2 {
			logger.Warn("table is down to one funded player", "hands_played", i)
			break
		}
		h, err := table.StartHand(rng)
		if err != nil {
			return err
		}
		res, err := engine.PlayHand(h, agents)
		if err != nil {
			return err
		}
		printHand(h, res, table)
	}
	return nil
}

func printHand(h *game.Hand, res *game.Resolution, table *game.Table) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Hand %s (button %s)", h.ID, table.Players()[h.Button].Name)))
	for _, record := range h.Log {
		fmt.Printf("  %s\n", record)
	}
	if len(res.Board) > 0 {
		cards := make([]string, len(res.Board))
		for i, card := range res.Board {
			cards[i] = card.String()
		}
		fmt.Printf("  board: %s\n", boardStyle.Render(strings.Join(cards, " ")))
	}
	for _, pr := range res.Players {
		if pr.Won == 0 {
			continue
		}
		line := fmt.Sprintf("%s (%s) wins %d", pr.Name, h.PositionName(pr.Seat), pr.Won)
		if pr.Value != nil {
			line += fmt.Sprintf(" with %s", pr.Value)
		}
		fmt.Printf("  %s\n", winnerStyle.Render(line))
	}
	fmt.Println()
}
