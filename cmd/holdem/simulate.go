package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/handlab/holdem/internal/simulator"
	"github.com/handlab/holdem/internal/statistics"
)

// SimulateCmd runs a batch simulation from an HCL config file, with flag
// overrides for the common knobs.
type SimulateCmd struct {
	Config   string   `short:"c" default:"holdem.hcl" help:"HCL config file (defaults apply if missing)"`
	Hands    int      `help:"Override number of hands"`
	Seed     int64    `help:"Override RNG seed"`
	Workers  int      `help:"Override worker count (0 = all CPUs)"`
	Hero     string   `help:"Override hero archetype"`
	Opponent []string `help:"Override opponent archetypes"`
	Debug    bool     `help:"Enable debug logging"`
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	fc, err := simulator.LoadFileConfig(c.Config)
	if err != nil {
		return err
	}
	config, err := fc.SimulatorConfig()
	if err != nil {
		return err
	}
	if c.Hands > 0 {
		config.Hands = c.Hands
	}
	if c.Seed != 0 {
		config.Seed = c.Seed
	}
	if c.Workers > 0 {
		config.Workers = c.Workers
	}
	if c.Hero != "" {
		config.Hero = c.Hero
	}
	if len(c.Opponent) > 0 {
		config.Opponents = c.Opponent
	}
	config.Logger = logger
	config.ProgressEvery = 5 * time.Second

	logger.Info("starting simulation",
		"hands", config.Hands,
		"seed", config.Seed,
		"seats", config.Seats,
		"hero", config.Hero,
		"opponents", strings.Join(config.Opponents, ","),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	stats, err := simulator.New(config).Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printResults(stats, config, elapsed)
	return nil
}

func printResults(stats *statistics.Statistics, config simulator.Config, elapsed time.Duration) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Results: %s vs %s over %d hands (%.1fs)",
		config.Hero, strings.Join(config.Opponents, ","), stats.Hands, elapsed.Seconds())))

	mean := stats.Mean()
	meanStyle := winStyle
	if mean < 0 {
		meanStyle = loseStyle
	}
	lo, hi := stats.ConfidenceInterval95()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	row := func(label, value string) {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render(label), value)
	}
	row("Win rate", meanStyle.Render(fmt.Sprintf("%+.3f bb/hand (%+.1f bb/100)", mean, mean*100)))
	row("95% CI", fmt.Sprintf("[%+.3f, %+.3f] bb/hand", lo, hi))
	row("Std dev", fmt.Sprintf("%.3f bb", stats.StdDev()))
	row("Median", fmt.Sprintf("%+.3f bb", stats.Median()))
	row("Showdown", fmt.Sprintf("%+.1f bb over %d wins", stats.ShowdownBB, stats.ShowdownWins))
	row("Non-showdown", fmt.Sprintf("%+.1f bb over %d wins", stats.NonShowdownBB, stats.NonShowdownWins))
	row("Largest pot", fmt.Sprintf("%.1f bb (%d pots of 50bb+)", stats.MaxPotBB, stats.BigPots))
	w.Flush()

	fmt.Println(titleStyle.Render("By position"))
	pw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, pos := range []string{"BU", "SB", "BB", "UTG", "UTG+1", "UTG+2", "LJ", "HJ", "CO"} {
		ps, ok := stats.ByPosition[pos]
		if !ok {
			continue
		}
		fmt.Fprintf(pw, "%s\t%+.3f bb/hand\t%d hands\n", labelStyle.Render(pos), ps.Mean(), ps.Hands)
	}
	pw.Flush()
}
