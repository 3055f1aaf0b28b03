package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig is the on-disk HCL shape of a simulation run.
type FileConfig struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Table      TableSettings      `hcl:"table,block"`
	Bots       []BotSettings      `hcl:"bot,block"`
}

// SimulationSettings controls the run itself.
type SimulationSettings struct {
	Hands    int    `hcl:"hands,optional"`
	Seed     int64  `hcl:"seed,optional"`
	Workers  int    `hcl:"workers,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// TableSettings controls stakes and table size.
type TableSettings struct {
	Seats         int `hcl:"seats,optional"`
	SmallBlind    int `hcl:"small_blind,optional"`
	BigBlind      int `hcl:"big_blind,optional"`
	StartingChips int `hcl:"starting_chips,optional"`
}

// BotSettings assigns an archetype, with exactly one bot marked as the hero
// whose results are collected.
type BotSettings struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Hero     bool   `hcl:"hero,optional"`
}

// DefaultFileConfig returns the configuration used when no file is given: a
// tight-aggressive hero against calling stations at a 6-max 5/10 table.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Simulation: SimulationSettings{
			Hands:    10000,
			Seed:     1,
			LogLevel: "info",
		},
		Table: TableSettings{
			Seats:         6,
			SmallBlind:    5,
			BigBlind:      10,
			StartingChips: 1000,
		},
		Bots: []BotSettings{
			{Name: "hero", Strategy: "tag", Hero: true},
			{Name: "villain", Strategy: "call"},
		},
	}
}

// LoadFileConfig loads a simulation config from an HCL file, falling back to
// defaults when the file does not exist.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseFileConfig(data, filename)
}

// ParseFileConfig decodes HCL bytes and applies defaults.
func ParseFileConfig(data []byte, filename string) (*FileConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", filename, diags.Error())
	}

	var config FileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %s", filename, diags.Error())
	}

	defaults := DefaultFileConfig()
	if config.Simulation.Hands == 0 {
		config.Simulation.Hands = defaults.Simulation.Hands
	}
	if config.Simulation.Seed == 0 {
		config.Simulation.Seed = defaults.Simulation.Seed
	}
	if config.Simulation.LogLevel == "" {
		config.Simulation.LogLevel = defaults.Simulation.LogLevel
	}
	if config.Table.Seats == 0 {
		config.Table.Seats = defaults.Table.Seats
	}
	if config.Table.SmallBlind == 0 {
		config.Table.SmallBlind = defaults.Table.SmallBlind
	}
	if config.Table.BigBlind == 0 {
		config.Table.BigBlind = defaults.Table.BigBlind
	}
	if config.Table.StartingChips == 0 {
		config.Table.StartingChips = defaults.Table.StartingChips
	}
	if len(config.Bots) == 0 {
		config.Bots = defaults.Bots
	}
	return &config, nil
}

// SimulatorConfig maps the file shape onto runtime parameters.
func (fc *FileConfig) SimulatorConfig() (Config, error) {
	config := Config{
		Hands:         fc.Simulation.Hands,
		Seed:          fc.Simulation.Seed,
		Workers:       fc.Simulation.Workers,
		Seats:         fc.Table.Seats,
		SmallBlind:    fc.Table.SmallBlind,
		BigBlind:      fc.Table.BigBlind,
		StartingChips: fc.Table.StartingChips,
	}
	for _, b := range fc.Bots {
		if b.Hero {
			if config.Hero != "" {
				return Config{}, fmt.Errorf("multiple hero bots: %q and %q", config.Hero, b.Strategy)
			}
			config.Hero = b.Strategy
			continue
		}
		config.Opponents = append(config.Opponents, b.Strategy)
	}
	if config.Hero == "" {
		return Config{}, fmt.Errorf("no bot marked as hero")
	}
	return config, nil
}
