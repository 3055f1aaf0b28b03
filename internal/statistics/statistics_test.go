package statistics

import (
	"math"
	"testing"
)

func TestStatisticsEmpty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Mean() = %f, want 0", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Variance() = %f, want 0", stats.Variance())
	}
	if stats.StdDev() != 0 {
		t.Errorf("StdDev() = %f, want 0", stats.StdDev())
	}
	if stats.Median() != 0 {
		t.Errorf("Median() = %f, want 0", stats.Median())
	}
	if stats.Percentile(0.5) != 0 {
		t.Errorf("Percentile(0.5) = %f, want 0", stats.Percentile(0.5))
	}
}

func TestStatisticsSingleValue(t *testing.T) {
	stats := &Statistics{}
	stats.Add(HandResult{
		NetBB:          2.5,
		Seed:           12345,
		Position:       "BU",
		WentToShowdown: true,
		PotBB:          10,
	})

	if stats.Hands != 1 {
		t.Errorf("Hands = %d, want 1", stats.Hands)
	}
	if stats.Mean() != 2.5 {
		t.Errorf("Mean() = %f, want 2.5", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Variance() = %f, want 0 for a single value", stats.Variance())
	}
	if stats.Median() != 2.5 {
		t.Errorf("Median() = %f, want 2.5", stats.Median())
	}
	if stats.ShowdownWins != 1 || stats.NonShowdownWins != 0 {
		t.Errorf("wins = %d/%d, want 1/0", stats.ShowdownWins, stats.NonShowdownWins)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestStatisticsMultipleValues(t *testing.T) {
	stats := &Statistics{}
	results := []HandResult{
		{NetBB: 1.0, Position: "BU", WentToShowdown: false, PotBB: 2},
		{NetBB: -2.0, Position: "SB", WentToShowdown: true, PotBB: 4},
		{NetBB: 3.0, Position: "BB", WentToShowdown: true, PotBB: 6},
		{NetBB: 0.0, Position: "BU", WentToShowdown: false, PotBB: 1},
		{NetBB: -1.0, Position: "SB", WentToShowdown: false, PotBB: 3},
	}
	for _, r := range results {
		stats.Add(r)
	}

	wantMean := (1.0 - 2.0 + 3.0 + 0.0 - 1.0) / 5.0
	if math.Abs(stats.Mean()-wantMean) > 1e-9 {
		t.Errorf("Mean() = %f, want %f", stats.Mean(), wantMean)
	}
	// Sorted values: -2, -1, 0, 1, 3.
	if stats.Median() != 0.0 {
		t.Errorf("Median() = %f, want 0", stats.Median())
	}
	if stats.ShowdownWins != 1 || stats.NonShowdownWins != 1 {
		t.Errorf("wins = %d/%d, want 1/1", stats.ShowdownWins, stats.NonShowdownWins)
	}
	if stats.ByPosition["BU"].Hands != 2 || stats.ByPosition["SB"].Hands != 2 || stats.ByPosition["BB"].Hands != 1 {
		t.Errorf("position hands = %v", stats.ByPosition)
	}
	if stats.MaxPotBB != 6 {
		t.Errorf("MaxPotBB = %f, want 6", stats.MaxPotBB)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestStatisticsVariance(t *testing.T) {
	stats := &Statistics{}
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		stats.Add(HandResult{NetBB: v, Position: "BU"})
	}
	// Known sample variance of the classic data set.
	if math.Abs(stats.Variance()-32.0/7.0) > 1e-9 {
		t.Errorf("Variance() = %f, want %f", stats.Variance(), 32.0/7.0)
	}
	lo, hi := stats.ConfidenceInterval95()
	if lo >= hi {
		t.Errorf("confidence interval [%f, %f] is inverted", lo, hi)
	}
}

func TestStatisticsMerge(t *testing.T) {
	a, b := &Statistics{}, &Statistics{}
	a.Add(HandResult{NetBB: 1, Position: "BU", WentToShowdown: true, PotBB: 60})
	a.Add(HandResult{NetBB: -1, Position: "SB"})
	b.Add(HandResult{NetBB: 2, Position: "BU"})

	a.Merge(b)
	if a.Hands != 3 {
		t.Errorf("Hands = %d, want 3", a.Hands)
	}
	if a.ByPosition["BU"].Hands != 2 {
		t.Errorf("BU hands = %d, want 2", a.ByPosition["BU"].Hands)
	}
	if a.BigPots != 1 {
		t.Errorf("BigPots = %d, want 1", a.BigPots)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestStatisticsPercentile(t *testing.T) {
	stats := &Statistics{}
	for i := 1; i <= 100; i++ {
		stats.Add(HandResult{NetBB: float64(i), Position: "BU"})
	}
	if p := stats.Percentile(0.0); p != 1 {
		t.Errorf("Percentile(0) = %f, want 1", p)
	}
	if p := stats.Percentile(1.0); p != 100 {
		t.Errorf("Percentile(1) = %f, want 100", p)
	}
	if p := stats.Percentile(0.5); math.Abs(p-50.5) > 1e-9 {
		t.Errorf("Percentile(0.5) = %f, want 50.5", p)
	}
}
