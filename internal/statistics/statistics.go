// Package statistics aggregates per-hand results into win-rate estimates
// with uncertainty bounds.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// HandResult is the hero's outcome for one simulated hand.
type HandResult struct {
	NetBB          float64 // net big blinds won or lost
	Seed           int64   // per-hand seed, for replaying the hand
	Position       string  // hero's position name (BU, SB, BB, ...)
	WentToShowdown bool
	PotBB          float64 // final pot in big blinds
}

// PositionStats accumulates results for one table position.
type PositionStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

func (ps PositionStats) Mean() float64 {
	if ps.Hands == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Hands)
}

// Statistics accumulates hand results. Not safe for concurrent use; callers
// aggregate per-worker results before merging.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
	Values []float64

	// Winnings split by how the hand ended. Both buckets include losses, so
	// they always sum to AllBB.
	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64
	NonShowdownBB   float64
	AllBB           float64

	ByPosition map[string]*PositionStats

	MaxPotBB float64
	BigPots  int // pots of at least 50bb
}

// Add incorporates one hand result.
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if netBB > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}
	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB

	if s.ByPosition == nil {
		s.ByPosition = make(map[string]*PositionStats)
	}
	ps := s.ByPosition[result.Position]
	if ps == nil {
		ps = &PositionStats{}
		s.ByPosition[result.Position] = ps
	}
	ps.Hands++
	ps.SumBB += netBB
	ps.SumBB2 += netBB * netBB

	if result.PotBB > s.MaxPotBB {
		s.MaxPotBB = result.PotBB
	}
	if result.PotBB >= 50 {
		s.BigPots++
	}
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)
	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	s.AllBB += other.AllBB
	for pos, ops := range other.ByPosition {
		if s.ByPosition == nil {
			s.ByPosition = make(map[string]*PositionStats)
		}
		ps := s.ByPosition[pos]
		if ps == nil {
			ps = &PositionStats{}
			s.ByPosition[pos] = ps
		}
		ps.Hands += ops.Hands
		ps.SumBB += ops.SumBB
		ps.SumBB2 += ops.SumBB2
	}
	if other.MaxPotBB > s.MaxPotBB {
		s.MaxPotBB = other.MaxPotBB
	}
	s.BigPots += other.BigPots
}

// Mean returns the arithmetic mean in big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median result.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the linearly interpolated value at p in [0, 1].
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the internal accounting for consistency.
func (s *Statistics) Validate() error {
	if math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) > 1e-6 {
		return fmt.Errorf("ledger mismatch: all=%.6f showdown=%.6f non-showdown=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values length (%d) does not match hands count (%d)", len(s.Values), s.Hands)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", wins, s.Hands)
	}
	positionHands := 0
	for _, ps := range s.ByPosition {
		positionHands += ps.Hands
	}
	if positionHands != s.Hands {
		return fmt.Errorf("position hands total (%d) does not match hands count (%d)", positionHands, s.Hands)
	}
	return nil
}
