package game

import "sort"

// Pot is one layer of the (possibly side-potted) pot. Eligible lists the
// seats that can win it, in seat order.
type Pot struct {
	Amount   int
	Eligible []int
}

// allocatePots partitions the players' total commitments into layered pots.
// Each distinct commitment level, taken in ascending order, forms a layer
// funded by every player who committed at least that much; only non-folded
// players among them are eligible to win it. Folded chips stay in the layers
// they reached but grant no eligibility.
//
// Callers must strip any uncalled excess first (see uncalledExcess): a layer
// nobody can win is reported as an InvariantViolationError.
func allocatePots(players []*Player) ([]Pot, error) {
	levels := make([]int, 0, len(players))
	seen := make(map[int]bool)
	total := 0
	for _, p := range players {
		total += p.TotalBet
		if p.TotalBet > 0 && !seen[p.TotalBet] {
			seen[p.TotalBet] = true
			levels = append(levels, p.TotalBet)
		}
	}
	sort.Ints(levels)

	var pots []Pot
	allocated := 0
	prev := 0
	for _, level := range levels {
		layer := Pot{}
		for _, p := range players {
			if p.TotalBet >= level {
				layer.Amount += level - prev
				if p.InHand() {
					layer.Eligible = append(layer.Eligible, p.Seat)
				}
			}
		}
		if layer.Amount > 0 && len(layer.Eligible) == 0 {
			return nil, &InvariantViolationError{Stage: "pot allocation", Want: 0, Got: layer.Amount}
		}
		allocated += layer.Amount
		// Merge layers with identical eligibility so callers see one pot per
		// contention set rather than one per bet level.
		if n := len(pots); n > 0 && sameSeats(pots[n-1].Eligible, layer.Eligible) {
			pots[n-1].Amount += layer.Amount
		} else {
			pots = append(pots, layer)
		}
		prev = level
	}
	if allocated != total {
		return nil, &InvariantViolationError{Stage: "pot allocation", Want: total, Got: allocated}
	}
	return pots, nil
}

func sameSeats(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// uncalledExcess finds chips committed above what any other player matched:
// when exactly one player holds the highest total commitment, the difference
// down to the second-highest can never enter a contested layer and is
// returned to them. Reports (-1, 0) when no excess exists.
func uncalledExcess(players []*Player) (seat, amount int) {
	top, second := 0, 0
	seat = -1
	count := 0
	for _, p := range players {
		switch {
		case p.TotalBet > top:
			second = top
			top = p.TotalBet
			seat = p.Seat
			count = 1
		case p.TotalBet == top && top > 0:
			count++
		case p.TotalBet > second:
			second = p.TotalBet
		}
	}
	if count != 1 || top == second {
		return -1, 0
	}
	return seat, top - second
}
