// Package evaluator ranks the best five-card poker hand available from a set
// of five, six or seven cards. Every five-card subset is classified and the
// maximum kept, so results are a deterministic total order over hands:
// category first, then a category-specific kicker key.
package evaluator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/handlab/holdem/poker"
)

// ErrInsufficientCards is returned when fewer than five cards are supplied.
// Hitting it means the caller evaluated before the board was dealt.
var ErrInsufficientCards = errors.New("evaluator: need at least five cards")

// Category enumerates hand categories from weakest to strongest. A royal
// flush is the ace-high straight flush, not a separate category.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandValue is the evaluated strength of a five-card hand. Two values compare
// by Category first, then by Ranks in order of significance. The meaning of
// Ranks depends on the category: a full house stores (trip rank, pair rank),
// a flush its five ranks descending, a straight only its high card, and so
// on. Unused slots are zero. Suits never participate in comparison.
type HandValue struct {
	Category Category
	Ranks    [5]poker.Rank
}

// Compare returns -1, 0 or 1 as v is weaker than, equal to or stronger than o.
func (v HandValue) Compare(o HandValue) int {
	if v.Category != o.Category {
		if v.Category < o.Category {
			return -1
		}
		return 1
	}
	for i := range v.Ranks {
		if v.Ranks[i] != o.Ranks[i] {
			if v.Ranks[i] < o.Ranks[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// String describes the hand by category and high card. The ace-high straight
// flush reads "Royal Flush".
func (v HandValue) String() string {
	if v.Category == StraightFlush && v.Ranks[0] == poker.Ace {
		return "Royal Flush"
	}
	return fmt.Sprintf("%s (%s high)", v.Category, v.Ranks[0])
}

// Evaluate returns the strongest five-card hand available from the given
// cards (two hole cards plus up to five community cards). It fails with
// ErrInsufficientCards when fewer than five are supplied.
func Evaluate(cards []poker.Card) (HandValue, error) {
	n := len(cards)
	if n < 5 {
		return HandValue{}, fmt.Errorf("%w: got %d", ErrInsufficientCards, n)
	}

	var best HandValue
	first := true
	for a := 0; a <= n-5; a++ {
		for b := a + 1; b <= n-4; b++ {
			for c := b + 1; c <= n-3; c++ {
				for d := c + 1; d <= n-2; d++ {
					for e := d + 1; e <= n-1; e++ {
						v := evaluateFive([5]poker.Card{cards[a], cards[b], cards[c], cards[d], cards[e]})
						if first || v.Compare(best) > 0 {
							best = v
							first = false
						}
					}
				}
			}
		}
	}
	return best, nil
}

// evaluateFive classifies exactly five cards.
func evaluateFive(cards [5]poker.Card) HandValue {
	ranks := [5]poker.Rank{cards[0].Rank, cards[1].Rank, cards[2].Rank, cards[3].Rank, cards[4].Rank}
	sort.Slice(ranks[:], func(i, j int) bool { return ranks[i] > ranks[j] })

	flush := cards[0].Suit == cards[1].Suit &&
		cards[0].Suit == cards[2].Suit &&
		cards[0].Suit == cards[3].Suit &&
		cards[0].Suit == cards[4].Suit

	straightHigh := straightHighCard(ranks)

	if flush && straightHigh != 0 {
		return HandValue{Category: StraightFlush, Ranks: [5]poker.Rank{straightHigh}}
	}

	// Group ranks by multiplicity, strongest group first.
	type group struct {
		rank  poker.Rank
		count int
	}
	var groups []group
	for _, r := range ranks {
		found := false
		for i := range groups {
			if groups[i].rank == r {
				groups[i].count++
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, group{rank: r, count: 1})
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	switch {
	case groups[0].count == 4:
		return HandValue{Category: FourOfAKind, Ranks: [5]poker.Rank{groups[0].rank, groups[1].rank}}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandValue{Category: FullHouse, Ranks: [5]poker.Rank{groups[0].rank, groups[1].rank}}
	case flush:
		return HandValue{Category: Flush, Ranks: ranks}
	case straightHigh != 0:
		return HandValue{Category: Straight, Ranks: [5]poker.Rank{straightHigh}}
	case groups[0].count == 3:
		return HandValue{Category: ThreeOfAKind, Ranks: [5]poker.Rank{groups[0].rank, groups[1].rank, groups[2].rank}}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandValue{Category: TwoPair, Ranks: [5]poker.Rank{groups[0].rank, groups[1].rank, groups[2].rank}}
	case groups[0].count == 2:
		return HandValue{Category: Pair, Ranks: [5]poker.Rank{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank}}
	default:
		return HandValue{Category: HighCard, Ranks: ranks}
	}
}

// straightHighCard returns the high card of a five-card straight, or zero if
// the ranks do not form one. The wheel (A-2-3-4-5) counts the ace low, so its
// high card is Five.
func straightHighCard(ranks [5]poker.Rank) poker.Rank {
	for i := 1; i < 5; i++ {
		if ranks[i] == ranks[i-1] {
			return 0
		}
	}
	if ranks[0]-ranks[4] == 4 {
		return ranks[0]
	}
	if ranks[0] == poker.Ace && ranks[1] == poker.Five && ranks[1]-ranks[4] == 3 {
		return poker.Five
	}
	return 0
}
