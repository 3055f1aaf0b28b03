package poker

import (
	"testing"

	"github.com/handlab/holdem/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(1))
	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}

	seen := make(map[Card]bool)
	for _, c := range d.Deal(52) {
		if seen[c] {
			t.Errorf("duplicate card %v", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestDeckDeterministicForSeed(t *testing.T) {
	t.Parallel()

	d1 := NewDeck(randutil.New(42))
	d2 := NewDeck(randutil.New(42))

	c1 := d1.Deal(52)
	c2 := d2.Deal(52)
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("decks diverge at %d: %v vs %v", i, c1[i], c2[i])
		}
	}
}

func TestDealExhaustion(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(7))
	d.Deal(50)
	if cards := d.Deal(3); cards != nil {
		t.Errorf("expected nil when dealing past the end, got %v", cards)
	}
	if d.Remaining() != 2 {
		t.Errorf("failed deal should not consume cards, remaining %d", d.Remaining())
	}
}

func TestOrderedDeckDealsInOrder(t *testing.T) {
	t.Parallel()

	want := MustCards("As", "Kd", "7c")
	d := NewOrderedDeck(want...)

	d.Burn() // As
	if got := d.DealOne(); got != want[1] {
		t.Errorf("expected %v after burn, got %v", want[1], got)
	}
	if got := d.DealOne(); got != want[2] {
		t.Errorf("expected %v, got %v", want[2], got)
	}
}
