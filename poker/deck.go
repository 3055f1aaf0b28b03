package poker

import rand "math/rand/v2"

// Deck is an ordered sequence of the 52 unique cards. The engine consumes
// cards from the front; a deck is never reshuffled mid-hand.
type Deck struct {
	cards []Card
	next  int
}

// NewDeck creates a full deck shuffled with the provided random source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	d.shuffle(rng)
	return d
}

// NewOrderedDeck creates a deck that deals the given cards in order.
// Used to script exact runouts in tests; the caller must supply enough
// cards for the hand being played.
func NewOrderedDeck(cards ...Card) *Deck {
	return &Deck{cards: cards}
}

func (d *Deck) shuffle(rng *rand.Rand) {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the front of the deck, or nil if exhausted.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealOne deals a single card. Panics if the deck is exhausted, which
// indicates a dealing-order bug upstream.
func (d *Deck) DealOne() Card {
	cards := d.Deal(1)
	if cards == nil {
		panic("poker: deck exhausted")
	}
	return cards[0]
}

// Burn discards the next card face down.
func (d *Deck) Burn() {
	if d.next < len(d.cards) {
		d.next++
	}
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
