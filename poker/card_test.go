package poker

import "testing"

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		rank Rank
		suit Suit
	}{
		{"As", Ace, Spades},
		{"Kh", King, Hearts},
		{"Td", Ten, Diamonds},
		{"2c", Two, Clubs},
		{"9S", Nine, Spades},
		{"qH", Queen, Hearts},
	}

	for _, tc := range tests {
		card, err := ParseCard(tc.in)
		if err != nil {
			t.Fatalf("ParseCard(%q) returned error: %v", tc.in, err)
		}
		if card.Rank != tc.rank || card.Suit != tc.suit {
			t.Errorf("ParseCard(%q) = %v, want rank %v suit %v", tc.in, card, tc.rank, tc.suit)
		}
	}
}

func TestParseCardInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "A", "Ax", "1s", "AsK"} {
		if _, err := ParseCard(in); err == nil {
			t.Errorf("ParseCard(%q) should fail", in)
		}
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()

	if got := MustCard("As").String(); got != "A♠" {
		t.Errorf("expected A♠, got %s", got)
	}
	if got := MustCard("Td").String(); got != "T♦" {
		t.Errorf("expected T♦, got %s", got)
	}
	if got := MustCard("Td").Notation(); got != "Td" {
		t.Errorf("notation round trip failed, got %s", got)
	}
}

func TestRankOrdering(t *testing.T) {
	t.Parallel()

	if !(Two < Three && King < Ace) {
		t.Error("rank ordering broken")
	}
	if Ace != 14 || Two != 2 {
		t.Errorf("ranks should use 2..14 values, got Two=%d Ace=%d", Two, Ace)
	}
}
