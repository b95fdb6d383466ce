package strategy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atakolday/educational-blackjack/internal/game/card"
)

func pairOf(r card.Rank) *card.Hand {
	return card.NewHand(
		card.Card{Suit: card.Spade, Rank: r},
		card.Card{Suit: card.Heart, Rank: r},
	)
}

func softHand(kicker card.Rank) *card.Hand {
	return card.NewHand(
		card.Card{Suit: card.Spade, Rank: card.Ace},
		card.Card{Suit: card.Heart, Rank: kicker},
	)
}

func TestBasicAction_Pairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pair     card.Rank
		dealer   card.Rank
		expected Action
	}{
		{card.Ace, card.Two, Split},
		{card.Ace, card.Ten, Split},
		{card.Eight, card.Ten, Split},
		{card.Eight, card.Ace, Split},
		{card.Ten, card.Five, Split},
		{card.Ten, card.Six, Split},
		{card.Ten, card.Seven, Stand},
		{card.Ten, card.Ace, Stand},
		{card.Nine, card.Six, Split},
		{card.Nine, card.Seven, Stand},
		{card.Nine, card.Eight, Split},
		{card.Nine, card.Nine, Split},
		{card.Nine, card.Ten, Stand},
		{card.Seven, card.Seven, Split},
		{card.Seven, card.Eight, Hit},
		{card.Six, card.Six, Split},
		{card.Six, card.Seven, Hit},
		{card.Five, card.Nine, Split},
		{card.Five, card.Ten, Hit},
		{card.Four, card.Five, Split},
		{card.Four, card.Four, Hit},
		{card.Three, card.Seven, Split},
		{card.Three, card.Eight, Hit},
		{card.Two, card.Two, Split},
		{card.Two, card.Ace, Hit},
	}

	e := freshDeckEngine(t)
	for _, tt := range tests {
		name := fmt.Sprintf("%v,%v vs %v", tt.pair, tt.pair, tt.dealer)
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, e.BasicAction(pairOf(tt.pair), upCard(tt.dealer)))
		})
	}
}

func TestBasicAction_SoftTotals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kicker   card.Rank
		dealer   card.Rank
		expected Action
	}{
		{card.Nine, card.Six, Stand},  // soft 20
		{card.Eight, card.Ten, Stand}, // soft 19
		{card.Seven, card.Two, Stand}, // soft 18 vs low
		{card.Seven, card.Eight, Stand},
		{card.Seven, card.Nine, Hit},
		{card.Seven, card.Ten, Hit},
		{card.Seven, card.Ace, Hit},
		{card.Six, card.Two, Hit}, // soft 17 always hits
		{card.Two, card.Six, Hit}, // soft 13
	}

	e := freshDeckEngine(t)
	for _, tt := range tests {
		name := fmt.Sprintf("A,%v vs %v", tt.kicker, tt.dealer)
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, e.BasicAction(softHand(tt.kicker), upCard(tt.dealer)))
		})
	}
}

func TestBasicAction_HardTotals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ranks    []card.Rank
		dealer   card.Rank
		expected Action
	}{
		{[]card.Rank{card.Ten, card.Seven}, card.Ace, Stand}, // 17
		{[]card.Rank{card.Ten, card.Six}, card.Six, Stand},   // 16 vs low
		{[]card.Rank{card.Ten, card.Six}, card.Seven, Hit},
		{[]card.Rank{card.Ten, card.Six}, card.Ace, Hit},
		{[]card.Rank{card.Ten, card.Five}, card.Seven, Stand}, // 15 hits only vs 10/A
		{[]card.Rank{card.Ten, card.Five}, card.Nine, Stand},
		{[]card.Rank{card.Ten, card.Five}, card.Ten, Hit},
		{[]card.Rank{card.Ten, card.Five}, card.Ace, Hit},
		{[]card.Rank{card.Ten, card.Four}, card.Six, Stand}, // 14
		{[]card.Rank{card.Ten, card.Four}, card.Seven, Hit},
		{[]card.Rank{card.Ten, card.Three}, card.Two, Stand}, // 13
		{[]card.Rank{card.Ten, card.Two}, card.Three, Hit},   // 12 vs 3
		{[]card.Rank{card.Ten, card.Two}, card.Four, Stand},  // 12 vs 4-6
		{[]card.Rank{card.Ten, card.Two}, card.Six, Stand},
		{[]card.Rank{card.Ten, card.Two}, card.Seven, Hit},
		{[]card.Rank{card.Six, card.Five}, card.Ten, Hit}, // 11
		{[]card.Rank{card.Five, card.Three}, card.Six, Hit},
	}

	e := freshDeckEngine(t)
	for _, tt := range tests {
		h := handOf(tt.ranks...)
		name := fmt.Sprintf("hard %d vs %v", h.Total(), tt.dealer)
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, e.BasicAction(h, upCard(tt.dealer)))
		})
	}
}
