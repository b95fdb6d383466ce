package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atakolday/educational-blackjack/internal/game/card"
)

func TestAction_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hit", Hit.String())
	assert.Equal(t, "Stand", Stand.String())
	assert.Equal(t, "Double", Double.String())
	assert.Equal(t, "Split", Split.String())
	assert.Equal(t, "Surrender", Surrender.String())
}

func TestBestAction_TieBreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates []actionEV
		expected   Action
		expectedEV float64
	}{
		{
			name:       "earlier candidate wins an exact tie",
			candidates: []actionEV{{Hit, -0.5}, {Stand, -0.5}},
			expected:   Hit,
			expectedEV: -0.5,
		},
		{
			name:       "later tie does not displace the first max",
			candidates: []actionEV{{Hit, -1.0}, {Stand, -0.5}, {Surrender, -0.5}},
			expected:   Stand,
			expectedEV: -0.5,
		},
		{
			name:       "strictly better candidate wins",
			candidates: []actionEV{{Hit, 0.1}, {Stand, 0.3}, {Double, 0.2}},
			expected:   Stand,
			expectedEV: 0.3,
		},
		{
			name:       "single candidate",
			candidates: []actionEV{{Stand, -0.2}},
			expected:   Stand,
			expectedEV: -0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			action, ev := bestAction(tt.candidates)
			assert.Equal(t, tt.expected, action)
			assert.InDelta(t, tt.expectedEV, ev, 1e-9)
		})
	}
}

func TestOptimalAction_SettledHands(t *testing.T) {
	t.Parallel()

	e := freshDeckEngine(t)
	up := upCard(card.Ten)

	action, ev := e.OptimalAction(handOf(card.Ten, card.Nine, card.Five), up)
	assert.Equal(t, Stand, action, "a busted hand is settled")
	assert.InDelta(t, -1.0, ev, 1e-9)

	action, ev = e.OptimalAction(handOf(card.Ace, card.King), up)
	assert.Equal(t, Stand, action, "a natural is settled")
	assert.InDelta(t, 1.5, ev, 1e-9)
}

func TestOptimalAction_PrefersDoubleOnEleven(t *testing.T) {
	t.Parallel()

	// Forced tens, dealer always busts: hitting 11 wins one unit,
	// doubling wins two.
	e := engineOver(t, Rules{}, tenValueCards()...)

	action, ev := e.OptimalAction(handOf(card.Five, card.Six), upCard(card.Six))
	assert.Equal(t, Double, action)
	assert.InDelta(t, 2.0, ev, 1e-9)
}

func TestOptimalAction_SurrendersHopelessHand(t *testing.T) {
	t.Parallel()

	// Only tens remain and the dealer shows a 7: the dealer locks in
	// 17 while any line of play loses outright, so surrender's fixed
	// half-loss is the maximum.
	e := engineOver(t, Rules{}, tenValueCards()...)

	action, ev := e.OptimalAction(handOf(card.Nine, card.Seven), upCard(card.Seven))
	assert.Equal(t, Surrender, action)
	assert.InDelta(t, SurrenderEV, ev, 1e-9)
}

func TestOptimalAction_ThreeCardHandHasNoDoubleOrSurrender(t *testing.T) {
	t.Parallel()

	// The same hopeless 16 as a three-card hand: surrender is off the
	// menu, so standing's certain loss is the best of the bad options.
	e := engineOver(t, Rules{}, tenValueCards()...)

	action, ev := e.OptimalAction(handOf(card.Five, card.Five, card.Six), upCard(card.Seven))
	assert.Equal(t, Hit, action)
	assert.InDelta(t, -1.0, ev, 1e-9)
}

func TestRecommend_OnBook(t *testing.T) {
	t.Parallel()

	// Splitting eights is both the exact and the book play here.
	e := engineOver(t, Rules{}, tenValueCards()...)

	rec := e.Recommend(handOf(card.Eight, card.Eight), upCard(card.Six))
	assert.Equal(t, Split, rec.OptimalAction)
	assert.Equal(t, Split, rec.BasicAction)
	assert.InDelta(t, 2.0, rec.OptimalEV, 1e-9)
	assert.InDelta(t, 2.0, rec.BasicEV, 1e-9)
	assert.InDelta(t, 0.0, rec.EVDifference, 1e-9)
	assert.False(t, rec.CountAdvantage)
}

func TestRecommend_CountMovesPlayOffBook(t *testing.T) {
	t.Parallel()

	// Book says hit 16 against a 7, but with only tens left the hit
	// always busts while surrender caps the loss at half a unit.
	e := engineOver(t, Rules{}, tenValueCards()...)

	rec := e.Recommend(handOf(card.Nine, card.Seven), upCard(card.Seven))
	assert.Equal(t, Surrender, rec.OptimalAction)
	assert.Equal(t, Hit, rec.BasicAction)
	assert.InDelta(t, SurrenderEV, rec.OptimalEV, 1e-9)
	assert.InDelta(t, -1.0, rec.BasicEV, 1e-9)
	assert.InDelta(t, 0.5, rec.EVDifference, 1e-9)
	assert.True(t, rec.CountAdvantage)
}

func TestRecommend_SettledHands(t *testing.T) {
	t.Parallel()

	e := freshDeckEngine(t)
	up := upCard(card.Ten)

	rec := e.Recommend(handOf(card.Ten, card.Nine, card.Five), up)
	assert.InDelta(t, -1.0, rec.OptimalEV, 1e-9)
	assert.InDelta(t, -1.0, rec.BasicEV, 1e-9)
	assert.False(t, rec.CountAdvantage)

	rec = e.Recommend(handOf(card.Ace, card.Queen), up)
	assert.InDelta(t, 1.5, rec.OptimalEV, 1e-9)
	assert.InDelta(t, 1.5, rec.BasicEV, 1e-9)
	assert.InDelta(t, 0.0, rec.EVDifference, 1e-9)
}

func TestInsurance_BreakEvenAtOneThird(t *testing.T) {
	t.Parallel()

	// One ten in three cards prices insurance at exactly zero.
	e := engineOver(t, Rules{},
		card.Card{Suit: card.Spade, Rank: card.Ten},
		card.Card{Suit: card.Heart, Rank: card.Two},
		card.Card{Suit: card.Club, Rank: card.Three},
	)

	advice := e.Insurance()
	assert.InDelta(t, 1.0/3, advice.DealerBlackjackProbability, 1e-9)
	assert.InDelta(t, 0.0, advice.InsuranceEV, 1e-9)
	assert.False(t, advice.ShouldTake, "zero EV is not an edge")
	assert.False(t, advice.CountAdvantage)
}

func TestInsurance_ProfitableWhenTensAreRich(t *testing.T) {
	t.Parallel()

	// Two tens in five cards: EV = 3*0.4 - 1 = +0.2.
	e := engineOver(t, Rules{},
		card.Card{Suit: card.Spade, Rank: card.Ten},
		card.Card{Suit: card.Heart, Rank: card.Jack},
		card.Card{Suit: card.Club, Rank: card.Two},
		card.Card{Suit: card.Diamond, Rank: card.Three},
		card.Card{Suit: card.Spade, Rank: card.Four},
	)

	advice := e.Insurance()
	assert.InDelta(t, 0.4, advice.DealerBlackjackProbability, 1e-9)
	assert.InDelta(t, 0.2, advice.InsuranceEV, 1e-9)
	assert.True(t, advice.ShouldTake)
	assert.True(t, advice.CountAdvantage)
	assert.InDelta(t, 0.0, advice.BasicEV, 1e-9)
}

func TestInsurance_FreshShoeIsNegative(t *testing.T) {
	t.Parallel()

	e := freshDeckEngine(t)

	advice := e.Insurance()
	assert.InDelta(t, 3.0*16/52-1, advice.InsuranceEV, 1e-9)
	assert.False(t, advice.ShouldTake, "full-shoe insurance is a losing bet")
}
