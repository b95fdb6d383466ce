// Package counting implements the Hi-Lo composition tracker: exact
// per-rank remaining counts plus the running and true counts derived
// from every card seen since the last shuffle.
package counting

import (
	"fmt"

	"github.com/atakolday/educational-blackjack/internal/game/card"
	"github.com/atakolday/educational-blackjack/internal/game/shoe"
)

// Count status labels, from the player's point of view.
const (
	StatusVeryFavorable   = "Very Favorable"
	StatusFavorable       = "Favorable"
	StatusNeutral         = "Neutral"
	StatusUnfavorable     = "Unfavorable"
	StatusVeryUnfavorable = "Very Unfavorable"
)

// Counter tracks the exact remaining composition of the shoe alongside
// the Hi-Lo running count. Every physical card removed from the shoe
// must be observed exactly once; all getters are side-effect free.
type Counter struct {
	remaining    map[card.Rank]int
	initialSize  int
	cardsSeen    int
	runningCount int
	trueCount    float64
}

// NewCounter creates an empty counter. Reset it against a shoe before play.
func NewCounter() *Counter {
	return &Counter{remaining: make(map[card.Rank]int, card.NumRanks)}
}

// Reset snapshots the shoe's current composition and zeroes all counts.
// Call it after every shuffle.
func (c *Counter) Reset(s *shoe.Shoe) {
	c.remaining = s.RankCounts()
	c.initialSize = s.CardsRemaining()
	c.cardsSeen = 0
	c.runningCount = 0
	c.trueCount = 0
}

// Observe records one card leaving the shoe. Observing a rank with no
// copies remaining means a card was counted twice or the reset was
// missed, so it panics rather than silently corrupting the counts.
func (c *Counter) Observe(cd card.Card) {
	if c.remaining[cd.Rank] <= 0 {
		panic(fmt.Sprintf("counting: observed %s but no %s remaining in tracked shoe", cd, cd.Rank))
	}
	c.remaining[cd.Rank]--
	c.runningCount += cd.CountValue()
	c.cardsSeen++
	c.updateTrueCount()
}

// ObserveAll records a batch of cards in deal order.
func (c *Counter) ObserveAll(cards []card.Card) {
	for _, cd := range cards {
		c.Observe(cd)
	}
}

func (c *Counter) updateTrueCount() {
	decks := c.DecksRemaining()
	if decks > 0 {
		c.trueCount = float64(c.runningCount) / decks
	} else {
		c.trueCount = 0
	}
}

// RunningCount returns the raw Hi-Lo running count.
func (c *Counter) RunningCount() int {
	return c.runningCount
}

// TrueCount returns the running count normalized by decks remaining.
func (c *Counter) TrueCount() float64 {
	return c.trueCount
}

// CardsRemaining returns the number of unseen cards.
func (c *Counter) CardsRemaining() int {
	total := 0
	for _, n := range c.remaining {
		total += n
	}
	return total
}

// CardsSeen returns the number of cards observed since the last reset.
func (c *Counter) CardsSeen() int {
	return c.cardsSeen
}

// InitialSize returns the shoe size captured at the last reset.
func (c *Counter) InitialSize() int {
	return c.initialSize
}

// DecksRemaining returns the unseen cards expressed in decks.
func (c *Counter) DecksRemaining() float64 {
	return float64(c.CardsRemaining()) / shoe.CardsPerDeck
}

// Penetration returns the fraction of the tracked shoe seen so far.
func (c *Counter) Penetration() float64 {
	if c.initialSize == 0 {
		return 0
	}
	return float64(c.cardsSeen) / float64(c.initialSize)
}

// Remaining returns the unseen count for one rank.
func (c *Counter) Remaining(r card.Rank) int {
	return c.remaining[r]
}

// RankCounts returns a copy of the unseen per-rank counts.
func (c *Counter) RankCounts() map[card.Rank]int {
	out := make(map[card.Rank]int, len(c.remaining))
	for r, n := range c.remaining {
		out[r] = n
	}
	return out
}

// Probability returns the chance the next card drawn has rank r.
// It degrades to 0 on an empty composition, never errors.
func (c *Counter) Probability(r card.Rank) float64 {
	total := c.CardsRemaining()
	if total == 0 {
		return 0
	}
	return float64(c.remaining[r]) / float64(total)
}

// TenValueProbability returns the chance of drawing a 10, J, Q or K.
func (c *Counter) TenValueProbability() float64 {
	p := 0.0
	for r := card.Ten; r <= card.King; r++ {
		p += c.Probability(r)
	}
	return p
}

// AceProbability returns the chance of drawing an Ace.
func (c *Counter) AceProbability() float64 {
	return c.Probability(card.Ace)
}

// LowCardProbability returns the chance of drawing a 2 through 6.
func (c *Counter) LowCardProbability() float64 {
	p := 0.0
	for r := card.Two; r <= card.Six; r++ {
		p += c.Probability(r)
	}
	return p
}

// HighCardProbability returns the chance of drawing a ten-value or Ace.
func (c *Counter) HighCardProbability() float64 {
	return c.TenValueProbability() + c.AceProbability()
}

// Status buckets the true count into a player-facing label.
func (c *Counter) Status() string {
	switch {
	case c.trueCount >= 2:
		return StatusVeryFavorable
	case c.trueCount >= 1:
		return StatusFavorable
	case c.trueCount >= 0:
		return StatusNeutral
	case c.trueCount >= -1:
		return StatusUnfavorable
	default:
		return StatusVeryUnfavorable
	}
}

// BettingMultiplier suggests a bet scale for the current true count:
// flat at or below zero, then ramping by half a unit per point up to
// +2, and by a quarter unit per point beyond that.
func (c *Counter) BettingMultiplier() float64 {
	tc := c.trueCount
	switch {
	case tc <= 0:
		return 1.0
	case tc <= 2:
		return 1.0 + 0.5*tc
	default:
		return 2.0 + 0.25*(tc-2)
	}
}
