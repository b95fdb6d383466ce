// Package shoe implements the multi-deck dealing shoe: shuffling, dealing,
// burning, and the cut card that signals when to reshuffle.
package shoe

import (
	"math/rand/v2"

	"github.com/atakolday/educational-blackjack/internal/game/card"
)

// CardsPerDeck is the size of one standard deck.
const CardsPerDeck = 52

// Cut card placement bounds, counted in cards from the bottom of the shoe.
const (
	cutCardMin = 60
	cutCardMax = 75
)

// Shoe is a stack of cards dealt from the top (end of the slice).
// It keeps its own per-rank counts, which must stay in lock-step with
// the composition tracker during play.
type Shoe struct {
	numDecks int
	initial  []card.Card
	cards    []card.Card
	counts   map[card.Rank]int
	cutPos   int
}

// New builds a shoe of numDecks shuffled decks and freezes a cut card
// position for its first shuffle-life.
func New(numDecks int) *Shoe {
	initial := make([]card.Card, 0, numDecks*CardsPerDeck)
	for d := 0; d < numDecks; d++ {
		for s := card.Spade; s <= card.Diamond; s++ {
			for r := card.Ace; r <= card.King; r++ {
				initial = append(initial, card.Card{Suit: s, Rank: r})
			}
		}
	}

	s := &Shoe{numDecks: numDecks, initial: initial}
	s.Shuffle()
	return s
}

// NewFixed builds an unshuffled shoe that deals the given cards in order.
// The cut card is disabled so scripted sequences never trigger a reshuffle.
func NewFixed(cards ...card.Card) *Shoe {
	initial := make([]card.Card, len(cards))
	copy(initial, cards)

	// Dealing pops from the end, so store in reverse of deal order.
	stack := make([]card.Card, len(cards))
	for i, c := range cards {
		stack[len(cards)-1-i] = c
	}

	s := &Shoe{initial: initial, cards: stack, cutPos: -1}
	s.rebuildCounts()
	return s
}

// Shuffle restores the full shoe, shuffles it uniformly, and freezes a
// fresh cut card position.
func (s *Shoe) Shuffle() {
	s.cards = make([]card.Card, len(s.initial))
	copy(s.cards, s.initial)
	rand.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.rebuildCounts()
	if s.numDecks > 0 {
		s.cutPos = cutCardMin + rand.IntN(cutCardMax-cutCardMin+1)
	}
}

func (s *Shoe) rebuildCounts() {
	s.counts = make(map[card.Rank]int, card.NumRanks)
	for _, c := range s.cards {
		s.counts[c.Rank]++
	}
}

// Deal removes and returns the top card. ok is false when the shoe is empty.
func (s *Shoe) Deal() (c card.Card, ok bool) {
	if len(s.cards) == 0 {
		return card.Card{}, false
	}
	c = s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	s.counts[c.Rank]--
	return c, true
}

// Burn removes the top card without putting it in play. The card is
// returned so the tracker can still observe it.
func (s *Shoe) Burn() (card.Card, bool) {
	return s.Deal()
}

// ShouldShuffle reports whether play has reached the cut card.
func (s *Shoe) ShouldShuffle() bool {
	return len(s.cards) <= s.cutPos
}

// CutCardPosition returns the frozen cut card position for the current
// shuffle-life, in cards from the bottom.
func (s *Shoe) CutCardPosition() int {
	return s.cutPos
}

// CardsRemaining returns the number of undealt cards.
func (s *Shoe) CardsRemaining() int {
	return len(s.cards)
}

// DecksRemaining returns the undealt cards expressed in decks.
func (s *Shoe) DecksRemaining() float64 {
	return float64(len(s.cards)) / CardsPerDeck
}

// Penetration returns the fraction of the shoe dealt so far.
func (s *Shoe) Penetration() float64 {
	if len(s.initial) == 0 {
		return 0
	}
	return float64(len(s.initial)-len(s.cards)) / float64(len(s.initial))
}

// NumDecks returns the deck count the shoe was built with (0 for fixed shoes).
func (s *Shoe) NumDecks() int {
	return s.numDecks
}

// Remaining returns the undealt count for one rank.
func (s *Shoe) Remaining(r card.Rank) int {
	return s.counts[r]
}

// RankCounts returns a copy of the per-rank undealt counts.
func (s *Shoe) RankCounts() map[card.Rank]int {
	out := make(map[card.Rank]int, len(s.counts))
	for r, n := range s.counts {
		out[r] = n
	}
	return out
}
