package card

import "strings"

// Hand is an ordered set of cards held by the player or the dealer,
// plus the per-hand action flags the table needs at settlement.
type Hand struct {
	cards       []Card
	doubled     bool
	surrendered bool
}

// NewHand creates a hand, optionally pre-seeded (e.g. with a split card).
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, 8)}
	h.cards = append(h.cards, cards...)
	return h
}

// Add appends a dealt card to the hand.
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Clear empties the hand and resets its flags.
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
	h.doubled = false
	h.surrendered = false
}

// Cards returns a copy of the cards in deal order.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Card returns the card at index i.
func (h *Hand) Card(i int) Card {
	return h.cards[i]
}

// NumCards returns the number of cards in the hand.
func (h *Hand) NumCards() int {
	return len(h.cards)
}

// softTotal sums the hand with every Ace at its minimum value of 1.
func (h *Hand) softTotal() int {
	total := 0
	for _, c := range h.cards {
		total += c.SoftValue()
	}
	return total
}

// Total returns the best blackjack total: Aces start at 1 and are
// promoted to 11 one at a time while the total stays at or under 21.
func (h *Hand) Total() int {
	total := h.softTotal()
	aces := 0
	for _, c := range h.cards {
		if c.IsAce() {
			aces++
		}
	}
	for i := 0; i < aces && total+10 <= 21; i++ {
		total += 10
	}
	return total
}

// IsSoft reports whether the hand counts an Ace as 11. The check is on
// the fully reduced total, so a hand like A-A-9 (21) is still soft.
func (h *Hand) IsSoft() bool {
	return h.HasAce() && h.Total() <= 21 && h.softTotal()+10 <= 21
}

// IsBust reports whether the hand exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Total() > 21
}

// IsBlackjack reports a natural: exactly two cards totalling 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Total() == 21 && h.HasAce()
}

// HasAce reports whether the hand contains at least one Ace.
func (h *Hand) HasAce() bool {
	for _, c := range h.cards {
		if c.IsAce() {
			return true
		}
	}
	return false
}

// CanSplit reports whether the hand is a splittable pair.
func (h *Hand) CanSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

// CanDouble reports whether doubling down is still available.
func (h *Hand) CanDouble() bool {
	return len(h.cards) == 2
}

// MarkDoubled records that the hand was doubled down.
func (h *Hand) MarkDoubled() { h.doubled = true }

// IsDoubled reports whether the hand was doubled down.
func (h *Hand) IsDoubled() bool { return h.doubled }

// MarkSurrendered records that the hand was surrendered.
func (h *Hand) MarkSurrendered() { h.surrendered = true }

// IsSurrendered reports whether the hand was surrendered.
func (h *Hand) IsSurrendered() bool { return h.surrendered }

func (h *Hand) String() string {
	if len(h.cards) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
