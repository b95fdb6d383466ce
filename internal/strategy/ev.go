package strategy

import (
	"github.com/atakolday/educational-blackjack/internal/apperrors"
	"github.com/atakolday/educational-blackjack/internal/game/card"
)

// SurrenderEV is the fixed EV of giving up half the stake.
const SurrenderEV = -0.5

// StandEV returns the EV of standing: +1 against a dealer bust or
// lower total, -1 against a higher total, 0 on a tie.
func (e *Engine) StandEV(h *card.Hand, up card.Card) float64 {
	return standEVTotal(h.Total(), e.DealerOutcomes(up))
}

func standEVTotal(playerTotal int, outcomes Outcome) float64 {
	ev := 0.0
	for dealerTotal, p := range outcomes {
		switch {
		case dealerTotal == BustTotal || playerTotal > dealerTotal:
			ev += p
		case playerTotal < dealerTotal:
			ev -= p
		}
	}
	return ev
}

// HitEV returns the EV of taking exactly one card and then standing.
// Draw odds come from the tracker's global composition; the
// hypothetical draw does not perturb the dealer distribution.
func (e *Engine) HitEV(h *card.Hand, up card.Card) float64 {
	return e.hitEV(h, e.DealerOutcomes(up))
}

func (e *Engine) hitEV(h *card.Hand, outcomes Outcome) float64 {
	ev := 0.0
	for r := card.Ace; r <= card.King; r++ {
		p := e.counter.Probability(r)
		if p == 0 {
			continue
		}
		next := handPlus(h, r)
		if next.IsBust() {
			ev -= p
		} else {
			ev += p * standEVTotal(next.Total(), outcomes)
		}
	}
	return ev
}

// DoubleEV returns the EV of doubling down: one forced card at double
// stakes. Only a two-card hand may double.
func (e *Engine) DoubleEV(h *card.Hand, up card.Card) (float64, error) {
	if !h.CanDouble() {
		return 0, apperrors.ErrCannotDouble
	}
	return e.doubleEV(h, e.DealerOutcomes(up)), nil
}

func (e *Engine) doubleEV(h *card.Hand, outcomes Outcome) float64 {
	ev := 0.0
	for r := card.Ace; r <= card.King; r++ {
		p := e.counter.Probability(r)
		if p == 0 {
			continue
		}
		next := handPlus(h, r)
		if next.IsBust() {
			ev += p * -2.0
		} else {
			ev += p * 2.0 * standEVTotal(next.Total(), outcomes)
		}
	}
	return ev
}

// SplitEV approximates splitting a pair as twice the EV of one split
// hand playing a single forced card and standing. Re-split trees are
// not modeled.
func (e *Engine) SplitEV(h *card.Hand, up card.Card) (float64, error) {
	if !h.CanSplit() {
		return 0, apperrors.ErrCannotSplit
	}
	return e.splitEV(h, e.DealerOutcomes(up)), nil
}

func (e *Engine) splitEV(h *card.Hand, outcomes Outcome) float64 {
	splitCard := h.Card(0)
	singleEV := 0.0
	for r := card.Ace; r <= card.King; r++ {
		p := e.counter.Probability(r)
		if p == 0 {
			continue
		}
		next := card.NewHand(splitCard)
		next.Add(card.Card{Suit: splitCard.Suit, Rank: r})
		if next.IsBust() {
			singleEV -= p
		} else {
			singleEV += p * standEVTotal(next.Total(), outcomes)
		}
	}
	return 2 * singleEV
}

// DealerBustProbability returns the bust mass of the dealer's exact
// final-total distribution for the given up card.
func (e *Engine) DealerBustProbability(up card.Card) float64 {
	return e.DealerOutcomes(up).Bust()
}

// PlayerBustProbability returns the chance that one more card busts a
// hand at the given total. Display aid only; no EV is derived from it.
func (e *Engine) PlayerBustProbability(total int) float64 {
	p := 0.0
	for r := card.Ace; r <= card.King; r++ {
		v := r.Value()
		if r == card.Ace {
			// An Ace counts 1 whenever 11 would bust.
			v = 1
		}
		if total+v > 21 {
			p += e.counter.Probability(r)
		}
	}
	return p
}

// handPlus copies a hand and adds one card of the given rank. The suit
// carries no blackjack value, so any placeholder works.
func handPlus(h *card.Hand, r card.Rank) *card.Hand {
	next := card.NewHand(h.Cards()...)
	next.Add(card.Card{Suit: card.Spade, Rank: r})
	return next
}
