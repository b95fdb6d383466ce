// Package strategy implements the probability engine: exact dealer
// final-total distributions over the remaining shoe composition, EVs
// for every playable action, and the fixed basic-strategy baseline the
// exact numbers are compared against.
package strategy

import (
	"github.com/atakolday/educational-blackjack/internal/counting"
	"github.com/atakolday/educational-blackjack/internal/game/card"
)

// BustTotal is the sentinel bucket for dealer busts in an Outcome.
const BustTotal = 22

// Outcome maps dealer final totals (17 through 21, plus BustTotal) to
// their probabilities. The mass sums to 1 whenever at least one card
// remains in the working composition.
type Outcome map[int]float64

// Bust returns the probability mass on the bust bucket.
func (o Outcome) Bust() float64 {
	return o[BustTotal]
}

// Rules captures the table rules the engine must honor.
type Rules struct {
	DealerHitsSoft17 bool
}

// Engine computes exact probabilities and EVs against the live
// composition of a tracker. Not safe for concurrent use.
type Engine struct {
	counter *counting.Counter
	rules   Rules
}

// NewEngine creates an engine reading from the given tracker.
func NewEngine(counter *counting.Counter, rules Rules) *Engine {
	return &Engine{counter: counter, rules: rules}
}

// rankCounts is a working composition. As an array it is comparable
// and copies by value, so every recursion branch gets its own counts
// and the memo can key on it directly.
type rankCounts [card.NumRanks]int

func (rc rankCounts) total() int {
	n := 0
	for _, v := range rc {
		n += v
	}
	return n
}

type dealerKey struct {
	total  int
	soft   bool
	counts rankCounts
}

// DealerOutcomes returns the exact distribution of the dealer's final
// total for the given up card, drawn against the tracker's remaining
// composition with one card of the up card's rank removed.
func (e *Engine) DealerOutcomes(up card.Card) Outcome {
	counts := e.workingCounts(up)
	memo := make(map[dealerKey]Outcome)
	start := up.Value()
	return e.dealerRecurse(start, up.IsAce(), counts, memo)
}

// workingCounts copies the tracker's composition and removes the up
// card. The decrement clamps at zero: a depleted rank must not push a
// count negative.
func (e *Engine) workingCounts(up card.Card) rankCounts {
	var counts rankCounts
	for r := card.Ace; r <= card.King; r++ {
		counts[r] = e.counter.Remaining(r)
	}
	if counts[up.Rank] > 0 {
		counts[up.Rank]--
	}
	return counts
}

// dealerStands reports whether the dealer stops drawing at this total.
func (e *Engine) dealerStands(total int, soft bool) bool {
	if e.rules.DealerHitsSoft17 {
		return total >= 18 || (total == 17 && !soft)
	}
	return total >= 17
}

func (e *Engine) dealerRecurse(total int, soft bool, counts rankCounts, memo map[dealerKey]Outcome) Outcome {
	if e.dealerStands(total, soft) {
		return Outcome{total: 1.0}
	}

	key := dealerKey{total: total, soft: soft, counts: counts}
	if cached, ok := memo[key]; ok {
		return cached
	}

	out := make(Outcome)
	remaining := counts.total()
	if remaining == 0 {
		// Degenerate composition: nothing left to draw.
		memo[key] = out
		return out
	}

	for r := card.Ace; r <= card.King; r++ {
		if counts[r] == 0 {
			continue
		}
		p := float64(counts[r]) / float64(remaining)

		newTotal, newSoft := drawTotal(total, soft, r)
		if newTotal > 21 {
			out[BustTotal] += p
			continue
		}

		next := counts
		next[r]--
		for final, sub := range e.dealerRecurse(newTotal, newSoft, next, memo) {
			out[final] += p * sub
		}
	}

	memo[key] = out
	return out
}

// drawTotal applies one drawn rank to a running total. An Ace comes in
// at 11 when it fits, otherwise at 1; a soft total that overflows 21
// demotes its Ace by 10 and goes hard.
func drawTotal(total int, soft bool, r card.Rank) (int, bool) {
	if r == card.Ace {
		if total+11 <= 21 {
			total += 11
			soft = true
		} else {
			total++
		}
	} else {
		total += r.Value()
	}
	if total > 21 && soft {
		total -= 10
		soft = false
	}
	return total, soft
}
