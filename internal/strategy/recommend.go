package strategy

import "github.com/atakolday/educational-blackjack/internal/game/card"

// Action is a playable blackjack decision.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
	Surrender
)

// actionNames maps each action to its display string.
var actionNames = map[Action]string{
	Hit:       "Hit",
	Stand:     "Stand",
	Double:    "Double",
	Split:     "Split",
	Surrender: "Surrender",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Recommendation compares the EV-optimal action with the fixed
// basic-strategy baseline for the same hand.
type Recommendation struct {
	OptimalAction  Action
	OptimalEV      float64
	BasicAction    Action
	BasicEV        float64
	EVDifference   float64
	CountAdvantage bool
}

// InsuranceAdvice prices the insurance side bet at the current
// composition. BasicEV is the flat baseline of never insuring.
type InsuranceAdvice struct {
	ShouldTake                 bool
	InsuranceEV                float64
	BasicEV                    float64
	DealerBlackjackProbability float64
	CountAdvantage             bool
}

type actionEV struct {
	action Action
	ev     float64
}

// bestAction picks the highest EV. On exact ties the earliest
// candidate wins, so enumeration order is part of the contract.
func bestAction(candidates []actionEV) (Action, float64) {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.ev > best.ev {
			best = c
		}
	}
	return best.action, best.ev
}

// OptimalAction returns the EV-maximizing action for the hand, with
// candidates evaluated in the order Hit, Stand, Double, Split,
// Surrender. A busted hand is a settled -1; a natural pays 3:2.
func (e *Engine) OptimalAction(h *card.Hand, up card.Card) (Action, float64) {
	if h.IsBust() {
		return Stand, -1.0
	}
	if h.IsBlackjack() {
		return Stand, 1.5
	}

	outcomes := e.DealerOutcomes(up)
	candidates := []actionEV{
		{Hit, e.hitEV(h, outcomes)},
		{Stand, standEVTotal(h.Total(), outcomes)},
	}
	if h.CanDouble() {
		candidates = append(candidates, actionEV{Double, e.doubleEV(h, outcomes)})
	}
	if h.CanSplit() {
		candidates = append(candidates, actionEV{Split, e.splitEV(h, outcomes)})
	}
	if h.NumCards() == 2 {
		candidates = append(candidates, actionEV{Surrender, SurrenderEV})
	}
	return bestAction(candidates)
}

// Recommend evaluates both the optimal and the basic play for the hand
// and reports whether the count moved the exact answer off book.
func (e *Engine) Recommend(h *card.Hand, up card.Card) Recommendation {
	optimal, optimalEV := e.OptimalAction(h, up)
	basic := e.BasicAction(h, up)

	var basicEV float64
	switch {
	case h.IsBust():
		basicEV = -1.0
	case h.IsBlackjack():
		basicEV = 1.5
	default:
		basicEV = e.evForAction(basic, h, up)
	}

	return Recommendation{
		OptimalAction:  optimal,
		OptimalEV:      optimalEV,
		BasicAction:    basic,
		BasicEV:        basicEV,
		EVDifference:   optimalEV - basicEV,
		CountAdvantage: optimalEV > basicEV,
	}
}

func (e *Engine) evForAction(a Action, h *card.Hand, up card.Card) float64 {
	outcomes := e.DealerOutcomes(up)
	switch a {
	case Hit:
		return e.hitEV(h, outcomes)
	case Stand:
		return standEVTotal(h.Total(), outcomes)
	case Double:
		if h.CanDouble() {
			return e.doubleEV(h, outcomes)
		}
	case Split:
		if h.CanSplit() {
			return e.splitEV(h, outcomes)
		}
	case Surrender:
		if h.NumCards() == 2 {
			return SurrenderEV
		}
	}
	return 0
}

// Insurance prices the side bet from the live ten-value density. The
// bet pays 2:1, so per unit staked the EV is 3p - 1.
func (e *Engine) Insurance() InsuranceAdvice {
	p := e.counter.TenValueProbability()
	ev := 3*p - 1
	return InsuranceAdvice{
		ShouldTake:                 ev > 0,
		InsuranceEV:                ev,
		BasicEV:                    0,
		DealerBlackjackProbability: p,
		CountAdvantage:             ev > 0,
	}
}
