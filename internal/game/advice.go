package game

import (
	"github.com/atakolday/educational-blackjack/internal/apperrors"
	"github.com/atakolday/educational-blackjack/internal/strategy"
)

// Recommendation computes the engine's advice for the active hand
// against the dealer's up card.
func (g *Game) Recommendation() (strategy.Recommendation, error) {
	seat, err := g.currentSeat()
	if err != nil {
		return strategy.Recommendation{}, err
	}
	up, ok := g.UpCard()
	if !ok {
		return strategy.Recommendation{}, apperrors.ErrWrongState
	}
	return g.engine.Recommend(seat.Hand, up), nil
}

// InsuranceAdvice computes the side bet's expected value while the
// offer is open.
func (g *Game) InsuranceAdvice() (strategy.InsuranceAdvice, error) {
	if g.state != StateInsurance {
		return strategy.InsuranceAdvice{}, apperrors.ErrWrongState
	}
	return g.engine.Insurance(), nil
}

// SuggestedBet sizes the next bet from the true count, clamped to
// the table limits and the bankroll.
func (g *Game) SuggestedBet() float64 {
	suggested := g.cfg.MinBet * g.counter.BettingMultiplier()
	if suggested > g.cfg.MaxBet {
		suggested = g.cfg.MaxBet
	}
	if suggested < g.cfg.MinBet {
		suggested = g.cfg.MinBet
	}
	if suggested > g.bankroll {
		suggested = g.bankroll
	}
	return suggested
}
