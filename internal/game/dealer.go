package game

import (
	"github.com/google/uuid"

	"github.com/atakolday/educational-blackjack/internal/apperrors"
	"github.com/atakolday/educational-blackjack/internal/logger"
)

// dealerMustDraw applies the house drawing rule to the dealer's hand.
func (g *Game) dealerMustDraw() bool {
	t := g.dealer.Total()
	if t > 21 {
		return false
	}
	if g.cfg.DealerHitsSoft17 {
		return t < 17 || (t == 17 && g.dealer.IsSoft())
	}
	return t < 17
}

// PlayDealer reveals the hole card, draws out the dealer's hand, and
// settles the round. The dealer does not draw when every player hand
// is already bust or surrendered.
func (g *Game) PlayDealer() error {
	if g.state != StateDealerTurn {
		return apperrors.ErrWrongState
	}
	g.revealHole()

	live := false
	for _, s := range g.seats {
		if !s.Hand.IsBust() && !s.Hand.IsSurrendered() {
			live = true
			break
		}
	}
	if live {
		for g.dealerMustDraw() {
			c, err := g.draw()
			if err != nil {
				return err
			}
			g.dealer.Add(c)
		}
	}
	g.settle()
	return nil
}

// settle scores every seat against the dealer, pays the bankroll,
// and records the round.
func (g *Game) settle() {
	g.revealHole()
	g.state = StateRoundOver

	dealerTotal := g.dealer.Total()
	dealerBust := g.dealer.IsBust()
	dealerNatural := g.dealer.IsBlackjack()

	staked := g.insuranceBet
	paid := 0.0
	g.lastResults = make([]HandResult, 0, len(g.seats))
	for _, s := range g.seats {
		staked += s.Bet
		res := HandResult{Hand: s.Hand, Bet: s.Bet}
		switch {
		case s.Hand.IsSurrendered():
			res.Result = ResultSurrender
			res.Payout = s.Bet / 2
		case s.Hand.IsBust():
			res.Result = ResultDealerWin
		case s.Hand.IsBlackjack() && !s.FromSplit:
			if dealerNatural {
				res.Result = ResultPush
				res.Payout = s.Bet
			} else {
				res.Result = ResultPlayerBlackjack
				res.Payout = s.Bet + s.Bet*g.blackjackPremium()
			}
		case dealerNatural:
			res.Result = ResultDealerWin
		case dealerBust:
			res.Result = ResultPlayerWin
			res.Payout = 2 * s.Bet
		case s.Hand.Total() > dealerTotal:
			res.Result = ResultPlayerWin
			res.Payout = 2 * s.Bet
		case s.Hand.Total() < dealerTotal:
			res.Result = ResultDealerWin
		default:
			res.Result = ResultPush
			res.Payout = s.Bet
		}
		paid += res.Payout
		g.lastResults = append(g.lastResults, res)
		g.recordStats(res.Result)
	}
	g.bankroll += paid

	net := paid + g.lastInsurance - staked
	g.history = append(g.history, RoundRecord{
		ID:              uuid.New(),
		Results:         g.lastResults,
		InsuranceBet:    g.insuranceBet,
		InsurancePayout: g.lastInsurance,
		Net:             net,
		TrueCount:       g.trueCountAtBet,
	})

	logger.LogInfo("round over: dealer %d, net %+.2f, bankroll %.2f",
		dealerTotal, net, g.bankroll)
}

// blackjackPremium is the winnings per unit staked on a natural.
func (g *Game) blackjackPremium() float64 {
	if g.cfg.BlackjackPays32 {
		return 1.5
	}
	return 1.2
}

func (g *Game) recordStats(r Result) {
	g.stats.HandsPlayed++
	switch r {
	case ResultPlayerWin:
		g.stats.Wins++
	case ResultPlayerBlackjack:
		g.stats.Wins++
		g.stats.Blackjacks++
	case ResultDealerWin:
		g.stats.Losses++
	case ResultPush:
		g.stats.Pushes++
	case ResultSurrender:
		g.stats.Surrenders++
	}
}
