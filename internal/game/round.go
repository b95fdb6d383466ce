package game

import (
	"github.com/atakolday/educational-blackjack/internal/apperrors"
	"github.com/atakolday/educational-blackjack/internal/game/card"
	"github.com/atakolday/educational-blackjack/internal/logger"
)

// PlaceBet stakes the given amount and deals the round. Depending on
// the cards the table lands in the insurance offer, the player turn,
// or straight at settlement when someone has a natural.
func (g *Game) PlaceBet(amount float64) error {
	if g.state != StateBetting {
		return apperrors.ErrWrongState
	}
	if amount < g.cfg.MinBet || amount > g.cfg.MaxBet {
		return apperrors.ErrBetOutOfRange
	}
	if amount > g.bankroll {
		return apperrors.ErrInsufficientBankroll
	}

	if g.shoe.ShouldShuffle() {
		g.reshuffle()
	}
	g.trueCountAtBet = g.counter.TrueCount()

	g.bankroll -= amount
	g.seats = []*Seat{{Hand: card.NewHand(), Bet: amount}}
	g.active = 0
	g.dealer = card.NewHand()
	g.holeRevealed = false
	g.insuranceBet = 0
	g.lastResults = nil
	g.lastInsurance = 0
	g.state = StateDealing

	logger.LogInfo("round start: bet %.2f, true count %+.1f, %d cards left",
		amount, g.trueCountAtBet, g.shoe.CardsRemaining())
	return g.dealInitial()
}

// dealInitial deals player, hole, player, up card, then routes the
// round. The hole card stays hidden from the tracker.
func (g *Game) dealInitial() error {
	player := g.seats[0].Hand

	c, err := g.draw()
	if err != nil {
		return err
	}
	player.Add(c)

	hole, err := g.drawHidden()
	if err != nil {
		return err
	}
	g.dealer.Add(hole)

	c, err = g.draw()
	if err != nil {
		return err
	}
	player.Add(c)

	up, err := g.draw()
	if err != nil {
		return err
	}
	g.dealer.Add(up)

	if up.IsAce() {
		g.state = StateInsurance
		return nil
	}
	if up.IsTenValue() && g.dealer.IsBlackjack() {
		g.settle()
		return nil
	}
	if player.IsBlackjack() {
		g.settle()
		return nil
	}
	g.state = StatePlayerTurn
	return nil
}

// PlaceInsurance stakes a side bet that the dealer has a natural.
// At most half the main bet. Resolves the peek immediately.
func (g *Game) PlaceInsurance(amount float64) error {
	if g.state != StateInsurance {
		return apperrors.ErrWrongState
	}
	if amount <= 0 {
		return apperrors.ErrBetOutOfRange
	}
	if amount > g.seats[0].Bet/2 {
		return apperrors.ErrInsuranceTooLarge
	}
	if amount > g.bankroll {
		return apperrors.ErrInsufficientBankroll
	}
	g.bankroll -= amount
	g.insuranceBet = amount
	g.resolveInsurance()
	return nil
}

// DeclineInsurance waives the side bet and resolves the peek.
func (g *Game) DeclineInsurance() error {
	if g.state != StateInsurance {
		return apperrors.ErrWrongState
	}
	g.insuranceBet = 0
	g.resolveInsurance()
	return nil
}

func (g *Game) resolveInsurance() {
	if g.dealer.IsBlackjack() {
		if g.insuranceBet > 0 {
			g.lastInsurance = g.insuranceBet * 3
			g.bankroll += g.lastInsurance
		}
		g.settle()
		return
	}
	if g.seats[0].Hand.IsBlackjack() {
		g.settle()
		return
	}
	g.state = StatePlayerTurn
}

// NextRound returns the table to betting after settlement. The cards
// stay out of the shoe until the cut card forces a reshuffle.
func (g *Game) NextRound() error {
	if g.state != StateRoundOver {
		return apperrors.ErrWrongState
	}
	g.state = StateBetting
	return nil
}
