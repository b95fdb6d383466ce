package game

import (
	"slices"

	"github.com/atakolday/educational-blackjack/internal/apperrors"
	"github.com/atakolday/educational-blackjack/internal/game/card"
)

func (g *Game) currentSeat() (*Seat, error) {
	if g.state != StatePlayerTurn {
		return nil, apperrors.ErrWrongState
	}
	if g.active >= len(g.seats) {
		return nil, apperrors.ErrNoActiveHand
	}
	return g.seats[g.active], nil
}

// seatDone reports whether a seat can take no further action.
func (g *Game) seatDone(s *Seat) bool {
	h := s.Hand
	if h.IsBust() || h.IsSurrendered() || h.IsDoubled() || h.Total() >= 21 {
		return true
	}
	// Split aces receive one card each and stand.
	if s.FromSplit && h.NumCards() >= 2 && h.Card(0).IsAce() {
		return true
	}
	return false
}

// advance moves play to the next undecided seat, or hands the round
// to the dealer when every seat is resolved.
func (g *Game) advance() {
	g.active++
	for g.active < len(g.seats) && g.seatDone(g.seats[g.active]) {
		g.active++
	}
	if g.active >= len(g.seats) {
		g.state = StateDealerTurn
	}
}

// Hit draws one card to the active hand. Reaching 21 or busting
// ends the hand's turn.
func (g *Game) Hit() error {
	seat, err := g.currentSeat()
	if err != nil {
		return err
	}
	c, err := g.draw()
	if err != nil {
		return err
	}
	seat.Hand.Add(c)
	if seat.Hand.Total() >= 21 {
		g.advance()
	}
	return nil
}

// Stand ends the active hand's turn.
func (g *Game) Stand() error {
	if _, err := g.currentSeat(); err != nil {
		return err
	}
	g.advance()
	return nil
}

// DoubleDown doubles the stake on a two-card hand, draws exactly one
// card, and ends the hand's turn.
func (g *Game) DoubleDown() error {
	seat, err := g.currentSeat()
	if err != nil {
		return err
	}
	if !seat.Hand.CanDouble() {
		return apperrors.ErrCannotDouble
	}
	if seat.FromSplit && !g.cfg.DoubleAfterSplit {
		return apperrors.ErrCannotDouble
	}
	if seat.Bet > g.bankroll {
		return apperrors.ErrInsufficientBankroll
	}
	g.bankroll -= seat.Bet
	seat.Bet *= 2
	seat.Hand.MarkDoubled()
	c, err := g.draw()
	if err != nil {
		return err
	}
	seat.Hand.Add(c)
	g.advance()
	return nil
}

// Split turns a pair into two hands, each matching the original
// stake, and deals one card to each.
func (g *Game) Split() error {
	seat, err := g.currentSeat()
	if err != nil {
		return err
	}
	if !seat.Hand.CanSplit() || len(g.seats) >= maxSeats {
		return apperrors.ErrCannotSplit
	}
	if seat.Bet > g.bankroll {
		return apperrors.ErrInsufficientBankroll
	}
	g.bankroll -= seat.Bet

	first := seat.Hand.Card(0)
	second := seat.Hand.Card(1)
	seat.Hand = card.NewHand(first)
	seat.FromSplit = true
	next := &Seat{Hand: card.NewHand(second), Bet: seat.Bet, FromSplit: true}
	g.seats = slices.Insert(g.seats, g.active+1, next)

	c, err := g.draw()
	if err != nil {
		return err
	}
	seat.Hand.Add(c)
	c, err = g.draw()
	if err != nil {
		return err
	}
	next.Hand.Add(c)

	if g.seatDone(seat) {
		g.advance()
	}
	return nil
}

// Surrender forfeits half the stake on an unsplit two-card hand.
func (g *Game) Surrender() error {
	seat, err := g.currentSeat()
	if err != nil {
		return err
	}
	if !g.cfg.SurrenderAllowed {
		return apperrors.ErrSurrenderDisabled
	}
	if seat.Hand.NumCards() != 2 || seat.FromSplit {
		return apperrors.ErrCannotSurrender
	}
	seat.Hand.MarkSurrendered()
	g.advance()
	return nil
}
