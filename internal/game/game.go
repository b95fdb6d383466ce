// Package game drives a blackjack table through betting, dealing,
// player decisions, the dealer's draw, and settlement, and keeps the
// card tracker and the probability engine in sync with the shoe.
package game

import (
	"github.com/atakolday/educational-blackjack/internal/apperrors"
	"github.com/atakolday/educational-blackjack/internal/config"
	"github.com/atakolday/educational-blackjack/internal/counting"
	"github.com/atakolday/educational-blackjack/internal/game/card"
	"github.com/atakolday/educational-blackjack/internal/game/shoe"
	"github.com/atakolday/educational-blackjack/internal/logger"
	"github.com/atakolday/educational-blackjack/internal/strategy"
)

// maxSeats caps how many hands one round can split into.
const maxSeats = 4

// Game holds the full table state for one player against the house.
// All mutation happens in the calling goroutine; the presentation
// layer reads snapshots between calls. Not safe for concurrent use.
type Game struct {
	cfg     *config.GameConfig
	shoe    *shoe.Shoe
	counter *counting.Counter
	engine  *strategy.Engine

	state        State
	dealer       *card.Hand
	holeRevealed bool
	seats        []*Seat
	active       int

	bankroll       float64
	insuranceBet   float64
	trueCountAtBet float64

	lastResults   []HandResult
	lastInsurance float64
	history       []RoundRecord
	stats         Statistics
}

// New creates a table with a freshly shuffled shoe and the starting
// bankroll from the config.
func New(cfg *config.GameConfig) *Game {
	return newWithShoe(cfg, shoe.New(cfg.NumDecks))
}

func newWithShoe(cfg *config.GameConfig, sh *shoe.Shoe) *Game {
	counter := counting.NewCounter()
	counter.Reset(sh)
	return &Game{
		cfg:      cfg,
		shoe:     sh,
		counter:  counter,
		engine:   strategy.NewEngine(counter, strategy.Rules{DealerHitsSoft17: cfg.DealerHitsSoft17}),
		state:    StateBetting,
		dealer:   card.NewHand(),
		bankroll: cfg.StartingBankroll,
	}
}

// draw deals one card face up. The tracker sees it immediately.
func (g *Game) draw() (card.Card, error) {
	c, ok := g.shoe.Deal()
	if !ok {
		return card.Card{}, apperrors.ErrShoeEmpty
	}
	g.counter.Observe(c)
	return c, nil
}

// drawHidden deals the dealer's hole card face down. The tracker
// must not see it until revealHole, or the advice would be computed
// from information the player does not have.
func (g *Game) drawHidden() (card.Card, error) {
	c, ok := g.shoe.Deal()
	if !ok {
		return card.Card{}, apperrors.ErrShoeEmpty
	}
	return c, nil
}

func (g *Game) revealHole() {
	if g.holeRevealed || g.dealer.NumCards() == 0 {
		return
	}
	g.counter.Observe(g.dealer.Card(0))
	g.holeRevealed = true
}

// reshuffle returns every card to the shoe and resets the tracker.
// The burn card is shown face up so the tracker stays exact.
func (g *Game) reshuffle() {
	logger.LogInfo("reshuffling shoe at %.0f%% penetration, true count was %+.1f",
		g.shoe.Penetration()*100, g.counter.TrueCount())
	g.shoe.Shuffle()
	g.counter.Reset(g.shoe)
	if burned, ok := g.shoe.Burn(); ok {
		g.counter.Observe(burned)
	}
}

// State reports where the table is in the round lifecycle.
func (g *Game) State() State { return g.state }

// Bankroll reports the player's current funds. Stakes in play have
// already been deducted.
func (g *Game) Bankroll() float64 { return g.bankroll }

// Dealer returns the dealer's hand. Callers must treat it as
// read-only.
func (g *Game) Dealer() *card.Hand { return g.dealer }

// HoleRevealed reports whether the dealer's first card is face up.
func (g *Game) HoleRevealed() bool { return g.holeRevealed }

// UpCard returns the dealer's exposed card, if one has been dealt.
func (g *Game) UpCard() (card.Card, bool) {
	if g.dealer.NumCards() < 2 {
		return card.Card{}, false
	}
	return g.dealer.Card(1), true
}

// Seats returns the player hands in play, in table order. Callers
// must treat them as read-only.
func (g *Game) Seats() []*Seat {
	out := make([]*Seat, len(g.seats))
	copy(out, g.seats)
	return out
}

// ActiveSeat reports which seat acts next. Only meaningful during
// the player turn.
func (g *Game) ActiveSeat() int { return g.active }

// InsuranceBet reports the insurance stake for the current round.
func (g *Game) InsuranceBet() float64 { return g.insuranceBet }

// Results returns the settlement of the last completed round.
func (g *Game) Results() []HandResult { return g.lastResults }

// LastInsurancePayout reports what insurance returned last round.
func (g *Game) LastInsurancePayout() float64 { return g.lastInsurance }

// Stats returns the running session statistics.
func (g *Game) Stats() Statistics { return g.stats }

// History returns the settled rounds, oldest first.
func (g *Game) History() []RoundRecord {
	out := make([]RoundRecord, len(g.history))
	copy(out, g.history)
	return out
}

// Counter exposes the card tracker for read-only display.
func (g *Game) Counter() *counting.Counter { return g.counter }

// Engine exposes the probability engine for read-only display.
func (g *Game) Engine() *strategy.Engine { return g.engine }

// Shoe exposes the shoe for read-only display.
func (g *Game) Shoe() *shoe.Shoe { return g.shoe }
