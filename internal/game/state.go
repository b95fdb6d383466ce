package game

import (
	"github.com/google/uuid"

	"github.com/atakolday/educational-blackjack/internal/game/card"
)

// State is the table's position in the round lifecycle.
type State int

const (
	StateBetting State = iota
	StateDealing
	StateInsurance
	StatePlayerTurn
	StateDealerTurn
	StateRoundOver
)

var stateNames = map[State]string{
	StateBetting:    "Betting",
	StateDealing:    "Dealing",
	StateInsurance:  "Insurance",
	StatePlayerTurn: "Player Turn",
	StateDealerTurn: "Dealer Turn",
	StateRoundOver:  "Round Over",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Result is the settlement outcome of one player hand.
type Result int

const (
	ResultDealerWin Result = iota
	ResultPlayerWin
	ResultPush
	ResultPlayerBlackjack
	ResultSurrender
)

var resultNames = map[Result]string{
	ResultDealerWin:       "Dealer wins",
	ResultPlayerWin:       "Player wins",
	ResultPush:            "Push",
	ResultPlayerBlackjack: "Blackjack!",
	ResultSurrender:       "Surrendered",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "Unknown"
}

// Seat is one player hand in play and the stake riding on it.
type Seat struct {
	Hand      *card.Hand
	Bet       float64
	FromSplit bool
}

// HandResult records how one seat settled. Payout is the amount
// returned to the bankroll, stake included.
type HandResult struct {
	Hand   *card.Hand
	Bet    float64
	Result Result
	Payout float64
}

// RoundRecord is the settled history entry for one round.
type RoundRecord struct {
	ID              uuid.UUID
	Results         []HandResult
	InsuranceBet    float64
	InsurancePayout float64
	Net             float64
	TrueCount       float64
}

// Statistics accumulates per-hand outcomes across the session.
type Statistics struct {
	HandsPlayed int
	Wins        int
	Losses      int
	Pushes      int
	Blackjacks  int
	Surrenders  int
}

// WinRate returns wins (naturals included) over hands played.
func (s Statistics) WinRate() float64 {
	if s.HandsPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.HandsPlayed)
}
