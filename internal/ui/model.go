// Package ui renders the table and turns keystrokes into game
// actions. It is a single bubbletea model driven entirely by the
// game state machine.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atakolday/educational-blackjack/internal/config"
	"github.com/atakolday/educational-blackjack/internal/game"
	"github.com/atakolday/educational-blackjack/internal/logger"
	"github.com/atakolday/educational-blackjack/internal/sound"
	"github.com/atakolday/educational-blackjack/internal/strategy"
)

// revealTickMsg advances the card reveal animation. The generation
// guard drops ticks left over from an abandoned animation.
type revealTickMsg struct {
	gen int
}

// clearErrorMsg removes a transient error from the prompt.
type clearErrorMsg struct{}

// Model is the bubbletea model for the whole table.
type Model struct {
	game  *game.Game
	cfg   *config.Config
	sound *sound.Manager

	input  textinput.Model
	width  int
	height int

	showCount  bool
	showAdvice bool
	showHelp   bool
	showLog    bool

	errMsg   string
	gameOver bool

	// Advice is refreshed after each game mutation rather than per
	// frame. The exact EV recursion is not free.
	advice   *strategy.Recommendation
	bustProb float64

	// Reveal animation state.
	animGen          int
	animating        bool
	shownPlayer      int
	shownDealer      int
	animPlayerTarget int
	holeShown        bool
}

// New builds the model around an already constructed game.
func New(g *game.Game, cfg *config.Config, snd *sound.Manager) *Model {
	ti := textinput.New()
	ti.CharLimit = 8
	ti.Width = 24

	m := &Model{
		game:       g,
		cfg:        cfg,
		sound:      snd,
		input:      ti,
		showCount:  cfg.UI.ShowCount,
		showAdvice: cfg.UI.ShowAdvice,
	}
	m.promptBet()
	return m
}

func (m *Model) Init() tea.Cmd {
	// Speaker setup can block for a moment, so it runs off the UI
	// loop. Cues are silently dropped until it finishes.
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.LogPanic(r)
			}
		}()
		if err := m.sound.Init(m.cfg.Sound.Enabled); err != nil {
			logger.LogError("sound disabled: %v", err)
		}
	}()
	return textinput.Blink
}

func (m *Model) promptBet() {
	m.input.Placeholder = "bet, Enter = " + money(m.game.SuggestedBet())
	m.input.SetValue("")
	m.input.Focus()
}

func (m *Model) promptInsurance() {
	limit := m.game.Seats()[0].Bet / 2
	if limit > m.game.Bankroll() {
		limit = m.game.Bankroll()
	}
	m.input.Placeholder = "insurance, y = " + money(limit)
	m.input.SetValue("")
	m.input.Focus()
}

func (m *Model) setError(err error) tea.Cmd {
	m.errMsg = err.Error()
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// refreshAdvice recomputes the cached recommendation for the active
// hand, or clears it outside the player turn.
func (m *Model) refreshAdvice() {
	m.advice = nil
	m.bustProb = 0
	if !m.showAdvice || m.game.State() != game.StatePlayerTurn {
		return
	}
	rec, err := m.game.Recommendation()
	if err != nil {
		return
	}
	m.advice = &rec
	if up, ok := m.game.UpCard(); ok {
		m.bustProb = m.game.Engine().DealerBustProbability(up)
	}
}

// --- Reveal animation ---

func (m *Model) revealTick() tea.Cmd {
	gen := m.animGen
	return tea.Tick(m.cfg.UI.DealDelay(), func(time.Time) tea.Msg {
		return revealTickMsg{gen: gen}
	})
}

// startDealAnimation uncovers a fresh round card by card.
func (m *Model) startDealAnimation() tea.Cmd {
	m.animGen++
	m.input.Blur()
	if m.cfg.UI.DealDelayMs <= 0 {
		m.finishAnimation()
		return nil
	}
	m.animating = true
	m.shownPlayer, m.shownDealer = 0, 0
	m.animPlayerTarget = m.game.Seats()[0].Hand.NumCards()
	m.holeShown = false
	return m.revealTick()
}

// startDealerAnimation flips the hole card and uncovers the dealer's
// draws one by one. Player cards stay as they are.
func (m *Model) startDealerAnimation() tea.Cmd {
	m.animGen++
	if m.cfg.UI.DealDelayMs <= 0 {
		m.finishAnimation()
		return nil
	}
	m.animating = true
	m.shownPlayer = 0
	m.animPlayerTarget = 0
	m.shownDealer = 2
	m.holeShown = false
	return m.revealTick()
}

// advanceReveal uncovers the next card in deal order. It reports
// whether it revealed anything.
func (m *Model) advanceReveal() bool {
	dealerCards := m.game.Dealer().NumCards()
	switch {
	case m.game.HoleRevealed() && !m.holeShown && m.shownDealer >= 2:
		m.holeShown = true
		m.sound.Play(sound.CueFlip)
	case m.shownPlayer <= m.shownDealer && m.shownPlayer < m.animPlayerTarget:
		m.shownPlayer++
		m.sound.Play(sound.CueDeal)
	case m.shownDealer < dealerCards:
		m.shownDealer++
		m.sound.Play(sound.CueDeal)
	default:
		return false
	}
	return true
}

// finishAnimation shows everything and runs the side effects of the
// state the game landed in.
func (m *Model) finishAnimation() {
	m.animating = false
	m.holeShown = m.game.HoleRevealed()
	switch m.game.State() {
	case game.StateInsurance:
		m.promptInsurance()
	case game.StatePlayerTurn:
		m.refreshAdvice()
	case game.StateRoundOver:
		m.playResultCue()
	}
}

func (m *Model) playResultCue() {
	results := m.game.Results()
	if len(results) == 0 {
		return
	}
	net := 0.0
	for _, r := range results {
		if r.Result == game.ResultPlayerBlackjack {
			m.sound.Play(sound.CueBlackjack)
			return
		}
		net += r.Payout - r.Bet
	}
	switch {
	case net > 0:
		m.sound.Play(sound.CueWin)
	case net < 0:
		m.sound.Play(sound.CueLose)
	default:
		m.sound.Play(sound.CuePush)
	}
}
