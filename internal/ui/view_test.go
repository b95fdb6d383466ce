package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atakolday/educational-blackjack/internal/config"
	"github.com/atakolday/educational-blackjack/internal/game"
	"github.com/atakolday/educational-blackjack/internal/sound"
)

// newTestModel builds a model around a fresh six deck game with sound
// off. A zero delay makes deals resolve synchronously.
func newTestModel(delayMs int) *Model {
	cfg := config.Default()
	cfg.UI.DealDelayMs = delayMs
	cfg.Sound.Enabled = false
	g := game.New(&cfg.Game)
	return New(g, cfg, sound.NewManager())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func resize(m *Model) {
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
}

func TestNewModel(t *testing.T) {
	m := newTestModel(0)

	assert.True(t, m.showCount)
	assert.True(t, m.showAdvice)
	assert.True(t, m.input.Focused())
	assert.Equal(t, "bet, Enter = $10", m.input.Placeholder)
}

func TestView_WaitsForTerminalSize(t *testing.T) {
	m := newTestModel(0)
	assert.Equal(t, "Shuffling up...", m.View())
}

func TestView_BettingPhase(t *testing.T) {
	m := newTestModel(0)
	resize(m)

	out := m.View()
	assert.Contains(t, out, "Blackjack")
	assert.Contains(t, out, "312 cards left")
	assert.Contains(t, out, "type a bet and press Enter")
	assert.Contains(t, out, "fresh shoe")
	assert.NotContains(t, out, "Hand 1")
}

func TestUpdate_RejectsBadAmount(t *testing.T) {
	m := newTestModel(0)
	resize(m)

	m.Update(keyRunes("abc"))
	_, cmd := m.Update(keyEnter())

	require.NotNil(t, cmd, "a transient error should schedule its own clear")
	assert.Equal(t, `"abc" is not an amount`, m.errMsg)
	assert.Equal(t, game.StateBetting, m.game.State())
	assert.Contains(t, m.View(), "⚠")

	m.Update(clearErrorMsg{})
	assert.Empty(t, m.errMsg)
}

func TestUpdate_RejectsBetBelowMinimum(t *testing.T) {
	m := newTestModel(0)
	resize(m)

	m.Update(keyRunes("5"))
	m.Update(keyEnter())

	assert.NotEmpty(t, m.errMsg)
	assert.Equal(t, game.StateBetting, m.game.State())
	assert.InDelta(t, 1000, m.game.Bankroll(), 1e-9)
}

func TestUpdate_DealsOnEnter(t *testing.T) {
	m := newTestModel(0)
	resize(m)

	m.Update(keyRunes("25"))
	m.Update(keyEnter())

	st := m.game.State()
	assert.True(t, st == game.StateInsurance || st == game.StatePlayerTurn || st == game.StateRoundOver,
		"deal should leave the betting phase, got %v", st)
	assert.False(t, m.animating, "zero delay skips the reveal animation")
	if st == game.StatePlayerTurn {
		assert.False(t, m.input.Focused(), "the amount box only takes bets and insurance")
	}

	seats := m.game.Seats()
	require.Len(t, seats, 1)
	assert.Equal(t, 2, seats[0].Hand.NumCards())
	assert.Equal(t, 2, m.game.Dealer().NumCards())
	assert.Contains(t, m.View(), "Hand 1 · $25")
}

func TestUpdate_EmptyBetTakesSuggestion(t *testing.T) {
	m := newTestModel(0)
	resize(m)

	m.Update(keyEnter())

	seats := m.game.Seats()
	require.Len(t, seats, 1)
	assert.InDelta(t, 10, seats[0].Bet, 1e-9)
}

func TestUpdate_AnimationRevealsInDealOrder(t *testing.T) {
	m := newTestModel(350)
	resize(m)

	m.Update(keyRunes("25"))
	m.Update(keyEnter())
	require.True(t, m.animating)
	assert.Equal(t, 0, m.shownPlayer)
	assert.Equal(t, 0, m.shownDealer)

	// A tick from an abandoned animation must not advance anything.
	m.Update(revealTickMsg{gen: m.animGen - 1})
	assert.Equal(t, 0, m.shownPlayer)

	// Player, hole, player, up card.
	tick := revealTickMsg{gen: m.animGen}
	m.Update(tick)
	assert.Equal(t, 1, m.shownPlayer)
	m.Update(tick)
	assert.Equal(t, 1, m.shownDealer)
	m.Update(tick)
	assert.Equal(t, 2, m.shownPlayer)
	m.Update(tick)
	assert.Equal(t, 2, m.shownDealer)

	for i := 0; i < 10 && m.animating; i++ {
		m.Update(tick)
	}
	assert.False(t, m.animating)
	assert.Equal(t, m.game.HoleRevealed(), m.holeShown)
}

func TestHandleKeyPress_SwallowsKeysWhileAnimating(t *testing.T) {
	m := newTestModel(350)
	resize(m)

	m.Update(keyRunes("25"))
	m.Update(keyEnter())
	require.True(t, m.animating)

	handled, cmd := m.handleKeyPress(keyRunes("h"))
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Empty(t, m.errMsg)
}

func TestHandleToggleKey(t *testing.T) {
	m := newTestModel(0)

	m.handleToggleKey(keyRunes("c"))
	assert.False(t, m.showCount)
	m.handleToggleKey(keyRunes("c"))
	assert.True(t, m.showCount)

	m.handleToggleKey(keyRunes("a"))
	assert.False(t, m.showAdvice)

	m.handleToggleKey(keyRunes("l"))
	assert.True(t, m.showLog)

	m.handleToggleKey(keyRunes("?"))
	assert.True(t, m.showHelp)

	// Any key closes the help overlay.
	handled, _ := m.handleKeyPress(keyRunes("x"))
	assert.True(t, handled)
	assert.False(t, m.showHelp)

	handled, cmd := m.handleToggleKey(keyRunes("q"))
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_HelpOverlay(t *testing.T) {
	m := newTestModel(0)
	resize(m)
	m.showHelp = true

	out := m.View()
	assert.Contains(t, out, "Table guide")
	assert.Contains(t, out, "6 decks")
	assert.Contains(t, out, "blackjack pays 3:2")
	assert.Contains(t, out, "true count")
}

func TestView_HistoryOverlayEmpty(t *testing.T) {
	m := newTestModel(0)
	resize(m)
	m.showLog = true

	assert.Contains(t, m.View(), "nothing played yet")
}

func TestView_GameOver(t *testing.T) {
	m := newTestModel(0)
	resize(m)
	m.gameOver = true

	assert.Contains(t, m.View(), "bankroll is gone")

	handled, cmd := m.handleKeyPress(keyRunes("x"))
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHandleKeyPress_EscAlwaysQuits(t *testing.T) {
	m := newTestModel(0)

	handled, cmd := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSignedMoney(t *testing.T) {
	assert.Equal(t, "+$25", signedMoney(25))
	assert.Equal(t, "-$2.50", signedMoney(-2.5))
	assert.Equal(t, "+$0", signedMoney(0))
}
