package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atakolday/educational-blackjack/internal/game"
	"github.com/atakolday/educational-blackjack/internal/sound"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		handled, cmd := m.handleKeyPress(msg)
		if handled {
			return m, cmd
		}

	case revealTickMsg:
		if msg.gen != m.animGen {
			return m, nil
		}
		if !m.advanceReveal() {
			m.finishAnimation()
			return m, nil
		}
		return m, m.revealTick()

	case clearErrorMsg:
		m.errMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress routes a key to the current phase. It reports
// whether the key was consumed.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return true, tea.Quit
	}

	if m.showHelp {
		// Any key closes the overlay.
		m.showHelp = false
		return true, nil
	}
	if m.gameOver {
		return true, tea.Quit
	}
	if m.animating {
		// Let the cards land first.
		return true, nil
	}

	switch m.game.State() {
	case game.StateBetting:
		return m.handleBettingKey(msg)
	case game.StateInsurance:
		return m.handleInsuranceKey(msg)
	case game.StatePlayerTurn:
		return m.handlePlayerKey(msg)
	case game.StateRoundOver:
		return m.handleRoundOverKey(msg)
	}
	return true, nil
}

func (m *Model) handleBettingKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return true, m.submitBet()
	}
	// Everything else feeds the amount box.
	return false, nil
}

func (m *Model) handleInsuranceKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		limit := m.game.Seats()[0].Bet / 2
		if limit > m.game.Bankroll() {
			limit = m.game.Bankroll()
		}
		return true, m.submitInsurance(limit)
	case "n", "N":
		return true, m.declineInsurance()
	}
	if msg.Type == tea.KeyEnter {
		if strings.TrimSpace(m.input.Value()) == "" {
			return true, m.declineInsurance()
		}
		amount, err := m.inputAmount()
		if err != nil {
			return true, m.setError(err)
		}
		return true, m.submitInsurance(amount)
	}
	return false, nil
}

func (m *Model) declineInsurance() tea.Cmd {
	if err := m.game.DeclineInsurance(); err != nil {
		return m.setError(err)
	}
	return m.afterPeek()
}

func (m *Model) handlePlayerKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "h":
		return true, m.doAction(m.game.Hit)
	case "s":
		return true, m.doAction(m.game.Stand)
	case "d":
		return true, m.doAction(m.game.DoubleDown)
	case "p":
		return true, m.doAction(m.game.Split)
	case "r":
		return true, m.doAction(m.game.Surrender)
	}
	return m.handleToggleKey(msg)
}

func (m *Model) handleRoundOverKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type == tea.KeyEnter || msg.String() == "b" {
		if m.game.Bankroll() < m.cfg.Game.MinBet {
			m.gameOver = true
			return true, nil
		}
		if err := m.game.NextRound(); err != nil {
			return true, m.setError(err)
		}
		m.showLog = false
		m.promptBet()
		return true, nil
	}
	return m.handleToggleKey(msg)
}

func (m *Model) handleToggleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "c":
		m.showCount = !m.showCount
		return true, nil
	case "a":
		m.showAdvice = !m.showAdvice
		m.refreshAdvice()
		return true, nil
	case "l":
		m.showLog = !m.showLog
		return true, nil
	case "?":
		m.showHelp = true
		return true, nil
	case "q":
		return true, tea.Quit
	}
	return true, nil
}

// inputAmount parses the amount box.
func (m *Model) inputAmount() (float64, error) {
	raw := strings.TrimSpace(m.input.Value())
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an amount", raw)
	}
	return v, nil
}

// submitBet stakes the typed amount, or the suggested bet when the
// box is empty, and kicks off the deal.
func (m *Model) submitBet() tea.Cmd {
	amount := m.game.SuggestedBet()
	if strings.TrimSpace(m.input.Value()) != "" {
		parsed, err := m.inputAmount()
		if err != nil {
			return m.setError(err)
		}
		amount = parsed
	}

	seenBefore := m.game.Counter().CardsSeen()
	if err := m.game.PlaceBet(amount); err != nil {
		return m.setError(err)
	}
	if m.game.Counter().CardsSeen() < seenBefore {
		m.sound.Play(sound.CueShuffle)
	}
	return m.startDealAnimation()
}

func (m *Model) submitInsurance(amount float64) tea.Cmd {
	if err := m.game.PlaceInsurance(amount); err != nil {
		return m.setError(err)
	}
	return m.afterPeek()
}

// afterPeek runs once the insurance offer is resolved. A dealer
// natural ends the round with a hole card flip.
func (m *Model) afterPeek() tea.Cmd {
	m.input.Blur()
	if m.game.State() == game.StateRoundOver {
		return m.startDealerAnimation()
	}
	m.refreshAdvice()
	return nil
}

// doAction runs one player action and, when the last hand resolves,
// plays out the dealer.
func (m *Model) doAction(action func() error) tea.Cmd {
	if err := action(); err != nil {
		return m.setError(err)
	}
	if m.game.State() == game.StateDealerTurn {
		if err := m.game.PlayDealer(); err != nil {
			return m.setError(err)
		}
		return m.startDealerAnimation()
	}
	m.refreshAdvice()
	return nil
}
