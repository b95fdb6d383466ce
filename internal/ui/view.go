package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atakolday/educational-blackjack/internal/game"
	"github.com/atakolday/educational-blackjack/internal/game/card"
	"github.com/atakolday/educational-blackjack/internal/logger"
)

func (m *Model) View() string {
	if m.width == 0 {
		return "Shuffling up..."
	}
	if m.gameOver {
		return m.gameOverView()
	}
	if m.showHelp {
		return m.overlay(m.helpPanel())
	}
	if m.showLog {
		return m.overlay(m.historyPanel())
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.tableView())
}

func (m *Model) overlay(content string) string {
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m *Model) tableView() string {
	var sb strings.Builder

	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.headerLine()))
	sb.WriteString("\n\n")

	if dealer := m.dealerSection(); dealer != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, dealer))
		sb.WriteString("\n")
	}
	if seats := m.seatsSection(); seats != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, seats))
		sb.WriteString("\n")
	}
	if panels := m.panelsSection(); panels != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panels))
		sb.WriteString("\n")
	}
	if m.game.State() == game.StateRoundOver && !m.animating {
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.resultsSection()))
		sb.WriteString("\n")
	}

	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.promptSection()))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.statsLine()))

	return sb.String()
}

func (m *Model) headerLine() string {
	bankroll := moneyStyle.Render(money(m.game.Bankroll()))
	shoe := m.game.Shoe()
	left := fmt.Sprintf("%d cards left", shoe.CardsRemaining())
	return titleStyle(fmt.Sprintf("♠ Blackjack %s %s %s · %d decks · %s",
		ChipIcon, bankroll, DealerIcon, shoe.NumDecks(), left))
}

func (m *Model) dealerSection() string {
	dealer := m.game.Dealer()
	if dealer.NumCards() == 0 {
		return ""
	}

	visible := dealer.NumCards()
	if m.animating && m.shownDealer < visible {
		visible = m.shownDealer
	}
	hideFirst := !m.game.HoleRevealed() || (m.animating && !m.holeShown)

	title := DealerIcon + " Dealer"
	label := ""
	switch {
	case visible < 2:
		label = ""
	case hideFirst:
		if up, ok := m.game.UpCard(); ok {
			label = fmt.Sprintf("showing %d", up.Rank.Value())
		}
	case visible < dealer.NumCards():
		label = "drawing..."
	default:
		label = handTotal(dealer)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title, renderCards(dealer, visible, hideFirst), label)
	return boxStyle.Render(content)
}

func (m *Model) seatsSection() string {
	seats := m.game.Seats()
	if len(seats) == 0 {
		return ""
	}

	inTurn := m.game.State() == game.StatePlayerTurn
	var parts []string
	for i, seat := range seats {
		visible := seat.Hand.NumCards()
		if i == 0 && m.animating && m.animPlayerTarget > 0 && m.shownPlayer < visible {
			visible = m.shownPlayer
		}

		title := fmt.Sprintf("Hand %d · %s", i+1, money(seat.Bet))
		if seat.Hand.IsDoubled() {
			title += " ×2"
		}
		if seat.Hand.IsSurrendered() {
			title += " 🏳"
		}

		label := ""
		if visible >= seat.Hand.NumCards() {
			label = handTotal(seat.Hand)
		}

		content := lipgloss.JoinVertical(lipgloss.Center,
			title, renderCards(seat.Hand, visible, false), label)
		style := boxStyle
		if inTurn && i == m.game.ActiveSeat() && !m.animating {
			style = activeBox
		}
		parts = append(parts, style.Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) panelsSection() string {
	var parts []string
	if m.showCount {
		parts = append(parts, m.countPanel())
	}
	if m.showAdvice {
		switch m.game.State() {
		case game.StatePlayerTurn:
			if m.advice != nil && !m.animating {
				parts = append(parts, m.advicePanel())
			}
		case game.StateInsurance:
			if !m.animating {
				parts = append(parts, m.insurancePanel())
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// countPanel shows the Hi-Lo state and the exact remaining ranks.
func (m *Model) countPanel() string {
	counter := m.game.Counter()
	var sb strings.Builder

	ranks := []card.Rank{
		card.Ace, card.Two, card.Three, card.Four, card.Five,
		card.Six, card.Seven, card.Eight, card.Nine, card.Ten,
		card.Jack, card.Queen, card.King,
	}
	var names []string
	for _, r := range ranks {
		names = append(names, fmt.Sprintf("%-2s", r.String()))
	}
	sb.WriteString(strings.Join(names, "│") + "\n")
	sb.WriteString(strings.Repeat("─", 38) + "\n")

	var counts []string
	for _, r := range ranks {
		counts = append(counts, fmt.Sprintf("%-2d", counter.Remaining(r)))
	}
	sb.WriteString(strings.Join(counts, "│") + "\n\n")

	fmt.Fprintf(&sb, "running %+d · true %+.1f\n", counter.RunningCount(), counter.TrueCount())
	fmt.Fprintf(&sb, "%s · %.1f decks left\n", counter.Status(), counter.DecksRemaining())
	fmt.Fprintf(&sb, "ten density %.1f%%\n", counter.TenValueProbability()*100)
	fmt.Fprintf(&sb, "suggested bet %s", money(m.game.SuggestedBet()))

	content := lipgloss.JoinVertical(lipgloss.Center, "🃏 Count", sb.String())
	return boxStyle.Render(content)
}

// advicePanel compares the exact EV play with the book play for the
// active hand.
func (m *Model) advicePanel() string {
	rec := m.advice
	var sb strings.Builder

	fmt.Fprintf(&sb, "Best: %s (EV %+.3f)\n", rec.OptimalAction, rec.OptimalEV)
	fmt.Fprintf(&sb, "Book: %s (EV %+.3f)\n", rec.BasicAction, rec.BasicEV)
	if rec.CountAdvantage {
		sb.WriteString(goodStyle.Render(fmt.Sprintf("count is worth %+.3f here", rec.EVDifference)))
	} else {
		sb.WriteString(hintStyle.Render("count agrees with the book"))
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "dealer busts %.1f%%", m.bustProb*100)
	if seats := m.game.Seats(); m.game.ActiveSeat() < len(seats) {
		total := seats[m.game.ActiveSeat()].Hand.Total()
		bust := m.game.Engine().PlayerBustProbability(total)
		fmt.Fprintf(&sb, " · hit busts %.1f%%", bust*100)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, "🧮 Advice", sb.String())
	return boxStyle.Render(content)
}

// insurancePanel prices the open side bet.
func (m *Model) insurancePanel() string {
	advice, err := m.game.InsuranceAdvice()
	if err != nil {
		return ""
	}
	var sb strings.Builder

	fmt.Fprintf(&sb, "dealer natural %.1f%%\n", advice.DealerBlackjackProbability*100)
	fmt.Fprintf(&sb, "EV per unit %+.3f\n", advice.InsuranceEV)
	if advice.ShouldTake {
		sb.WriteString(goodStyle.Render("the count says take it"))
	} else {
		sb.WriteString(badStyle.Render("skip it"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, "🛡 Insurance", sb.String())
	return boxStyle.Render(content)
}

func (m *Model) resultsSection() string {
	results := m.game.Results()
	if len(results) == 0 {
		return ""
	}
	var sb strings.Builder

	for i, r := range results {
		delta := r.Payout - r.Bet
		line := fmt.Sprintf("Hand %d: %s %s", i+1, r.Result, signedMoney(delta))
		sb.WriteString(m.resultStyle(delta).Render(line) + "\n")
	}
	if m.game.InsuranceBet() > 0 {
		delta := m.game.LastInsurancePayout() - m.game.InsuranceBet()
		line := fmt.Sprintf("Insurance: %s", signedMoney(delta))
		sb.WriteString(m.resultStyle(delta).Render(line) + "\n")
	}
	if history := m.game.History(); len(history) > 0 {
		net := history[len(history)-1].Net
		sb.WriteString(m.resultStyle(net).Render(fmt.Sprintf("Round net: %s", signedMoney(net))))
	}

	return boxStyle.Render(sb.String())
}

func (m *Model) resultStyle(delta float64) lipgloss.Style {
	switch {
	case delta > 0:
		return goodStyle
	case delta < 0:
		return badStyle
	}
	return hintStyle
}

func signedMoney(v float64) string {
	if v < 0 {
		return "-" + money(-v)
	}
	return "+" + money(v)
}

func (m *Model) promptSection() string {
	var sb strings.Builder

	switch {
	case m.animating:
		sb.WriteString(hintStyle.Render("dealing..."))
	case m.game.State() == game.StateBetting:
		sb.WriteString(m.input.View() + "\n")
		sb.WriteString(hintStyle.Render("type a bet and press Enter · blank takes the suggestion · Esc quit"))
	case m.game.State() == game.StateInsurance:
		sb.WriteString(m.input.View() + "\n")
		sb.WriteString(hintStyle.Render("y take the side bet · n decline · or type an amount and Enter"))
	case m.game.State() == game.StatePlayerTurn:
		sb.WriteString(hintStyle.Render("h hit · s stand · d double · p split · r surrender · a advice · c count · l log · ? help · q quit"))
	case m.game.State() == game.StateRoundOver:
		sb.WriteString(hintStyle.Render("Enter next hand · l log · ? help · q quit"))
	}

	if m.errMsg != "" {
		sb.WriteString("\n" + errorStyle.Render("⚠ "+m.errMsg))
	}
	return promptStyle.Render(sb.String())
}

func (m *Model) statsLine() string {
	stats := m.game.Stats()
	if stats.HandsPlayed == 0 {
		return hintStyle.Render("fresh shoe · no hands played yet")
	}
	// Mid-round the stakes are already deducted; add them back so the
	// session figure does not dip while cards are in the air.
	net := m.game.Bankroll() - m.cfg.Game.StartingBankroll
	if st := m.game.State(); st != game.StateRoundOver && st != game.StateBetting {
		for _, seat := range m.game.Seats() {
			net += seat.Bet
		}
		net += m.game.InsuranceBet()
	}
	return hintStyle.Render(fmt.Sprintf(
		"hands %d · wins %d · losses %d · pushes %d · blackjacks %d · win rate %.1f%% · session %s",
		stats.HandsPlayed, stats.Wins, stats.Losses, stats.Pushes, stats.Blackjacks,
		stats.WinRate()*100, signedMoney(net)))
}

func (m *Model) historyPanel() string {
	history := m.game.History()
	var sb strings.Builder
	sb.WriteString("📜 Recent rounds\n")
	sb.WriteString(strings.Repeat("─", 36) + "\n")

	if len(history) == 0 {
		sb.WriteString("nothing played yet\n")
	}
	start := 0
	if len(history) > 10 {
		start = len(history) - 10
	}
	for i := start; i < len(history); i++ {
		r := history[i]
		fmt.Fprintf(&sb, "#%-3d true %+.1f · %d hand(s) · %s\n",
			i+1, r.TrueCount, len(r.Results), signedMoney(r.Net))
	}

	sb.WriteString(strings.Repeat("─", 36) + "\n")
	sb.WriteString(hintStyle.Render("l or any action key closes"))
	return boxStyle.Render(sb.String())
}

func (m *Model) helpPanel() string {
	cfg := m.cfg.Game
	var sb strings.Builder
	sb.WriteString("📖 Table guide\n")
	sb.WriteString(strings.Repeat("─", 52) + "\n\n")

	sb.WriteString("House rules\n")
	fmt.Fprintf(&sb, "• %d decks, dealer %s on soft 17\n", cfg.NumDecks, map[bool]string{true: "hits", false: "stands"}[cfg.DealerHitsSoft17])
	payout := "3:2"
	if !cfg.BlackjackPays32 {
		payout = "6:5"
	}
	fmt.Fprintf(&sb, "• blackjack pays %s, insurance pays 2:1\n", payout)
	fmt.Fprintf(&sb, "• double after split: %v · surrender: %v\n", cfg.DoubleAfterSplit, cfg.SurrenderAllowed)
	fmt.Fprintf(&sb, "• bets %s to %s\n\n", money(cfg.MinBet), money(cfg.MaxBet))

	sb.WriteString("Reading the count\n")
	sb.WriteString("• 2-6 count +1 · 7-9 count 0 · tens and aces count -1\n")
	sb.WriteString("• true count = running count / decks left\n")
	sb.WriteString("• positive counts favor you: bet more, insure sooner\n\n")

	sb.WriteString("Keys\n")
	sb.WriteString("• h hit · s stand · d double · p split · r surrender\n")
	sb.WriteString("• a advice panel · c count panel · l round log\n")
	sb.WriteString("• Enter confirm · Esc or q quit\n")

	if p := logger.GetLogPath(); p != "" {
		sb.WriteString("\n" + hintStyle.Render("debug log: "+p))
	}

	return boxStyle.Render(sb.String())
}

func (m *Model) gameOverView() string {
	stats := m.game.Stats()
	msg := fmt.Sprintf("💸 The bankroll is gone.\n\n%d hands · %d wins · %d blackjacks\n\nAny key to leave the table.",
		stats.HandsPlayed, stats.Wins, stats.Blackjacks)
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(msg)
}
