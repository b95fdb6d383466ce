package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atakolday/educational-blackjack/internal/game/card"
)

// renderCards draws a hand as a rank row over a suit row, one column
// per card. Cards past visible are skipped; hideFirst masks the hole
// card with a back.
func renderCards(h *card.Hand, visible int, hideFirst bool) string {
	var rankRow, suitRow strings.Builder
	for i, c := range h.Cards() {
		if i >= visible {
			break
		}
		if hideFirst && i == 0 {
			style := backStyle.Align(lipgloss.Center).Margin(0, 1)
			rankRow.WriteString(style.Render(CardBack))
			suitRow.WriteString(style.Render(CardBack))
			continue
		}
		style := blackStyle
		if c.Suit.IsRed() {
			style = redStyle
		}
		style = style.Align(lipgloss.Center).Margin(0, 1)
		rankRow.WriteString(style.Render(fmt.Sprintf("%-2s", c.Rank.String())))
		suitRow.WriteString(style.Render(fmt.Sprintf("%-2s", c.Suit.String())))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rankRow.String(), suitRow.String())
}

// handTotal formats a hand total, marking soft totals.
func handTotal(h *card.Hand) string {
	if h.IsBust() {
		return fmt.Sprintf("%d BUST", h.Total())
	}
	if h.IsBlackjack() {
		return "Blackjack"
	}
	if h.IsSoft() {
		return fmt.Sprintf("soft %d", h.Total())
	}
	return fmt.Sprintf("%d", h.Total())
}

// money formats a currency amount with no trailing cents noise.
func money(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("$%d", int64(v))
	}
	return fmt.Sprintf("$%.2f", v)
}
