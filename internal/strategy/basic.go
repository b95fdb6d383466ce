package strategy

import "github.com/atakolday/educational-blackjack/internal/game/card"

// BasicAction returns the fixed basic-strategy play for the hand. The
// table is the baseline the exact EVs are compared against and only
// ever answers Hit, Stand or Split. An Ace up card counts as 11.
func (e *Engine) BasicAction(h *card.Hand, up card.Card) Action {
	dealer := up.Value()
	if h.CanSplit() {
		return pairAction(h.Card(0).Value(), dealer)
	}
	if h.IsSoft() {
		return softAction(h.Total(), dealer)
	}
	return hardAction(h.Total(), dealer)
}

func pairAction(pair, dealer int) Action {
	switch pair {
	case 11, 8:
		// Aces and eights, always.
		return Split
	case 10:
		if dealer == 5 || dealer == 6 {
			return Split
		}
		return Stand
	case 9:
		switch dealer {
		case 2, 3, 4, 5, 6, 8, 9:
			return Split
		}
		return Stand
	case 7, 3, 2:
		if dealer <= 7 {
			return Split
		}
		return Hit
	case 6:
		if dealer <= 6 {
			return Split
		}
		return Hit
	case 5:
		if dealer <= 9 {
			return Split
		}
		return Hit
	case 4:
		if dealer == 5 || dealer == 6 {
			return Split
		}
		return Hit
	}
	return Hit
}

func softAction(total, dealer int) Action {
	switch {
	case total >= 19:
		return Stand
	case total == 18:
		if dealer >= 9 {
			return Hit
		}
		return Stand
	default:
		return Hit
	}
}

func hardAction(total, dealer int) Action {
	switch {
	case total >= 17:
		return Stand
	case total == 16:
		if dealer >= 7 {
			return Hit
		}
		return Stand
	case total == 15:
		if dealer >= 10 {
			return Hit
		}
		return Stand
	case total == 13 || total == 14:
		if dealer <= 6 {
			return Stand
		}
		return Hit
	case total == 12:
		if dealer >= 4 && dealer <= 6 {
			return Stand
		}
		return Hit
	default:
		return Hit
	}
}
