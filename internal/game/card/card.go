package card

import "strconv"

// Suit identifies one of the four French suits.
type Suit int

// Rank identifies a card face, declared in Ace-first order.
type Rank int

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

// suitSymbols maps each suit to its display symbol.
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Club:    "♣",
	Diamond: "♦",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// IsRed reports whether the suit renders in red.
func (s Suit) IsRed() bool {
	return s == Heart || s == Diamond
}

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of distinct ranks in a deck.
const NumRanks = 13

// rankNames maps each rank to its display string.
var rankNames = map[Rank]string{
	Ace:   "A",
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Value returns the blackjack value of the rank. Aces count as 11 here;
// hand totalling demotes them to 1 as needed.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r) + 1
	}
}

// SoftValue returns the minimum value of the rank (Ace as 1).
func (r Rank) SoftValue() int {
	if r == Ace {
		return 1
	}
	return r.Value()
}

// CountValue returns the Hi-Lo tag of the rank: +1 for 2-6, 0 for 7-9,
// -1 for ten-values and Aces.
func (r Rank) CountValue() int {
	switch {
	case r >= Two && r <= Six:
		return 1
	case r >= Seven && r <= Nine:
		return 0
	default:
		return -1
	}
}

// Card is a single playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) Value() int     { return c.Rank.Value() }
func (c Card) SoftValue() int { return c.Rank.SoftValue() }

// CountValue returns the Hi-Lo tag of the card.
func (c Card) CountValue() int { return c.Rank.CountValue() }

// IsAce reports whether the card is an Ace.
func (c Card) IsAce() bool { return c.Rank == Ace }

// IsTenValue reports whether the card counts as ten (10, J, Q, K).
func (c Card) IsTenValue() bool { return c.Rank >= Ten && c.Rank <= King }

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
