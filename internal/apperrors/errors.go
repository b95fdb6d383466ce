package apperrors

// GameError is a typed game error shared by the table and the engine.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Stable error codes for the UI layer.
const (
	CodeWrongState = iota + 1
	CodeBetOutOfRange
	CodeInsufficientBankroll
	CodeCannotDouble
	CodeCannotSplit
	CodeCannotSurrender
	CodeSurrenderDisabled
	CodeInsuranceTooLarge
	CodeShoeEmpty
	CodeNoActiveHand
)

// Predefined errors
var (
	ErrWrongState           = &GameError{Code: CodeWrongState, Message: "action not available in this state"}
	ErrBetOutOfRange        = &GameError{Code: CodeBetOutOfRange, Message: "bet is outside the table limits"}
	ErrInsufficientBankroll = &GameError{Code: CodeInsufficientBankroll, Message: "not enough bankroll for that bet"}
	ErrCannotDouble         = &GameError{Code: CodeCannotDouble, Message: "only a two-card hand may double down"}
	ErrCannotSplit          = &GameError{Code: CodeCannotSplit, Message: "hand is not a splittable pair"}
	ErrCannotSurrender      = &GameError{Code: CodeCannotSurrender, Message: "only a two-card hand may surrender"}
	ErrSurrenderDisabled    = &GameError{Code: CodeSurrenderDisabled, Message: "surrender is not allowed at this table"}
	ErrInsuranceTooLarge    = &GameError{Code: CodeInsuranceTooLarge, Message: "insurance may not exceed half the bet"}
	ErrShoeEmpty            = &GameError{Code: CodeShoeEmpty, Message: "the shoe is out of cards"}
	ErrNoActiveHand         = &GameError{Code: CodeNoActiveHand, Message: "no active hand to act on"}
)
