package poker

import "errors"

// Bet and balance validation failures. The rejected operation leaves the
// engine untouched and the caller decides whether to ask again.
var (
	ErrBetOutOfRange       = errors.New("bet out of range")
	ErrNegativeAmount      = errors.New("amount can not be negative")
	ErrInsufficientBalance = errors.New("amount exceeds player's balance")
)

// Configuration integrity failures: the engine and its rules or data disagree.
var (
	ErrNegativeLimit  = errors.New("table limit can not be negative")
	ErrMissingPayout  = errors.New("payout table has no entry for hand rank")
	ErrUnsortedHand   = errors.New("hand is not sorted in descending order")
	ErrUnknownVariant = errors.New("unknown rule variant")
	ErrNilEvaluator   = errors.New("evaluator is required")
	ErrHandFull       = errors.New("hand already holds three cards")
	ErrIncompleteHand = errors.New("hand does not hold three cards")
)

// ErrWrongPhase is returned when an operation is called out of the round order.
var ErrWrongPhase = errors.New("operation not allowed in the current phase")
