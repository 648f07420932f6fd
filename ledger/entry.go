package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luca-patrignani/three-card-poker/domain/poker"
)

// Entry is one settled round in the journal.
type Entry struct {
	Index      int              `json:"index"`
	Timestamp  int64            `json:"timestamp"`
	PrevHash   string           `json:"prev_hash"`
	Hash       string           `json:"hash"`
	RoundID    uuid.UUID        `json:"round_id"`
	Variant    poker.Variant    `json:"variant"`
	Settlement poker.Settlement `json:"settlement"`
}

// Summary aggregates the rounds of a session.
type Summary struct {
	Rounds   int
	Wins     int
	Pushes   int
	Losses   int
	Folds    int
	Wagered  decimal.Decimal
	Returned decimal.Decimal
}

// Net is what the session won or lost.
func (s Summary) Net() decimal.Decimal {
	return s.Returned.Sub(s.Wagered)
}

// ReturnToPlayer is Returned / Wagered, zero when nothing was wagered.
func (s Summary) ReturnToPlayer() decimal.Decimal {
	if s.Wagered.IsZero() {
		return decimal.Zero
	}
	return s.Returned.DivRound(s.Wagered, 4)
}
