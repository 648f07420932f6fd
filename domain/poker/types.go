package poker

import "github.com/google/uuid"

// Evaluation is the read-only comparison of the two hands.
type Evaluation struct {
	Player          VirtualHand
	Dealer          VirtualHand
	PlayerRank      HandRank
	DealerRank      HandRank
	DealerQualified bool
	Outcome         Outcome
}

// Settlement reports how a round was paid. Winnings excludes refunded stakes;
// Returned is everything credited to the balance by the settlement.
type Settlement struct {
	RoundID         uuid.UUID
	DealerQualified bool
	PlayerRank      HandRank
	DealerRank      HandRank
	AnteBonusPayout int
	HadPairPlusBet  bool
	PairPlusPayout  int
	Outcome         Outcome
	Winnings        int
	Wagered         int
	Returned        int
	Balance         int
}

// Net is the balance change of the round.
func (s Settlement) Net() int {
	return s.Returned - s.Wagered
}
