package poker

import "fmt"

// Limits holds the table limits. Bets are checked against them only while
// table limits are enabled, except the minimums which always apply.
type Limits struct {
	MinAnteBet                  int `json:"min_ante_bet"`
	MaxAnteBet                  int `json:"max_ante_bet"`
	MinPairPlusBet              int `json:"min_pair_plus_bet"`
	MaxPairPlusBet              int `json:"max_pair_plus_bet"`
	GameEndsIfBalanceIsLessThan int `json:"game_ends_if_balance_is_less_than"`
}

// PayoutTable maps a hand rank to its payout multiplier.
type PayoutTable map[HandRank]int

// Payout returns rate(rank) * stake. A missing rank means the table does not
// match the evaluator and is reported as ErrMissingPayout.
func (t PayoutTable) Payout(rank HandRank, stake int) (int, error) {
	rate, ok := t[rank]
	if !ok {
		return 0, fmt.Errorf("%s: %w", rank, ErrMissingPayout)
	}
	return rate * stake, nil
}

// Covers reports the first rank of ranks missing from the table.
func (t PayoutTable) Covers(ranks []HandRank) error {
	for _, r := range ranks {
		if _, ok := t[r]; !ok {
			return fmt.Errorf("%s: %w", r, ErrMissingPayout)
		}
	}
	return nil
}

// checkBet validates a bet amount against its bounds.
func checkBet(bet string, amount, lower, upper int) error {
	if amount < lower || amount > upper {
		return fmt.Errorf("%s bet %d not in [%d, %d]: %w", bet, amount, lower, upper, ErrBetOutOfRange)
	}
	return nil
}

// upperBound applies the table limit to a balance-derived ceiling.
func upperBound(balanceLimit int, limitsEnabled bool, tableLimit int, name string) (int, error) {
	if tableLimit < 0 {
		return 0, fmt.Errorf("%s %d: %w", name, tableLimit, ErrNegativeLimit)
	}
	if !limitsEnabled {
		return balanceLimit, nil
	}
	return min(balanceLimit, tableLimit), nil
}
