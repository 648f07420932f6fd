package poker

// StandardEvaluator implements the standard Three Card Poker ranking.
type StandardEvaluator struct{}

func (StandardEvaluator) Variant() Variant {
	return VariantStandard
}

func (StandardEvaluator) VirtualHand(cards [HandSize]Card) (VirtualHand, error) {
	return NewVirtualHand(cards)
}

// Rank checks the pair pattern first, then straight and flush.
func (StandardEvaluator) Rank(vh VirtualHand) HandRank {
	v0, v1, v2 := vh.Values[0], vh.Values[1], vh.Values[2]

	if v0 == v1 || v1 == v2 {
		if v0 == v2 {
			return ThreeOfAKind
		}
		return Pair
	}

	// values are distinct and descending here
	straight := v0-2 == v2
	if vh.Flush {
		if straight {
			return StraightFlush
		}
		return Flush
	}
	if straight {
		return Straight
	}
	return HighCard
}

// DealerQualified requires Queen high or better.
func (StandardEvaluator) DealerQualified(rank HandRank, highCard int) bool {
	return rank > HighCard || highCard >= Queen
}

// Compare decides the round. An unqualified dealer always loses the ante.
// Pairs compare the paired value, then the kicker through the sum of the
// three values; other equal ranks compare card by card.
func (StandardEvaluator) Compare(dealerQualified bool, playerRank, dealerRank HandRank, player, dealer [HandSize]int) Outcome {
	if !dealerQualified {
		return Win
	}

	if playerRank != dealerRank {
		return outcomeOf(int(playerRank) - int(dealerRank))
	}

	if playerRank == Pair {
		if player[1] != dealer[1] {
			return outcomeOf(player[1] - dealer[1])
		}
		return outcomeOf(sum(player) - sum(dealer))
	}

	for i := range player {
		if player[i] != dealer[i] {
			return outcomeOf(player[i] - dealer[i])
		}
	}
	return Push
}

func (StandardEvaluator) Ranks() []HandRank {
	return []HandRank{HighCard, Pair, Flush, Straight, ThreeOfAKind, StraightFlush}
}

func outcomeOf(diff int) Outcome {
	switch {
	case diff > 0:
		return Win
	case diff < 0:
		return Lose
	default:
		return Push
	}
}

func sum(values [HandSize]int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
