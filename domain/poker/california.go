package poker

// CaliforniaEvaluator ranks a suited A-K-Q as a Mini Royal Flush above the
// straight flush. Everything else is the standard ranking.
type CaliforniaEvaluator struct {
	StandardEvaluator
}

func (CaliforniaEvaluator) Variant() Variant {
	return VariantCalifornia
}

func (e CaliforniaEvaluator) Rank(vh VirtualHand) HandRank {
	rank := e.StandardEvaluator.Rank(vh)
	// A-2-3 is already remapped to 3-2-1, so only A-K-Q has an ace on top.
	if rank == StraightFlush && vh.Values[0] == Ace {
		return MiniRoyalFlush
	}
	return rank
}

func (CaliforniaEvaluator) Ranks() []HandRank {
	return []HandRank{HighCard, Pair, Flush, Straight, ThreeOfAKind, StraightFlush, MiniRoyalFlush}
}
