package poker

import (
	"fmt"
	"slices"
)

// Outcome of a round from the player's point of view.
type Outcome string

const (
	Lose Outcome = "lose"
	Push Outcome = "push"
	Win  Outcome = "win"
	Fold Outcome = "fold"
)

// Variant names a closed set of rule variants.
type Variant string

const (
	VariantStandard   Variant = "standard"
	VariantCalifornia Variant = "california"
)

// Variants lists every supported rule variant.
var Variants = []Variant{VariantStandard, VariantCalifornia}

// VirtualHand is the evaluation form of a hand: values sorted descending plus
// the flush flag. An A-3-2 hand is remapped to 3-2-1 so it ranks as the
// lowest straight.
type VirtualHand struct {
	Values [HandSize]int
	Flush  bool
}

// HighCard returns the highest value of the hand.
func (v VirtualHand) HighCard() int {
	return v.Values[0]
}

// NewVirtualHand builds the VirtualHand of a hand sorted by descending value.
func NewVirtualHand(cards [HandSize]Card) (VirtualHand, error) {
	var vh VirtualHand
	for i, c := range cards {
		vh.Values[i] = c.Value()
	}
	if vh.Values[0] < vh.Values[1] || vh.Values[1] < vh.Values[2] {
		return VirtualHand{}, fmt.Errorf("%v: %w", vh.Values, ErrUnsortedHand)
	}
	vh.Flush = cards[0].Suit() == cards[1].Suit() && cards[1].Suit() == cards[2].Suit()
	if vh.Values == [HandSize]int{Ace, 3, 2} {
		vh.Values = [HandSize]int{3, 2, 1}
	}
	return vh, nil
}

// FormatHand returns the cards in display order: a sorted A-3-2 is shown as 3-2-A.
func FormatHand(cards []Card) []Card {
	out := slices.Clone(cards)
	if len(out) == HandSize && out[0].Value() == Ace && out[1].Value() == 3 && out[2].Value() == 2 {
		out[0], out[1], out[2] = out[1], out[2], out[0]
	}
	return out
}

// Evaluator ranks hands and decides rounds under one rule variant.
// Implementations are stateless.
type Evaluator interface {
	Variant() Variant
	// VirtualHand derives the evaluation form of a sorted hand.
	VirtualHand(cards [HandSize]Card) (VirtualHand, error)
	// Rank classifies a virtual hand.
	Rank(vh VirtualHand) HandRank
	// DealerQualified reports whether the dealer contests the play bet.
	DealerQualified(rank HandRank, highCard int) bool
	// Compare returns Win, Lose or Push for the player.
	Compare(dealerQualified bool, playerRank, dealerRank HandRank, player, dealer [HandSize]int) Outcome
	// Ranks lists every rank the variant can produce, lowest first.
	Ranks() []HandRank
}

// NewEvaluator returns the evaluator of the given variant.
func NewEvaluator(v Variant) (Evaluator, error) {
	switch v {
	case VariantStandard:
		return StandardEvaluator{}, nil
	case VariantCalifornia:
		return CaliforniaEvaluator{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", v, ErrUnknownVariant)
	}
}
