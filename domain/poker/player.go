package poker

import (
	"slices"
)

// HandSize is the number of cards each participant holds.
const HandSize = 3

// Hand is the 3-slot card buffer shared by the player and the dealer.
type Hand struct {
	cards [HandSize]Card
	top   int // fill cursor, in [0, HandSize]
}

// Receive puts c in the next free slot.
func (h *Hand) Receive(c Card) error {
	if h.top >= HandSize {
		return ErrHandFull
	}
	h.cards[h.top] = c
	h.top++
	return nil
}

// Clear empties the hand by resetting the fill cursor.
func (h *Hand) Clear() {
	h.cards = [HandSize]Card{}
	h.top = 0
}

// Sort orders the received cards by descending value. Equal values keep
// their dealing order.
func (h *Hand) Sort() {
	slices.SortStableFunc(h.cards[:h.top], func(a, b Card) int {
		return b.Value() - a.Value()
	})
}

// Len returns how many cards have been received.
func (h *Hand) Len() int {
	return h.top
}

// Full reports whether all three slots are filled.
func (h *Hand) Full() bool {
	return h.top == HandSize
}

// Cards returns a copy of the received cards.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards[:h.top])
}

// Three returns the complete hand, or ErrIncompleteHand if fewer than three
// cards have been received.
func (h *Hand) Three() ([HandSize]Card, error) {
	if !h.Full() {
		return [HandSize]Card{}, ErrIncompleteHand
	}
	return h.cards, nil
}

// Dealer holds only a hand.
type Dealer struct {
	Hand
}

// Player holds a hand, a bankroll and the three bets of the current round.
type Player struct {
	Hand
	Balance     int
	AnteBet     int
	PairPlusBet int
	PlayBet     int
}

// ResetBets zeroes the three bets.
func (p *Player) ResetBets() {
	p.AnteBet = 0
	p.PairPlusBet = 0
	p.PlayBet = 0
}
