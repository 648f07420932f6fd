package deck

import (
	"errors"
	"fmt"
)

// Size is the number of cards in a standard deck.
const Size = 52

// ErrDeckExhausted is returned by Draw once every card has been dealt.
var ErrDeckExhausted = errors.New("deck exhausted")

// Shuffler is a source of uniform random permutations. *math/rand/v2.Rand
// satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is the rappresentation of the physical card deck.
// Cards are raw ids in 1..Size; the poker layer converts them to playing cards.
// Dealing never removes a card, it only advances the cursor, so the full deck
// is always present and can be re-shuffled in place.
type Deck struct {
	cards         [Size]int
	lastDrawnCard int // dealing cursor, in [0, Size]
}

// New returns a deck in factory order (1, 2, ..., 52) with the cursor at the top.
func New() *Deck {
	d := &Deck{}
	for i := range d.cards {
		d.cards[i] = i + 1
	}
	return d
}

// Shuffle randomizes the order of all the cards using s.
// The cursor is left untouched: call ResetCursor to deal from the top again.
func (d *Deck) Shuffle(s Shuffler) {
	s.Shuffle(Size, func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw returns the card at the cursor and advances it.
func (d *Deck) Draw() (int, error) {
	if d.lastDrawnCard >= Size {
		return 0, fmt.Errorf("draw card %d: %w", d.lastDrawnCard+1, ErrDeckExhausted)
	}
	card := d.cards[d.lastDrawnCard]
	d.lastDrawnCard++
	return card, nil
}

// ResetCursor moves the cursor back to the top of the deck.
func (d *Deck) ResetCursor() {
	d.lastDrawnCard = 0
}

// Cursor returns the number of cards dealt since the last reset.
func (d *Deck) Cursor() int {
	return d.lastDrawnCard
}

// Remaining returns how many cards can still be drawn.
func (d *Deck) Remaining() int {
	return Size - d.lastDrawnCard
}

// Order returns a copy of the current card order.
func (d *Deck) Order() []int {
	out := make([]int, Size)
	copy(out, d.cards[:])
	return out
}
