package poker

import (
	"errors"
	"fmt"
	"strconv"

	hankin "github.com/paulhankin/poker"
	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card values for face cards and ace. Ace is always high (14); the ace-low
// straight is handled by the evaluator, not by the card.
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

var suitSymbols = [4]string{"♣", "♦", "♥", "♠"}

// Card represents an immutable playing card with a suit and a value in 2..14.
// Two cards are equal when suit and value are equal.
type Card struct {
	suit  uint8 // 0-3: clubs, diamonds, hearts, spades
	value uint8 // 2-14: two through ace
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - value: 2-14 (2-10 face value, Jack=11, Queen=12, King=13, Ace=14)
func NewCard(suit uint8, value uint8) (Card, error) {
	// value 1 would become an ace once mapped to a pip rank
	if value < 2 {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, value)
	}
	hc, err := hankin.MakeCard(hankin.Suit(suit), hankin.Rank(pipRank(value)))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %d, %d: %w", suit, value, err)
	}
	return fromHankin(hc), nil
}

// fromHankin converts a valid paulhankin card. RawRank is 0 for a two and
// 12 for an ace.
func fromHankin(hc hankin.Card) Card {
	return Card{suit: uint8(hc.Suit()), value: uint8(hc.RawRank() + 2)}
}

// MustCard is NewCard for literals known to be valid. It panics otherwise.
func MustCard(suit uint8, value uint8) Card {
	c, err := NewCard(suit, value)
	if err != nil {
		panic(err)
	}
	return c
}

// ConvertCard converts a raw deck id (1-52) to a Card with the following suit
// order: ♣clubs -> ♦diamonds -> ♥hearts -> ♠spades, two through ace within each suit.
func ConvertCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}
	suit := uint8((rawCard - 1) / 13)
	value := uint8((rawCard-1)%13 + 2)
	return NewCard(suit, value)
}

// pipRank maps a card value to the 1..13 pip rank (ace low) used by paulhankin/poker.
func pipRank(value uint8) uint8 {
	if value == Ace {
		return 1
	}
	return value
}

// Suit returns the suit of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Value returns the numeric value of the Card (2-14, Ace=14).
func (c Card) Value() int {
	return int(c.value)
}

// Symbol returns the suit symbol.
func (c Card) Symbol() string {
	if int(c.suit) >= len(suitSymbols) {
		return "?"
	}
	return suitSymbols[c.suit]
}

// Rank returns the rank label: 2-10, J, Q, K or A.
func (c Card) Rank() string {
	switch c.value {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(c.value))
	}
}

// IsRed reports whether the card is a heart or a diamond.
func (c Card) IsRed() bool {
	return c.suit == Diamond || c.suit == Heart
}

// String returns a human-readable representation of the Card, e.g. "A♥".
func (c Card) String() string {
	return c.Rank() + c.Symbol()
}

// Styled is String with terminal colours: red suits in light red.
func (c Card) Styled() string {
	if c.IsRed() {
		return c.Rank() + pterm.LightRed(c.Symbol())
	}
	return c.Rank() + c.Symbol()
}
