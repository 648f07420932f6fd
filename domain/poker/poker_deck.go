package poker

import (
	"fmt"

	"github.com/luca-patrignani/three-card-poker/domain/deck"
)

// Shoe wraps the raw-id deck and deals playing cards from it.
type Shoe struct {
	*deck.Deck
}

// NewShoe returns a shoe holding a fresh 52-card deck.
func NewShoe() Shoe {
	return Shoe{Deck: deck.New()}
}

// DrawCard deals the card at the cursor.
func (s Shoe) DrawCard() (Card, error) {
	raw, err := s.Draw()
	if err != nil {
		return Card{}, err
	}
	c, err := ConvertCard(raw)
	if err != nil {
		return Card{}, fmt.Errorf("deck id %d: %w", raw, err)
	}
	return c, nil
}

// Cards returns the current order of the deck as playing cards.
func (s Shoe) Cards() ([]Card, error) {
	order := s.Order()
	cards := make([]Card, len(order))
	for i, raw := range order {
		c, err := ConvertCard(raw)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}
