package poker

import (
	"fmt"

	"github.com/google/uuid"
)

// ShuffleDeck reshuffles the full deck and deals from the top again.
// It is allowed until the first card of the round is dealt.
func (e *Engine) ShuffleDeck() error {
	if err := e.expectPhase("shuffle", PhasePairPlusOffered, PhaseCardsPending); err != nil {
		return err
	}
	if e.player.Len() > 0 || e.dealer.Len() > 0 {
		return fmt.Errorf("shuffle after dealing started: %w", ErrWrongPhase)
	}
	e.closePairPlus()
	e.shoe.Shuffle(e.shuffler)
	e.shoe.ResetCursor()
	e.logger.Debug("deck shuffled", "round", e.roundID)
	return nil
}

// DrawCardForPlayer deals the next card to the player.
func (e *Engine) DrawCardForPlayer() (Card, error) {
	return e.drawFor(&e.player.Hand, "player")
}

// DrawCardForDealer deals the next card to the dealer.
func (e *Engine) DrawCardForDealer() (Card, error) {
	return e.drawFor(&e.dealer.Hand, "dealer")
}

func (e *Engine) drawFor(h *Hand, who string) (Card, error) {
	if err := e.expectPhase("draw for "+who, PhasePairPlusOffered, PhaseCardsPending); err != nil {
		return Card{}, err
	}
	if h.Full() {
		return Card{}, ErrHandFull
	}
	c, err := e.shoe.DrawCard()
	if err != nil {
		return Card{}, err
	}
	e.closePairPlus()
	if err := h.Receive(c); err != nil {
		return Card{}, err
	}
	e.checkDealt()
	return c, nil
}

// SortHands orders both hands by descending value.
func (e *Engine) SortHands() {
	e.player.Sort()
	e.dealer.Sort()
}

// ResetGameState clears both hands and the three bets and starts a new round.
// The balance and the deck cursor are untouched. Calling it again has no effect.
func (e *Engine) ResetGameState() {
	e.player.Clear()
	e.dealer.Clear()
	e.player.ResetBets()
	e.roundID = uuid.Nil
	e.setPhase(PhaseAnteRequired)
}

// ReloadGameRules resets the round and swaps the evaluator and payout tables.
func (e *Engine) ReloadGameRules(evaluator Evaluator, anteBonusTable, pairPlusTable PayoutTable) error {
	if evaluator == nil {
		return ErrNilEvaluator
	}
	e.ResetGameState()
	e.evaluator = evaluator
	e.anteBonusTable = anteBonusTable
	e.pairPlusTable = pairPlusTable
	e.logger.Debug("rules reloaded", "variant", evaluator.Variant())
	return nil
}

// ReloadTableLimit resets the round and swaps the table limits.
func (e *Engine) ReloadTableLimit(enabled bool, limits Limits) {
	e.ResetGameState()
	e.limitsEnabled = enabled
	e.limits = limits
	e.logger.Debug("table limits reloaded", "enabled", enabled, "limits", limits)
}
