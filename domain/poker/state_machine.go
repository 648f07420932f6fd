package poker

import "fmt"

// Phase is the position of the engine in the bet lifecycle of a round.
type Phase string

const (
	PhaseAnteRequired    Phase = "ante_required"
	PhasePairPlusOffered Phase = "pair_plus_offered"
	PhaseCardsPending    Phase = "cards_pending"
	PhaseCardsDealt      Phase = "cards_dealt"
	PhaseSettled         Phase = "settled"
)

// expectPhase fails with ErrWrongPhase unless the engine is in one of allowed.
func (e *Engine) expectPhase(op string, allowed ...Phase) error {
	for _, p := range allowed {
		if e.phase == p {
			return nil
		}
	}
	return fmt.Errorf("%s during %s: %w", op, e.phase, ErrWrongPhase)
}

func (e *Engine) setPhase(next Phase) {
	if e.phase == next {
		return
	}
	e.logger.Debug("phase change", "round", e.roundID, "from", e.phase, "to", next)
	e.phase = next
}

// closePairPlus moves past the pair plus offer once dealing starts.
func (e *Engine) closePairPlus() {
	if e.phase == PhasePairPlusOffered {
		e.setPhase(PhaseCardsPending)
	}
}

// checkDealt moves to CardsDealt once both hands are complete.
func (e *Engine) checkDealt() {
	if e.player.Full() && e.dealer.Full() {
		e.setPhase(PhaseCardsDealt)
	}
}
