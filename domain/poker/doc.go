// Package poker implements the domain logic of a Three Card Poker table:
// one player against the dealer, with Ante/Play, Ante Bonus and Pair Plus bets.
//
// # Core Types
//
// Card: an immutable playing card with suit and value (Ace high, 14).
//
// Hand, Player, Dealer: the 3-slot hand buffer, embedded in both
// participants; the player also carries the bankroll and the three bets.
//
// Evaluator: a rule variant (StandardEvaluator, CaliforniaEvaluator) that
// ranks hands, qualifies the dealer and decides the round.
//
// Engine: owns the deck and the participants and drives the round.
//
// # Round Flow
//
// A round progresses through phases: AnteRequired → PairPlusOffered →
// CardsPending → CardsDealt → Settled, and ResetGameState starts the next one.
// Calls made out of order fail with ErrWrongPhase without changing state.
//
// # Hand Evaluation
//
// Hands are evaluated on their VirtualHand: values sorted descending and a
// flush flag, with A-3-2 remapped to 3-2-1. A pair is checked before
// straights and flushes, and a Flush ranks below a Straight.
package poker
