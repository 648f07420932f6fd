package poker

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luca-patrignani/three-card-poker/domain/deck"
)

// Engine runs one player against the dealer through the round lifecycle:
// ante, optional pair plus, deal, play or fold, settle, reset.
// It owns its deck and participants and is not safe for concurrent use.
type Engine struct {
	player Player
	dealer Dealer
	shoe   Shoe

	shuffler  deck.Shuffler
	evaluator Evaluator

	anteBonusTable PayoutTable
	pairPlusTable  PayoutTable
	limitsEnabled  bool
	limits         Limits

	phase   Phase
	roundID uuid.UUID
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithShuffler sets the random source used by ShuffleDeck.
func WithShuffler(s deck.Shuffler) Option {
	return func(e *Engine) {
		e.shuffler = s
	}
}

// WithLogger sets the logger. The engine logs at debug level only.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates an engine with the given bankroll and rules. Without
// WithShuffler the deck is shuffled with a deck.CryptoShuffler.
func NewEngine(
	balance int,
	evaluator Evaluator,
	anteBonusTable PayoutTable,
	pairPlusTable PayoutTable,
	limitsEnabled bool,
	limits Limits,
	opts ...Option,
) (*Engine, error) {
	if balance < 0 {
		return nil, fmt.Errorf("initial balance %d: %w", balance, ErrNegativeAmount)
	}
	if evaluator == nil {
		return nil, ErrNilEvaluator
	}
	e := &Engine{
		player:         Player{Balance: balance},
		shoe:           NewShoe(),
		evaluator:      evaluator,
		anteBonusTable: anteBonusTable,
		pairPlusTable:  pairPlusTable,
		limitsEnabled:  limitsEnabled,
		limits:         limits,
		phase:          PhaseAnteRequired,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.shuffler == nil {
		e.shuffler = deck.NewCryptoShuffler()
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e, nil
}

// Balance returns the player's bankroll.
func (e *Engine) Balance() int { return e.player.Balance }

// AnteBet returns the current ante.
func (e *Engine) AnteBet() int { return e.player.AnteBet }

// PairPlusBet returns the current pair plus bet.
func (e *Engine) PairPlusBet() int { return e.player.PairPlusBet }

// PlayBet returns the current play bet, always equal to the ante once placed.
func (e *Engine) PlayBet() int { return e.player.PlayBet }

// PlayerHand returns a copy of the player's cards.
func (e *Engine) PlayerHand() []Card { return e.player.Cards() }

// DealerHand returns a copy of the dealer's cards.
func (e *Engine) DealerHand() []Card { return e.dealer.Cards() }

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// RoundID identifies the current round. It is uuid.Nil until an ante is placed.
func (e *Engine) RoundID() uuid.UUID { return e.roundID }

// Evaluator returns the active rule variant.
func (e *Engine) Evaluator() Evaluator { return e.evaluator }

// Limits returns the active table limits.
func (e *Engine) Limits() Limits { return e.limits }

// LimitsEnabled reports whether table maximums apply.
func (e *Engine) LimitsEnabled() bool { return e.limitsEnabled }

// MinAnteBet returns the minimum ante.
func (e *Engine) MinAnteBet() int { return e.limits.MinAnteBet }

// MinPairPlusBet returns the minimum pair plus bet.
func (e *Engine) MinPairPlusBet() int { return e.limits.MinPairPlusBet }

// GameEndingBalance returns the balance below which no new round may start.
func (e *Engine) GameEndingBalance() int { return e.limits.GameEndsIfBalanceIsLessThan }

// HasSufficientBalance reports whether the player may start another round.
func (e *Engine) HasSufficientBalance() bool {
	return e.player.Balance >= e.limits.GameEndsIfBalanceIsLessThan
}

// AddBalance credits amount to the player.
func (e *Engine) AddBalance(amount int) error {
	if amount < 0 {
		return fmt.Errorf("add %d: %w", amount, ErrNegativeAmount)
	}
	e.player.Balance += amount
	return nil
}

// DeductBalance debits amount from the player.
func (e *Engine) DeductBalance(amount int) error {
	if amount < 0 {
		return fmt.Errorf("deduct %d: %w", amount, ErrNegativeAmount)
	}
	if amount > e.player.Balance {
		return fmt.Errorf("deduct %d from %d: %w", amount, e.player.Balance, ErrInsufficientBalance)
	}
	e.player.Balance -= amount
	return nil
}

// MaxAnteBet is half the balance, so the play bet can always match the ante,
// capped by the table maximum when limits are enabled.
func (e *Engine) MaxAnteBet() (int, error) {
	return upperBound(e.player.Balance/2, e.limitsEnabled, e.limits.MaxAnteBet, "max_ante_bet")
}

// MaxPairPlusBet is the balance left after reserving the play bet, capped by
// the table maximum when limits are enabled.
func (e *Engine) MaxPairPlusBet() (int, error) {
	return upperBound(e.player.Balance-e.player.AnteBet, e.limitsEnabled, e.limits.MaxPairPlusBet, "max_pair_plus_bet")
}

// CanOfferPairPlus reports whether the minimum pair plus bet is affordable.
func (e *Engine) CanOfferPairPlus() (bool, error) {
	upper, err := e.MaxPairPlusBet()
	if err != nil {
		return false, err
	}
	return e.limits.MinPairPlusBet <= upper, nil
}

// PlaceAnteBet opens a round with an ante in [MinAnteBet, MaxAnteBet].
func (e *Engine) PlaceAnteBet(amount int) error {
	if err := e.expectPhase("place ante bet", PhaseAnteRequired); err != nil {
		return err
	}
	upper, err := e.MaxAnteBet()
	if err != nil {
		return err
	}
	if err := checkBet("ante", amount, e.limits.MinAnteBet, upper); err != nil {
		return err
	}
	if err := e.DeductBalance(amount); err != nil {
		return err
	}
	e.player.AnteBet = amount
	e.roundID = uuid.New()
	e.logger.Debug("ante placed", "round", e.roundID, "amount", amount, "balance", e.player.Balance)
	e.setPhase(PhasePairPlusOffered)
	return nil
}

// PlacePairPlusBet places the optional side bet in [MinPairPlusBet, MaxPairPlusBet].
func (e *Engine) PlacePairPlusBet(amount int) error {
	if err := e.expectPhase("place pair plus bet", PhasePairPlusOffered); err != nil {
		return err
	}
	upper, err := e.MaxPairPlusBet()
	if err != nil {
		return err
	}
	if err := checkBet("pair plus", amount, e.limits.MinPairPlusBet, upper); err != nil {
		return err
	}
	if err := e.DeductBalance(amount); err != nil {
		return err
	}
	e.player.PairPlusBet = amount
	e.logger.Debug("pair plus placed", "round", e.roundID, "amount", amount, "balance", e.player.Balance)
	e.setPhase(PhaseCardsPending)
	return nil
}

// SkipPairPlus declines the side bet.
func (e *Engine) SkipPairPlus() error {
	if err := e.expectPhase("skip pair plus", PhasePairPlusOffered); err != nil {
		return err
	}
	e.setPhase(PhaseCardsPending)
	return nil
}

// PlacePlayBet matches the ante to contest the dealer. The pair plus ceiling
// keeps at least the ante in the balance, so the deduction cannot fail.
func (e *Engine) PlacePlayBet() error {
	if err := e.expectPhase("place play bet", PhaseCardsDealt); err != nil {
		return err
	}
	if e.player.PlayBet != 0 {
		return fmt.Errorf("play bet already placed: %w", ErrWrongPhase)
	}
	if err := e.DeductBalance(e.player.AnteBet); err != nil {
		return err
	}
	e.player.PlayBet = e.player.AnteBet
	e.logger.Debug("play placed", "round", e.roundID, "amount", e.player.PlayBet, "balance", e.player.Balance)
	return nil
}

func (e *Engine) refundAnteBet() {
	e.player.Balance += e.player.AnteBet
}

func (e *Engine) refundPlayBet() {
	e.player.Balance += e.player.PlayBet
}

func (e *Engine) refundPairPlusBet() {
	e.player.Balance += e.player.PairPlusBet
}
