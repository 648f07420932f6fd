// Package application drives a table session: it connects the poker engine
// to a View, applies the retry policy on bets and records every settled round
// in the session journal.
package application

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sethvargo/go-retry"

	"github.com/luca-patrignani/three-card-poker/config"
	"github.com/luca-patrignani/three-card-poker/domain/poker"
	"github.com/luca-patrignani/three-card-poker/ledger"
)

//go:embed rules.txt
var rulesText string

// Main menu options.
const (
	OptionPlay         = "Play a round"
	OptionReadRules    = "Read the rules"
	OptionSwitchRules  = "Switch rules"
	OptionToggleLimits = "Toggle table limits"
	OptionExit         = "Leave the table"
)

// Round options.
const (
	OptionPlacePairPlus = "Place a Pair Plus bet"
	OptionNoPairPlus    = "No Pair Plus"
	OptionPlayBet       = "Play"
	OptionFold          = "Fold"
)

// MainMenu lists the options offered between rounds.
var MainMenu = []string{OptionPlay, OptionReadRules, OptionSwitchRules, OptionToggleLimits, OptionExit}

var (
	errSessionOver = errors.New("session over")
	errInvalidBet  = errors.New("invalid bet")
)

// Controller runs the interactive session loop.
type Controller struct {
	engine  *poker.Engine
	view    View
	cfg     config.Config
	journal *ledger.Journal
	logger  *slog.Logger
}

// NewController wires an engine to a view. The journal receives every
// settled round.
func NewController(engine *poker.Engine, view View, cfg config.Config, journal *ledger.Journal, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		engine:  engine,
		view:    view,
		cfg:     cfg,
		journal: journal,
		logger:  logger,
	}
}

// Run plays until the player leaves, the balance runs out or ctx is done.
// A closed input ends the session like leaving the table.
func (c *Controller) Run(ctx context.Context) error {
	c.view.Show(Message{Event: EventWelcome, Variant: c.engine.Evaluator().Variant()})
	defer c.showSummary()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := c.view.Select(PromptMainMenu, MainMenu)
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case OptionPlay:
			err = c.PlayRound(ctx)
		case OptionReadRules:
			err = c.ReadRules(ctx)
		case OptionSwitchRules:
			err = c.SwitchRules()
		case OptionToggleLimits:
			c.ToggleLimits()
		case OptionExit:
			return nil
		default:
			c.logger.Warn("unknown menu option", "choice", choice)
		}

		if errors.Is(err, errSessionOver) {
			return nil
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// PlayRound plays one round from the ante to the reset.
func (c *Controller) PlayRound(ctx context.Context) error {
	if !c.engine.HasSufficientBalance() {
		c.view.Show(Message{Event: EventInsufficientBalance, Amount: c.engine.GameEndingBalance()})
		return errSessionOver
	}
	defer c.engine.ResetGameState()

	c.showBalance()
	placed, err := c.anteRound(ctx)
	if err != nil || !placed {
		return err
	}
	if err := c.pairPlusRound(ctx); err != nil {
		return err
	}
	if err := c.deal(ctx); err != nil {
		return err
	}

	choice, err := c.view.Select(PromptPlayOrFold, []string{OptionPlayBet, OptionFold})
	if err != nil {
		return err
	}
	var s poker.Settlement
	if choice == OptionFold {
		s, err = c.fold(ctx)
	} else {
		s, err = c.compareAndSettle(ctx)
	}
	if err != nil {
		return err
	}

	variant := c.engine.Evaluator().Variant()
	if _, err := c.journal.Append(variant, s); err != nil {
		return fmt.Errorf("record round: %w", err)
	}
	c.logger.Info("round recorded",
		"round", s.RoundID,
		"variant", variant,
		"outcome", s.Outcome,
		"net", s.Net(),
		"balance", s.Balance,
	)
	return nil
}

func (c *Controller) anteRound(ctx context.Context) (bool, error) {
	upper, err := c.engine.MaxAnteBet()
	if err != nil {
		return false, err
	}
	amount, ok, err := c.askBet(ctx, PromptAnte, c.engine.MinAnteBet(), upper)
	if err != nil {
		return false, err
	}
	if !ok {
		c.view.Show(Message{Event: EventTooManyAnteTries})
		return false, nil
	}
	if err := c.engine.PlaceAnteBet(amount); err != nil {
		return false, err
	}
	c.view.Show(Message{Event: EventAntePlaced, Amount: amount})
	c.showBalance()
	return true, nil
}

func (c *Controller) pairPlusRound(ctx context.Context) error {
	offer, err := c.engine.CanOfferPairPlus()
	if err != nil {
		return err
	}
	if !offer {
		c.view.Show(Message{Event: EventPairPlusUnavailable, Min: c.engine.MinPairPlusBet()})
		return c.engine.SkipPairPlus()
	}

	choice, err := c.view.Select(PromptPairOffer, []string{OptionPlacePairPlus, OptionNoPairPlus})
	if err != nil {
		return err
	}
	if choice != OptionPlacePairPlus {
		c.view.Show(Message{Event: EventNoPairPlus})
		return c.engine.SkipPairPlus()
	}

	upper, err := c.engine.MaxPairPlusBet()
	if err != nil {
		return err
	}
	amount, ok, err := c.askBet(ctx, PromptPairPlus, c.engine.MinPairPlusBet(), upper)
	if err != nil {
		return err
	}
	if !ok {
		c.view.Show(Message{Event: EventTooManyPairPlus})
		return c.engine.SkipPairPlus()
	}
	if err := c.engine.PlacePairPlusBet(amount); err != nil {
		return err
	}
	c.view.Show(Message{Event: EventPairPlusPlaced, Amount: amount})
	c.showBalance()
	return nil
}

// askBet reads a bet in [lower, upper]. It reports false once the player has
// failed UserMaxTries times.
func (c *Controller) askBet(ctx context.Context, p Prompt, lower, upper int) (int, bool, error) {
	maxTries := max(c.cfg.Controller.UserMaxTries, 1)
	backoff := retry.WithMaxRetries(uint64(maxTries-1), retry.BackoffFunc(func() (time.Duration, bool) {
		return 0, false
	}))

	var amount, tries int
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		tries++
		raw, err := c.view.Input(p, lower, upper)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			if tries < maxTries {
				c.view.Show(Message{Event: EventInvalidInteger})
			}
			return retry.RetryableError(errInvalidBet)
		}
		if n < lower || n > upper {
			if tries < maxTries {
				c.view.Show(Message{Event: EventBetOutOfRange, Min: lower, Max: upper})
			}
			return retry.RetryableError(errInvalidBet)
		}
		amount = n
		return nil
	})
	if errors.Is(err, errInvalidBet) {
		c.logger.Info("too many invalid bets", "prompt", p, "tries", tries)
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return amount, true, nil
}

func (c *Controller) deal(ctx context.Context) error {
	if err := c.engine.ShuffleDeck(); err != nil {
		return err
	}
	delay := c.cfg.Controller.DrawCardDelay.Std()
	for range poker.HandSize {
		if err := c.view.Pause(PromptDrawCard); err != nil {
			return err
		}
		if err := sleep(ctx, delay); err != nil {
			return err
		}
		card, err := c.engine.DrawCardForPlayer()
		if err != nil {
			return err
		}
		c.view.Show(Message{Event: EventPlayerCard, Card: card})

		if err := sleep(ctx, delay); err != nil {
			return err
		}
		// the dealer's cards stay face down until the showdown
		if _, err := c.engine.DrawCardForDealer(); err != nil {
			return err
		}
		c.view.Show(Message{Event: EventDealerCard})
	}
	c.engine.SortHands()
	c.view.Show(Message{Event: EventHandDealt, Hand: poker.FormatHand(c.engine.PlayerHand())})
	return nil
}

func (c *Controller) compareAndSettle(ctx context.Context) (poker.Settlement, error) {
	if err := c.engine.PlacePlayBet(); err != nil {
		return poker.Settlement{}, err
	}
	c.view.Show(Message{Event: EventPlayBetPlaced, Amount: c.engine.PlayBet()})
	c.showBalance()

	ev, err := c.engine.Evaluate()
	if err != nil {
		return poker.Settlement{}, err
	}
	c.view.Show(Message{Event: EventPlayerHand, Hand: poker.FormatHand(c.engine.PlayerHand()), Rank: ev.PlayerRank})
	if err := sleep(ctx, c.cfg.Controller.RevealDealerHandDelay.Std()); err != nil {
		return poker.Settlement{}, err
	}
	c.view.Show(Message{Event: EventDealerHand, Hand: poker.FormatHand(c.engine.DealerHand()), Rank: ev.DealerRank})

	s, err := c.engine.Settle()
	if err != nil {
		return poker.Settlement{}, err
	}

	if s.AnteBonusPayout > 0 {
		c.view.Show(Message{Event: EventAnteBonus, Amount: s.AnteBonusPayout, Rank: s.PlayerRank})
	}
	if s.HadPairPlusBet {
		if s.PairPlusPayout > 0 {
			c.view.Show(Message{Event: EventPairPlusWon, Amount: s.PairPlusPayout, Rank: s.PlayerRank})
		} else {
			c.view.Show(Message{Event: EventPairPlusLost})
		}
	}
	switch s.Outcome {
	case poker.Lose:
		c.view.Show(Message{Event: EventLose})
	case poker.Push:
		c.view.Show(Message{Event: EventPush})
	case poker.Win:
		if !s.DealerQualified {
			c.view.Show(Message{Event: EventDealerNotQualified})
		}
		c.view.Show(Message{Event: EventWin, Amount: s.Winnings})
	}
	c.showBalance()
	return s, nil
}

func (c *Controller) fold(ctx context.Context) (poker.Settlement, error) {
	if err := sleep(ctx, c.cfg.Controller.FoldDelay.Std()); err != nil {
		return poker.Settlement{}, err
	}
	s, err := c.engine.Fold()
	if err != nil {
		return poker.Settlement{}, err
	}
	c.view.Show(Message{Event: EventFold, Amount: s.Wagered})
	c.showBalance()
	return s, nil
}

// SwitchRules asks for a variant and reloads the engine with its tables.
func (c *Controller) SwitchRules() error {
	options := lo.Map(poker.Variants, func(v poker.Variant, _ int) string {
		return string(v)
	})
	choice, err := c.view.Select(PromptVariant, options)
	if err != nil {
		return err
	}
	evaluator, tables, err := c.cfg.RuleSet(poker.Variant(choice))
	if err != nil {
		return err
	}
	if err := c.engine.ReloadGameRules(evaluator, tables.AnteBonus, tables.PairPlus); err != nil {
		return err
	}
	c.logger.Info("game rules switched", "variant", evaluator.Variant())
	c.view.Show(Message{Event: EventRulesChanged, Variant: evaluator.Variant()})
	return nil
}

// ToggleLimits switches the table maximums on or off.
func (c *Controller) ToggleLimits() {
	enabled := !c.engine.LimitsEnabled()
	c.engine.ReloadTableLimit(enabled, c.cfg.Limits)
	c.logger.Info("table limits toggled", "enabled", enabled)
	c.view.Show(Message{Event: EventLimitsChanged, Enabled: enabled, Limits: c.cfg.Limits})
}

// ReadRules rolls the rules text line by line.
func (c *Controller) ReadRules(ctx context.Context) error {
	scanner := bufio.NewScanner(strings.NewReader(rulesText))
	for scanner.Scan() {
		c.view.Text(scanner.Text())
		if err := sleep(ctx, c.cfg.Controller.TextRollingDelay.Std()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (c *Controller) showBalance() {
	c.view.Show(Message{Event: EventBalance, Amount: c.engine.Balance()})
}

func (c *Controller) showSummary() {
	c.view.Show(Message{Event: EventSessionSummary, Amount: c.engine.Balance(), Summary: c.journal.Summary()})
	c.view.Show(Message{Event: EventExit})
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
