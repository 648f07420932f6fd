// Package config loads the table configuration: starting balance, table
// limits, the payout tables of every rule variant and the pacing of the
// interactive controller.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/luca-patrignani/three-card-poker/domain/poker"
)

//go:embed default.json
var defaultConfig []byte

// ErrInvalid marks every validation problem reported by Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config is the table setup read from the JSON file.
type Config struct {
	PlayerInitialBalance int          `json:"player_initial_balance"`
	IsTableLimitEnabled  bool         `json:"is_table_limit_enabled"`
	Limits               poker.Limits `json:"limits"`
	Rules                Rules        `json:"rules"`
	Controller           Controller   `json:"controller"`
}

// Rules holds the payout tables of each variant.
type Rules struct {
	Standard   PayoutTables `json:"standard"`
	California PayoutTables `json:"california"`
}

// PayoutTables are keyed by hand rank name, e.g. "straight_flush".
type PayoutTables struct {
	AnteBonus poker.PayoutTable `json:"ante_bonus"`
	PairPlus  poker.PayoutTable `json:"pair_plus"`
}

// Controller configures the interactive game loop.
type Controller struct {
	// UserMaxTries is how many invalid bet inputs are accepted before the
	// prompt gives up.
	UserMaxTries          int      `json:"user_max_tries"`
	DrawCardDelay         Duration `json:"draw_card_delay"`
	RevealDealerHandDelay Duration `json:"reveal_dealer_hand_delay"`
	FoldDelay             Duration `json:"fold_delay"`
	TextRollingDelay      Duration `json:"text_rolling_delay"`
}

// Duration is a time.Duration written as a Go duration string ("300ms").
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the embedded configuration.
func Default() Config {
	c, err := Parse(defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("embedded config: %v", err))
	}
	return c
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a configuration. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var c Config
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every problem found, joined.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.PlayerInitialBalance < 0 {
		invalid("player_initial_balance %d is negative", c.PlayerInitialBalance)
	}

	l := c.Limits
	for name, v := range map[string]int{
		"min_ante_bet":                      l.MinAnteBet,
		"max_ante_bet":                      l.MaxAnteBet,
		"min_pair_plus_bet":                 l.MinPairPlusBet,
		"max_pair_plus_bet":                 l.MaxPairPlusBet,
		"game_ends_if_balance_is_less_than": l.GameEndsIfBalanceIsLessThan,
	} {
		if v < 0 {
			invalid("limits.%s %d is negative", name, v)
		}
	}
	if l.MinAnteBet > l.MaxAnteBet {
		invalid("limits.min_ante_bet %d exceeds max_ante_bet %d", l.MinAnteBet, l.MaxAnteBet)
	}
	if l.MinPairPlusBet > l.MaxPairPlusBet {
		invalid("limits.min_pair_plus_bet %d exceeds max_pair_plus_bet %d", l.MinPairPlusBet, l.MaxPairPlusBet)
	}

	for _, v := range poker.Variants {
		evaluator, tables, err := c.RuleSet(v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := tables.AnteBonus.Covers(ranksFrom(evaluator, poker.Straight)); err != nil {
			invalid("rules.%s.ante_bonus: %w", v, err)
		}
		if err := tables.PairPlus.Covers(ranksFrom(evaluator, poker.Pair)); err != nil {
			invalid("rules.%s.pair_plus: %w", v, err)
		}
		for rank, rate := range tables.AnteBonus {
			if rate < 0 {
				invalid("rules.%s.ante_bonus.%s rate %d is negative", v, rank, rate)
			}
		}
		for rank, rate := range tables.PairPlus {
			if rate < 0 {
				invalid("rules.%s.pair_plus.%s rate %d is negative", v, rank, rate)
			}
		}
	}

	ctl := c.Controller
	if ctl.UserMaxTries < 1 {
		invalid("controller.user_max_tries %d must be at least 1", ctl.UserMaxTries)
	}
	for name, d := range map[string]Duration{
		"draw_card_delay":          ctl.DrawCardDelay,
		"reveal_dealer_hand_delay": ctl.RevealDealerHandDelay,
		"fold_delay":               ctl.FoldDelay,
		"text_rolling_delay":       ctl.TextRollingDelay,
	} {
		if d < 0 {
			invalid("controller.%s %s is negative", name, d.Std())
		}
	}

	return errors.Join(errs...)
}

// RuleSet returns the evaluator and payout tables of a variant.
func (c Config) RuleSet(v poker.Variant) (poker.Evaluator, PayoutTables, error) {
	evaluator, err := poker.NewEvaluator(v)
	if err != nil {
		return nil, PayoutTables{}, err
	}
	switch v {
	case poker.VariantCalifornia:
		return evaluator, c.Rules.California, nil
	default:
		return evaluator, c.Rules.Standard, nil
	}
}

// ranksFrom lists the ranks of the evaluator at or above lowest, the ones a
// settlement may look up in a table paying from lowest.
func ranksFrom(e poker.Evaluator, lowest poker.HandRank) []poker.HandRank {
	var out []poker.HandRank
	for _, r := range e.Ranks() {
		if r >= lowest {
			out = append(out, r)
		}
	}
	return out
}
