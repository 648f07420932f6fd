package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/three-card-poker/application"
	"github.com/luca-patrignani/three-card-poker/config"
	"github.com/luca-patrignani/three-card-poker/domain/poker"
	"github.com/luca-patrignani/three-card-poker/ledger"
)

func main() {
	configPath := flag.String("config", "", "table configuration file (JSON), the built-in table when empty")
	rules := flag.String("rules", string(poker.VariantStandard), "rules to start with: standard or california")
	verbose := flag.Bool("v", false, "show engine debug logs")
	flag.Parse()

	level := pterm.LogLevelWarn
	if *verbose {
		level = pterm.LogLevelDebug
	}
	// Create a new slog logger backed by the PTerm logger
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level)))

	if err := run(logger, *configPath, poker.Variant(*rules)); err != nil {
		logger.Error("table closed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath string, variant poker.Variant) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	evaluator, tables, err := cfg.RuleSet(variant)
	if err != nil {
		return err
	}
	engine, err := poker.NewEngine(
		cfg.PlayerInitialBalance,
		evaluator,
		tables.AnteBonus,
		tables.PairPlus,
		cfg.IsTableLimitEnabled,
		cfg.Limits,
		poker.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	renderBanner()
	if cfg.IsTableLimitEnabled {
		pterm.Println(limitsPanel(true, cfg.Limits))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	journal := ledger.NewJournal()
	controller := application.NewController(engine, &terminalView{}, cfg, journal, logger)
	if err := controller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err := journal.Verify(); err != nil {
		return fmt.Errorf("session journal corrupted: %w", err)
	}
	return nil
}
