package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dropoutdash/internal/artifacts"
	"dropoutdash/internal/data"
)

var (
	genOut  string
	genOpts = artifacts.DefaultOptions()
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Train demo models on synthetic participants and write the dashboard CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if l := cfg.OutcomeLabels(); !l.IsZero() {
			genOpts.Labels = l
		}
		tables, err := artifacts.Build(genOpts, logger)
		if err != nil {
			return err
		}
		if err := data.WriteTables(genOut, tables); err != nil {
			return fmt.Errorf("writing tables: %w", err)
		}
		logger.Info("artifacts written", zap.String("dir", genOut), zap.Int("predictions", len(tables.Predictions)))
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genOut, "out", "data", "output directory")
	f.IntVar(&genOpts.N, "n", genOpts.N, "number of synthetic participants")
	f.Int64Var(&genOpts.Seed, "seed", genOpts.Seed, "random seed")
	f.Float64Var(&genOpts.TestFrac, "test-frac", genOpts.TestFrac, "holdout fraction")
	f.IntVar(&genOpts.Trees, "trees", genOpts.Trees, "random forest size")
	f.IntVar(&genOpts.MaxDepth, "max-depth", genOpts.MaxDepth, "random forest tree depth")
	f.IntVar(&genOpts.Rounds, "rounds", genOpts.Rounds, "boosting rounds")
	f.Float64Var(&genOpts.Rate, "lr", genOpts.Rate, "boosting learning rate")
	f.IntVar(&genOpts.MinSample, "min-samples", genOpts.MinSample, "minimum samples per split")
	rootCmd.AddCommand(generateCmd)
}
