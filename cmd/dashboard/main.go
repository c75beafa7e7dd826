package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dropoutdash/internal/config"
	"dropoutdash/pkg/utils"
)

var (
	cfgFile string
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:           "dashboard",
	Short:         "Clinical trial dropout model dashboard",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "dashboard.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the input CSV files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.Data.Dir = dataDir
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := utils.NewLogger(cfg.Log.File, cfg.Log.Level, cfg.Server.Debug)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}
