package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dropoutdash/internal/dashboard"
	"dropoutdash/internal/data"
	"dropoutdash/internal/server"
)

var (
	serveHost  string
	servePort  int
	serveDebug bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the CSV artifacts and serve the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("host") {
			cfg.Server.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		if cmd.Flags().Changed("debug") {
			cfg.Server.Debug = serveDebug
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctrl, err := loadController(cfg.Paths(), cfg.OutcomeLabels(), logger)
		if err != nil {
			return err
		}
		srv, err := server.New(ctrl, logger, cfg.Server.Debug)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx, cfg.Addr())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "0.0.0.0", "listen host")
	serveCmd.Flags().IntVar(&servePort, "port", 8050, "listen port")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "debug mode (gin debug, debug logging)")
	rootCmd.AddCommand(serveCmd)
}

// loadController reads all tables before anything is served.
func loadController(paths data.Paths, labels data.Labels, logger *zap.Logger) (*dashboard.Controller, error) {
	tables, err := data.LoadTables(paths, labels)
	if err != nil {
		logger.Error("failed to load dashboard data", zap.Error(err))
		return nil, err
	}
	logger.Info("tables loaded",
		zap.Int("rf_features", len(tables.RFImportance)),
		zap.Int("xgb_features", len(tables.XGBImportance)),
		zap.Int("models", len(tables.Performance)),
		zap.Int("predictions", len(tables.Predictions)),
		zap.String("negative_label", tables.Labels.Negative),
		zap.String("positive_label", tables.Labels.Positive),
	)
	ctrl, err := dashboard.NewController(tables)
	if err != nil {
		logger.Error("failed to derive confusion matrices", zap.Error(err))
		return nil, err
	}
	return ctrl, nil
}
