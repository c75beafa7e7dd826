package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dropoutdash/internal/charts"
)

var (
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render every dashboard view to image files",
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

		ctrl, err := loadController(cfg.Paths(), cfg.OutcomeLabels(), logger)
		if err != nil {
			return err
		}

		save := func(name string, c charts.Chart) error {
			path := filepath.Join(exportOut, name+"."+exportFormat)
			if err := charts.Save(path, c); err != nil {
				return fmt.Errorf("saving %s: %w", path, err)
			}
			logger.Info("chart saved", zap.String("path", path))
			return nil
		}
		if err := save(charts.GraphPerformance, ctrl.Performance()); err != nil {
			return err
		}
		for _, b := range ctrl.Bindings() {
			for _, o := range b.Options {
				c, err := b.Handler(o.Value)
				if err != nil {
					return err
				}
				if err := save(b.Graph+"-"+slug(o.Value), c); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "charts", "output directory")
	exportCmd.Flags().StringVar(&exportFormat, "format", "png", "image format (png, svg, pdf)")
	rootCmd.AddCommand(exportCmd)
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
