// clubledger is the treasurer's batch tool: it fills the ledger document
// from bank exports and checks member dues against the payment document.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sjoh/clubledger/internal/infrastructure/config"
	"github.com/sjoh/clubledger/internal/infrastructure/logger"
	"github.com/sjoh/clubledger/internal/infrastructure/metrics"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "clubledger",
		Short:         "Club treasury automation",
		Long:          "Fills the ledger document from bank exports and generates arrears notices from the payment document.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newFillCmd(), newDuesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app bundles the pieces every command starts from.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	metrics *metrics.Metrics
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return &app{cfg: cfg, log: log, metrics: metrics.New()}, nil
}

// pushMetrics ships the run's metrics when a Pushgateway is configured.
// A failed push is worth a warning, never a failed run.
func (a *app) pushMetrics(job string) {
	if a.cfg.PushgatewayURL == "" {
		return
	}
	if err := a.metrics.Push(a.cfg.PushgatewayURL, job); err != nil {
		a.log.Warn().Err(err).Msg("metrics push failed")
	}
}
