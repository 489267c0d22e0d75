package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjoh/clubledger/internal/adapter/drive"
	"github.com/sjoh/clubledger/internal/adapter/googleclient"
	pgrepo "github.com/sjoh/clubledger/internal/adapter/repository/postgres"
	redisrepo "github.com/sjoh/clubledger/internal/adapter/repository/redis"
	"github.com/sjoh/clubledger/internal/adapter/sheets"
	"github.com/sjoh/clubledger/internal/adapter/xlsx"
	"github.com/sjoh/clubledger/internal/domain"
	"github.com/sjoh/clubledger/internal/infrastructure/googleauth"
	redisinfra "github.com/sjoh/clubledger/internal/infrastructure/redis"
	"github.com/sjoh/clubledger/internal/usecase"
)

func newFillCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "fill [transaction-file]",
		Short: "Fill the ledger document from a bank export",
		Long: "Parses a bank transaction export and writes its rows into the month\n" +
			"section of the ledger document. Without an argument the newest export\n" +
			"is downloaded from the transaction Drive folder.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(cmd.Context(), args, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "rewrite the section even if it already holds data")
	return cmd
}

func runFill(ctx context.Context, args []string, force bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if a.cfg.LedgerSheetURL == "" {
		return fmt.Errorf("LEDGER_SHEET_URL is not set")
	}

	svcs, err := googleauth.New(ctx, a.cfg.GoogleCredentialFile)
	if err != nil {
		return err
	}
	retrier := googleclient.NewRetrier(a.log)

	var (
		month   domain.YearMonth
		records []domain.TransactionRecord
	)
	if len(args) == 1 {
		month, err = xlsx.ExportYearMonth(args[0])
		if err != nil {
			return err
		}
		records, err = xlsx.ParseFile(args[0])
		if err != nil {
			return err
		}
	} else {
		if a.cfg.TransactionDriveURL == "" {
			return fmt.Errorf("TRANSACTION_DRIVE_URL is not set and no transaction file was given")
		}
		source := drive.NewTransactionSource(svcs.Drive, retrier, a.cfg.TransactionDriveURL, a.log)
		month, records, err = source.FetchLatest(ctx)
		if err != nil {
			return err
		}
	}
	a.log.Info().
		Stringer("month", month).
		Int("transactions", len(records)).
		Msg("bank export parsed")

	var matcher usecase.ReceiptMatcher
	if a.cfg.ReceiptDriveURL != "" {
		var cache usecase.Cache
		if a.cfg.RedisURL != "" {
			client, err := redisinfra.NewClient(ctx, a.cfg.RedisURL)
			if err != nil {
				a.log.Warn().Err(err).Msg("redis unavailable, receipt amounts will not be cached")
			} else {
				defer client.Close()
				cache = redisrepo.NewCache(client)
			}
		}
		matcher = drive.NewReceiptMatcher(svcs.Drive, retrier, a.cfg.ReceiptDriveURL, cache, a.log)
	}

	store := sheets.NewGridStore(svcs.Sheets, retrier, month.Year, a.log)
	uc := usecase.NewReconcileUseCase(store, matcher, pgrepo.NewULIDGenerator(), a.log)

	report, err := uc.Reconcile(ctx, usecase.ReconcileInput{
		DocumentRef: a.cfg.LedgerSheetURL,
		Month:       month,
		Records:     records,
		Force:       force,
	})
	if err != nil {
		if domain.IsDataIntegrity(err) {
			a.metrics.IntegrityFailures.Inc()
		}
		a.pushMetrics("clubledger_fill")
		return err
	}

	a.metrics.RowsWritten.Add(float64(report.RowsWritten))
	a.metrics.ReceiptsLinked.Add(float64(report.ReceiptsLinked))
	a.metrics.ManualDropped.Add(float64(len(report.DroppedManual)))
	if report.Skipped {
		a.metrics.SectionsSkipped.Inc()
	}
	a.pushMetrics("clubledger_fill")

	// A skipped month is a successful no-op, not a failure.
	if report.Skipped {
		a.log.Info().Stringer("month", report.Month).Msg("nothing to do")
		return nil
	}
	a.log.Info().
		Str("run_id", report.RunID).
		Stringer("decision", report.Decision).
		Int("rows", report.RowsWritten).
		Msg("ledger fill complete")
	return nil
}
