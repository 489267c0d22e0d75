package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sjoh/clubledger/internal/domain"
)

// ReconcileUseCase merges one bank-transaction batch into the ledger
// document: locate the month section, consult the idempotency guard,
// write rows, recalculate every formula span, persist. The stored grid
// changes only when the whole run succeeds; any validation failure leaves
// it byte-identical to its pre-call state.
type ReconcileUseCase struct {
	grids   GridStore
	matcher ReceiptMatcher
	idGen   IDGenerator
	logger  zerolog.Logger
}

// NewReconcileUseCase creates a new ReconcileUseCase. matcher may be nil
// when no receipt folder is configured.
func NewReconcileUseCase(grids GridStore, matcher ReceiptMatcher, idGen IDGenerator, logger zerolog.Logger) *ReconcileUseCase {
	return &ReconcileUseCase{
		grids:   grids,
		matcher: matcher,
		idGen:   idGen,
		logger:  logger,
	}
}

// ReconcileInput is one reconciliation run.
type ReconcileInput struct {
	DocumentRef string
	Month       domain.YearMonth
	Records     []domain.TransactionRecord
	Force       bool
}

// ReconcileReport enumerates what the run did, even when it skipped.
type ReconcileReport struct {
	RunID          string
	Month          domain.YearMonth
	Decision       domain.Decision
	RowsWritten    int
	Skipped        bool
	ReceiptsLinked int
	DroppedManual  []domain.DroppedManual
}

// Reconcile runs one batch against one ledger document.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, in ReconcileInput) (*ReconcileReport, error) {
	report := &ReconcileReport{RunID: uc.idGen.Generate(), Month: in.Month}
	log := uc.logger.With().Str("run_id", report.RunID).Str("month", in.Month.String()).Logger()

	grid, err := uc.grids.ReadGrid(ctx, in.DocumentRef)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}

	// All mutation happens on a clone; the document is only rewritten
	// after every validation has passed.
	work := grid.Clone()

	section, err := work.Locate(in.Month)
	if err != nil {
		return nil, err
	}

	report.Decision = section.CheckAndMark(in.Force)
	if report.Decision == domain.SkipAlreadyFilled {
		report.Skipped = true
		log.Info().Msg("section already filled, skipping (use force to overwrite)")
		return report, nil
	}
	if report.Decision == domain.ProceedOverwrite {
		log.Info().Msg("overwriting existing section rows")
	}

	if err := domain.ValidateBatch(in.Records); err != nil {
		return nil, err
	}

	written, dropped := section.WriteRows(in.Records)
	report.RowsWritten = written
	report.DroppedManual = dropped
	for _, d := range dropped {
		log.Warn().
			Str("field", d.Field).
			Str("value", d.Value).
			Time("row_date", d.Date).
			Msg("manual value dropped: no matching row after rewrite")
	}

	if uc.matcher != nil {
		linked, err := uc.linkReceipts(ctx, section, in.Records)
		if err != nil {
			// Receipt matching is best-effort; the ledger fill must not
			// fail because a proof document was unreadable.
			log.Warn().Err(err).Msg("receipt matching failed, descriptions left for manual entry")
		}
		report.ReceiptsLinked = linked
	}

	work.Recalculate()

	if err := uc.grids.WriteGrid(ctx, in.DocumentRef, work); err != nil {
		return nil, fmt.Errorf("write grid: %w", err)
	}

	log.Info().
		Int("rows", report.RowsWritten).
		Int("receipts", report.ReceiptsLinked).
		Int("dropped_manual", len(report.DroppedManual)).
		Msg("section reconciled")

	return report, nil
}

// linkReceipts pre-populates the description manual field for withdrawals
// with a matched proof document. Cells a human already filled are never
// touched.
func (uc *ReconcileUseCase) linkReceipts(ctx context.Context, section *domain.MonthSection, records []domain.TransactionRecord) (int, error) {
	matches, err := uc.matcher.MatchReceipts(ctx, records)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, nil
	}

	linked := 0
	for i := range section.Rows {
		row := &section.Rows[i]
		if row.Description != "" || !row.Amount.IsNegative() {
			continue
		}
		key := domain.ReceiptKey{
			Day:    row.Date.Format("2006.01.02"),
			Amount: row.Amount.Abs().Truncate(0).IntPart(),
		}
		if link, ok := matches[key]; ok {
			row.Description = link.Formula()
			linked++
		}
	}
	return linked, nil
}
