// Package sheets persists the ledger document and reads the payment
// document through the Google Sheets API.
package sheets

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/api/sheets/v4"

	"github.com/sjoh/clubledger/internal/adapter/googleclient"
	"github.com/sjoh/clubledger/internal/domain"
)

// GridStore reads and writes one year sheet of the ledger document. The
// tab is named "{year}년"; writes reshape the sheet with structural
// requests before filling values, so section sizes always match the data.
type GridStore struct {
	svc     *sheets.Service
	retrier *googleclient.Retrier
	year    int
	logger  zerolog.Logger
}

// NewGridStore creates a store scoped to the given calendar year.
func NewGridStore(svc *sheets.Service, retrier *googleclient.Retrier, year int, logger zerolog.Logger) *GridStore {
	return &GridStore{
		svc:     svc,
		retrier: retrier,
		year:    year,
		logger:  logger.With().Str("component", "sheets_grid_store").Logger(),
	}
}

func (s *GridStore) sheetTitle() string {
	return fmt.Sprintf("%d년", s.year)
}

// ReadGrid fetches the year sheet and maps it onto a LedgerGrid. Values
// are read with the FORMULA render option so manual HYPERLINK cells
// round-trip as formulas rather than display text.
func (s *GridStore) ReadGrid(ctx context.Context, documentRef string) (*domain.LedgerGrid, error) {
	id, err := SpreadsheetID(documentRef)
	if err != nil {
		return nil, err
	}

	var resp *sheets.ValueRange
	err = s.retrier.Retry(ctx, func() error {
		var apiErr error
		resp, apiErr = s.svc.Spreadsheets.Values.
			Get(id, fmt.Sprintf("'%s'!C1:I", s.sheetTitle())).
			ValueRenderOption("FORMULA").
			DateTimeRenderOption("FORMATTED_STRING").
			Context(ctx).
			Do()
		return apiErr
	})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", s.sheetTitle(), err)
	}

	grid, err := parseGrid(resp.Values, s.year)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().
		Int("sections", len(grid.Sections)).
		Int("start_row", grid.StartRow).
		Msg("ledger grid read")
	return grid, nil
}

// WriteGrid pushes the grid back: one structural batch to resize the
// sections, one RAW batch for the auto columns, one USER_ENTERED batch
// for manual columns and the subtotal and total formulas.
func (s *GridStore) WriteGrid(ctx context.Context, documentRef string, grid *domain.LedgerGrid) error {
	id, err := SpreadsheetID(documentRef)
	if err != nil {
		return err
	}
	gid, err := s.sheetID(ctx, id)
	if err != nil {
		return err
	}

	if reqs := structuralRequests(grid, gid); len(reqs) > 0 {
		err = s.retrier.Retry(ctx, func() error {
			_, apiErr := s.svc.Spreadsheets.
				BatchUpdate(id, &sheets.BatchUpdateSpreadsheetRequest{Requests: reqs}).
				Context(ctx).
				Do()
			return apiErr
		})
		if err != nil {
			return fmt.Errorf("reshape sheet %s: %w", s.sheetTitle(), err)
		}
	}

	title := s.sheetTitle()
	err = s.retrier.Retry(ctx, func() error {
		_, apiErr := s.svc.Spreadsheets.Values.
			BatchUpdate(id, &sheets.BatchUpdateValuesRequest{
				ValueInputOption: "RAW",
				Data:             rawValueRanges(grid, title),
			}).
			Context(ctx).
			Do()
		return apiErr
	})
	if err != nil {
		return fmt.Errorf("write values to sheet %s: %w", title, err)
	}

	err = s.retrier.Retry(ctx, func() error {
		_, apiErr := s.svc.Spreadsheets.Values.
			BatchUpdate(id, &sheets.BatchUpdateValuesRequest{
				ValueInputOption: "USER_ENTERED",
				Data:             formulaValueRanges(grid, title),
			}).
			Context(ctx).
			Do()
		return apiErr
	})
	if err != nil {
		return fmt.Errorf("write formulas to sheet %s: %w", title, err)
	}

	s.logger.Info().
		Int("sections", len(grid.Sections)).
		Int("grand_total_row", grid.GrandTotalRow).
		Msg("ledger grid written")
	return nil
}

func (s *GridStore) sheetID(ctx context.Context, spreadsheetID string) (int64, error) {
	var resp *sheets.Spreadsheet
	err := s.retrier.Retry(ctx, func() error {
		var apiErr error
		resp, apiErr = s.svc.Spreadsheets.
			Get(spreadsheetID).
			Fields("sheets.properties").
			Context(ctx).
			Do()
		return apiErr
	})
	if err != nil {
		return 0, fmt.Errorf("list sheet tabs: %w", err)
	}
	for _, sh := range resp.Sheets {
		if sh.Properties != nil && sh.Properties.Title == s.sheetTitle() {
			return sh.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("sheet %q not found in document", s.sheetTitle())
}
