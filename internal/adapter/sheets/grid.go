package sheets

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/api/sheets/v4"

	"github.com/sjoh/clubledger/internal/domain"
)

// Ledger document columns, 1-based. Column C carries the section markers
// and is merged over each month's data rows; D through I hold the rows.
const (
	colMonth   = 3 // C: month marker / 소계 / 합계
	colDate    = 4 // D
	colDesc    = 5 // E, manual
	colName    = 6 // F
	colNote    = 7 // G, manual
	colAmount  = 8 // H
	colBalance = 9 // I
)

const (
	markerSubtotal   = "소계"
	markerGrandTotal = "합계"
)

var (
	monthMarkerRe = regexp.MustCompile(`^(\d{1,2})월$`)
	sheetIDRe     = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)
	bareIDRe      = regexp.MustCompile(`^[a-zA-Z0-9_-]{20,}$`)
)

// SpreadsheetID extracts the document ID from a Google Sheets URL. A bare
// ID is accepted as-is.
func SpreadsheetID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if m := sheetIDRe.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if bareIDRe.MatchString(ref) {
		return ref, nil
	}
	return "", fmt.Errorf("cannot parse spreadsheet id from %q", ref)
}

func columnLetter(col int) string {
	return string(rune('A' + col - 1))
}

// cellString renders one API cell value as text. The Values API hands
// back strings, numbers and bools depending on the render option.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(x)
	}
}

func rowCell(row []any, col int) string {
	idx := col - colMonth
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(cellString(row[idx]))
}

// rowDateLayouts cover dates stored as text plus the formatted serials
// the API returns under a Korean spreadsheet locale.
var rowDateLayouts = []string{
	"2006.01.02 15:04:05",
	"2006.01.02",
	"2006. 1. 2 15:04:05",
	"2006. 1. 2",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseRowDate(s string) (time.Time, error) {
	for _, layout := range rowDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized ledger date %q", s)
}

func parseRowNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// parseGrid maps the C:I value range of one year sheet onto a LedgerGrid.
// Rows before the first month marker are the document header; a 소계 row
// closes each section; the 합계 row ends the grid.
func parseGrid(values [][]any, year int) (*domain.LedgerGrid, error) {
	grid := &domain.LedgerGrid{}
	var open *domain.MonthSection

	for i, row := range values {
		rowNum := i + 1
		marker := rowCell(row, colMonth)

		if m := monthMarkerRe.FindStringSubmatch(marker); m != nil {
			if open != nil {
				return nil, fmt.Errorf("%w: section %s has no %s row",
					domain.ErrSectionCorrupt, open.Month, markerSubtotal)
			}
			month, _ := strconv.Atoi(m[1])
			if month < 1 || month > 12 {
				return nil, fmt.Errorf("%w: month marker %q at row %d",
					domain.ErrSectionCorrupt, marker, rowNum)
			}
			open = &domain.MonthSection{
				Month:    domain.YearMonth{Year: year, Month: time.Month(month)},
				ReadSpan: domain.RowSpan{Start: rowNum},
			}
			grid.Sections = append(grid.Sections, open)
		}

		switch {
		case open != nil && marker == markerSubtotal:
			open.ReadSpan.End = rowNum - 1
			open.SubtotalRow = rowNum
			open.DataSpan = open.ReadSpan
			grid.SubtotalRows = append(grid.SubtotalRows, rowNum)
			open = nil

		case open != nil:
			lr, err := parseLedgerRow(row)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", domain.ErrSectionCorrupt, rowNum, err)
			}
			open.Rows = append(open.Rows, lr)

		case marker == markerGrandTotal:
			grid.GrandTotalRow = rowNum
		}
	}

	if open != nil {
		return nil, fmt.Errorf("%w: section %s has no %s row",
			domain.ErrSectionCorrupt, open.Month, markerSubtotal)
	}
	if len(grid.Sections) == 0 {
		return nil, fmt.Errorf("%w: no month sections found", domain.ErrSectionCorrupt)
	}
	grid.StartRow = grid.Sections[0].ReadSpan.Start
	return grid, nil
}

func parseLedgerRow(row []any) (domain.LedgerRow, error) {
	lr := domain.LedgerRow{
		Description:  rowCell(row, colDesc),
		Counterparty: rowCell(row, colName),
		Note:         rowCell(row, colNote),
	}
	if ds := rowCell(row, colDate); ds != "" {
		d, err := parseRowDate(ds)
		if err != nil {
			return domain.LedgerRow{}, err
		}
		lr.Date = d
	}
	if amt, ok := parseRowNumber(rowCell(row, colAmount)); ok {
		lr.Amount = amt
	}
	if bal, ok := parseRowNumber(rowCell(row, colBalance)); ok {
		lr.Balance = bal
		lr.HasBalance = true
	}
	return lr, nil
}

func formatRowDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006.01.02")
	}
	return t.Format("2006.01.02 15:04:05")
}

// subtotalFormulaRow renders a section's 소계 row: deposit and withdrawal
// SUMIFs over the data span and their difference.
func subtotalFormulaRow(span domain.RowSpan, subtotalRow int) []any {
	h := columnLetter(colAmount)
	e := columnLetter(colDesc)
	g := columnLetter(colNote)
	return []any{
		markerSubtotal,
		"입금",
		fmt.Sprintf(`=SUMIF(%s%d:%s%d,">0")`, h, span.Start, h, span.End),
		"출금",
		fmt.Sprintf(`=SUMIF(%s%d:%s%d,"<0")*-1`, h, span.Start, h, span.End),
		"합계",
		fmt.Sprintf("=%s%d-%s%d", e, subtotalRow, g, subtotalRow),
	}
}

// grandTotalFormulaRow renders the 합계 row by summing every 소계 row.
func grandTotalFormulaRow(totalRow int, subtotalRows []int) []any {
	e := columnLetter(colDesc)
	g := columnLetter(colNote)
	sumE := make([]string, 0, len(subtotalRows))
	sumG := make([]string, 0, len(subtotalRows))
	for _, r := range subtotalRows {
		sumE = append(sumE, fmt.Sprintf("%s%d", e, r))
		sumG = append(sumG, fmt.Sprintf("%s%d", g, r))
	}
	return []any{
		markerGrandTotal,
		"입금",
		fmt.Sprintf("=SUM(%s)", strings.Join(sumE, ",")),
		"출금",
		fmt.Sprintf("=SUM(%s)", strings.Join(sumG, ",")),
		"합계",
		fmt.Sprintf("=%s%d-%s%d", e, totalRow, g, totalRow),
	}
}

var (
	borderSolid       = &sheets.Border{Style: "SOLID"}
	borderSolidMedium = &sheets.Border{Style: "SOLID_MEDIUM"}
)

// structuralRequests resizes each section to its new row count and
// restores the C-column merges, borders and description formatting.
// Requests are emitted top to bottom; once a section's requests have
// applied, every later section sits exactly at its recalculated span, so
// new-layout coordinates double as current sheet positions.
func structuralRequests(grid *domain.LedgerGrid, gid int64) []*sheets.Request {
	var reqs []*sheets.Request
	for _, sec := range grid.Sections {
		start := sec.DataSpan.Start
		newLen := len(sec.Rows)
		oldLen := sec.ReadSpan.Len()

		if oldLen == 0 {
			// Section absent from the document: insert its data rows
			// plus a fresh 소계 row.
			reqs = append(reqs, &sheets.Request{
				InsertDimension: &sheets.InsertDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:    gid,
						Dimension:  "ROWS",
						StartIndex: int64(start - 1),
						EndIndex:   int64(start - 1 + newLen + 1),
					},
					InheritFromBefore: start > 1,
				},
			})
		} else {
			reqs = append(reqs, &sheets.Request{
				UnmergeCells: &sheets.UnmergeCellsRequest{
					Range: &sheets.GridRange{
						SheetId:          gid,
						StartRowIndex:    int64(start - 1),
						EndRowIndex:      int64(start - 1 + oldLen),
						StartColumnIndex: colMonth - 1,
						EndColumnIndex:   colMonth,
					},
				},
			})
			switch delta := newLen - oldLen; {
			case delta > 0:
				// Insert just above the 소계 row so the new rows inherit
				// the data-row formatting.
				reqs = append(reqs, &sheets.Request{
					InsertDimension: &sheets.InsertDimensionRequest{
						Range: &sheets.DimensionRange{
							SheetId:    gid,
							Dimension:  "ROWS",
							StartIndex: int64(start - 1 + oldLen),
							EndIndex:   int64(start - 1 + oldLen + delta),
						},
						InheritFromBefore: true,
					},
				})
			case delta < 0:
				reqs = append(reqs, &sheets.Request{
					DeleteDimension: &sheets.DeleteDimensionRequest{
						Range: &sheets.DimensionRange{
							SheetId:    gid,
							Dimension:  "ROWS",
							StartIndex: int64(start - 1 + newLen),
							EndIndex:   int64(start - 1 + oldLen),
						},
					},
				})
			}
		}

		dataRange := sheets.GridRange{
			SheetId:       gid,
			StartRowIndex: int64(start - 1),
			EndRowIndex:   int64(start - 1 + newLen),
		}

		borderRange := dataRange
		borderRange.StartColumnIndex = colDate - 1
		borderRange.EndColumnIndex = colBalance
		reqs = append(reqs, &sheets.Request{
			UpdateBorders: &sheets.UpdateBordersRequest{
				Range:           &borderRange,
				Top:             borderSolidMedium,
				Bottom:          borderSolid,
				Left:            borderSolid,
				Right:           borderSolid,
				InnerHorizontal: borderSolid,
				InnerVertical:   borderSolid,
			},
		})
		balanceRange := dataRange
		balanceRange.StartColumnIndex = colBalance - 1
		balanceRange.EndColumnIndex = colBalance
		reqs = append(reqs, &sheets.Request{
			UpdateBorders: &sheets.UpdateBordersRequest{
				Range: &balanceRange,
				Right: borderSolidMedium,
			},
		})

		// Clear any explicit text format on the description column so
		// HYPERLINK formulas render with the default link styling.
		descRange := dataRange
		descRange.StartColumnIndex = colDesc - 1
		descRange.EndColumnIndex = colDesc
		reqs = append(reqs, &sheets.Request{
			RepeatCell: &sheets.RepeatCellRequest{
				Range:  &descRange,
				Cell:   &sheets.CellData{UserEnteredFormat: &sheets.CellFormat{}},
				Fields: "userEnteredFormat.textFormat",
			},
		})

		if newLen > 1 {
			mergeRange := dataRange
			mergeRange.StartColumnIndex = colMonth - 1
			mergeRange.EndColumnIndex = colMonth
			reqs = append(reqs, &sheets.Request{
				MergeCells: &sheets.MergeCellsRequest{
					Range:     &mergeRange,
					MergeType: "MERGE_ALL",
				},
			})
		}
	}
	return reqs
}

func sectionRange(title string, col, start, end int) string {
	l := columnLetter(col)
	return fmt.Sprintf("'%s'!%s%d:%s%d", title, l, start, l, end)
}

// rawValueRanges carries the auto columns: month marker, dates, names,
// amounts and balances. Written RAW so text stays text.
func rawValueRanges(grid *domain.LedgerGrid, title string) []*sheets.ValueRange {
	var data []*sheets.ValueRange
	for _, sec := range grid.Sections {
		span := sec.DataSpan
		dates := make([][]any, 0, len(sec.Rows))
		names := make([][]any, 0, len(sec.Rows))
		amounts := make([][]any, 0, len(sec.Rows))
		balances := make([][]any, 0, len(sec.Rows))
		for _, r := range sec.Rows {
			dates = append(dates, []any{formatRowDate(r.Date)})
			names = append(names, []any{r.Counterparty})
			if r.AutoFilled() {
				amounts = append(amounts, []any{r.Amount.InexactFloat64()})
			} else {
				amounts = append(amounts, []any{""})
			}
			if r.HasBalance {
				balances = append(balances, []any{r.Balance.InexactFloat64()})
			} else {
				balances = append(balances, []any{""})
			}
		}
		data = append(data,
			&sheets.ValueRange{
				Range:  sectionRange(title, colMonth, span.Start, span.Start),
				Values: [][]any{{fmt.Sprintf("%d월", int(sec.Month.Month))}},
			},
			&sheets.ValueRange{Range: sectionRange(title, colDate, span.Start, span.End), Values: dates},
			&sheets.ValueRange{Range: sectionRange(title, colName, span.Start, span.End), Values: names},
			&sheets.ValueRange{Range: sectionRange(title, colAmount, span.Start, span.End), Values: amounts},
			&sheets.ValueRange{Range: sectionRange(title, colBalance, span.Start, span.End), Values: balances},
		)
	}
	return data
}

// formulaValueRanges carries everything written USER_ENTERED: the manual
// description and note columns, which may hold HYPERLINK formulas, plus
// every 소계 row and the 합계 row.
func formulaValueRanges(grid *domain.LedgerGrid, title string) []*sheets.ValueRange {
	var data []*sheets.ValueRange
	for _, sec := range grid.Sections {
		span := sec.DataSpan
		descs := make([][]any, 0, len(sec.Rows))
		notes := make([][]any, 0, len(sec.Rows))
		for _, r := range sec.Rows {
			descs = append(descs, []any{r.Description})
			notes = append(notes, []any{r.Note})
		}
		data = append(data,
			&sheets.ValueRange{Range: sectionRange(title, colDesc, span.Start, span.End), Values: descs},
			&sheets.ValueRange{Range: sectionRange(title, colNote, span.Start, span.End), Values: notes},
			&sheets.ValueRange{
				Range:  fmt.Sprintf("'%s'!C%d:I%d", title, sec.SubtotalRow, sec.SubtotalRow),
				Values: [][]any{subtotalFormulaRow(span, sec.SubtotalRow)},
			},
		)
	}
	if grid.GrandTotalRow > 0 && len(grid.SubtotalRows) > 0 {
		data = append(data, &sheets.ValueRange{
			Range:  fmt.Sprintf("'%s'!C%d:I%d", title, grid.GrandTotalRow, grid.GrandTotalRow),
			Values: [][]any{grandTotalFormulaRow(grid.GrandTotalRow, grid.SubtotalRows)},
		})
	}
	return data
}
