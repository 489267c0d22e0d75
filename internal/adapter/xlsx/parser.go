// Package xlsx parses bank-export workbooks into transaction records.
//
// The export layout is the Shinhan format: a header row, then one row per
// movement with columns no / date / deposit / withdrawal / counterparty /
// balance. Deposits and withdrawals arrive in separate columns and are
// folded into one signed amount.
package xlsx

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sjoh/clubledger/internal/domain"
)

const (
	colNo = iota
	colDate
	colDeposit
	colWithdrawal
	colCounterparty
	colBalance
	minColumns = colBalance + 1
)

// Parse reads a bank export and returns its transactions in file order.
// Rows without a row number or without any amount are skipped, matching
// how the bank pads its exports.
func Parse(r io.Reader) ([]domain.TransactionRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return parseRows(rows)
}

// ParseFile reads a bank export from disk.
func ParseFile(path string) ([]domain.TransactionRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]domain.TransactionRecord, error) {
	var records []domain.TransactionRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}
		for len(row) < minColumns {
			row = append(row, "")
		}
		if strings.TrimSpace(row[colNo]) == "" {
			continue
		}

		deposit := parseNumber(row[colDeposit])
		withdrawal := parseNumber(row[colWithdrawal])

		var amount decimal.Decimal
		switch {
		case deposit.IsPositive():
			amount = deposit
		case withdrawal.IsPositive():
			amount = withdrawal.Neg()
		default:
			continue
		}

		date, err := parseDate(row[colDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		rec := domain.TransactionRecord{
			Date:         date,
			Counterparty: strings.TrimSpace(row[colCounterparty]),
			Amount:       amount,
		}
		if bal, ok := parseOptionalNumber(row[colBalance]); ok {
			rec.Balance = bal
			rec.HasBalance = true
		}
		records = append(records, rec)
	}

	return records, nil
}

// dateLayouts are the formats the bank has been seen to use.
var dateLayouts = []string{
	"2006.01.02 15:04:05",
	"2006.01.02",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func parseNumber(s string) decimal.Decimal {
	d, ok := parseOptionalNumber(s)
	if !ok {
		return decimal.Zero
	}
	return d
}

func parseOptionalNumber(s string) (decimal.Decimal, bool) {
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
