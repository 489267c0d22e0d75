package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(date time.Time, amount, balance int64) TransactionRecord {
	return TransactionRecord{
		Date:       date,
		Amount:     decimal.NewFromInt(amount),
		Balance:    decimal.NewFromInt(balance),
		HasBalance: true,
	}
}

func TestValidateBatch(t *testing.T) {
	tests := []struct {
		name    string
		records []TransactionRecord
		wantErr error
	}{
		{
			name: "continuous chain",
			records: []TransactionRecord{
				record(day(2026, 2, 1), 1000, 1000),
				record(day(2026, 2, 2), 500, 1500),
				record(day(2026, 2, 3), -300, 1200),
			},
		},
		{
			name: "broken chain",
			records: []TransactionRecord{
				record(day(2026, 2, 1), 1000, 1000),
				record(day(2026, 2, 2), 1500, 1500),
				record(day(2026, 2, 3), 1200, 1200),
			},
			wantErr: ErrBalanceMismatch,
		},
		{
			name: "descending dates",
			records: []TransactionRecord{
				record(day(2026, 2, 5), 1000, 1000),
				record(day(2026, 2, 1), 500, 1500),
			},
			wantErr: ErrUnorderedBatch,
		},
		{
			name: "missing balance restarts the anchor",
			records: []TransactionRecord{
				record(day(2026, 2, 1), 1000, 1000),
				{Date: day(2026, 2, 2), Amount: decimal.NewFromInt(500)},
				record(day(2026, 2, 3), -300, 99999),
				record(day(2026, 2, 4), 1, 100000),
			},
		},
		{
			name: "mismatch after restart still caught",
			records: []TransactionRecord{
				{Date: day(2026, 2, 1), Amount: decimal.NewFromInt(500)},
				record(day(2026, 2, 2), 1000, 1000),
				record(day(2026, 2, 3), 100, 9999),
			},
			wantErr: ErrBalanceMismatch,
		},
		{"empty batch", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBatch(tt.records)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsDataIntegrity(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckAndMark(t *testing.T) {
	empty := &MonthSection{Rows: make([]LedgerRow, 1)}
	filled := &MonthSection{Rows: []LedgerRow{{Counterparty: "김회원", Amount: decimal.NewFromInt(10000)}}}
	manualOnly := &MonthSection{Rows: []LedgerRow{{Description: "메모만 있음"}}}

	assert.Equal(t, Proceed, empty.CheckAndMark(false))
	assert.Equal(t, SkipAlreadyFilled, filled.CheckAndMark(false))
	assert.Equal(t, ProceedOverwrite, filled.CheckAndMark(true))
	// A section holding only manual notes has never been reconciled.
	assert.Equal(t, Proceed, manualOnly.CheckAndMark(false))
}

func TestWriteRowsReattachesManualFields(t *testing.T) {
	section := &MonthSection{
		Month: YearMonth{2026, time.February},
		Rows: []LedgerRow{
			{
				Date:        day(2026, 2, 10),
				Description: "회식비",
				Note:        "영수증 있음",
				Amount:      decimal.NewFromInt(-45000),
			},
			{
				Date:        day(2026, 2, 20),
				Description: "사라질 메모",
				Amount:      decimal.NewFromInt(-999),
			},
		},
	}

	records := []TransactionRecord{
		record(day(2026, 2, 3), 10000, 110000),
		record(day(2026, 2, 10), -45000, 65000),
	}
	written, dropped := section.WriteRows(records)

	assert.Equal(t, 2, written)
	require.Len(t, section.Rows, 2)
	assert.Empty(t, section.Rows[0].Description)
	assert.Equal(t, "회식비", section.Rows[1].Description)
	assert.Equal(t, "영수증 있음", section.Rows[1].Note)

	require.Len(t, dropped, 1)
	assert.Equal(t, "description", dropped[0].Field)
	assert.Equal(t, "사라질 메모", dropped[0].Value)
}

func TestWriteRowsDuplicateKeysAttachInOrder(t *testing.T) {
	// Two withdrawals share a day and amount; each manual value sticks to
	// one row instead of both landing on the first.
	section := &MonthSection{
		Rows: []LedgerRow{
			{Date: day(2026, 2, 10), Description: "첫번째", Amount: decimal.NewFromInt(-5000)},
			{Date: day(2026, 2, 10), Description: "두번째", Amount: decimal.NewFromInt(-5000)},
		},
	}
	records := []TransactionRecord{
		record(day(2026, 2, 10), -5000, 95000),
		record(day(2026, 2, 10), -5000, 90000),
	}

	_, dropped := section.WriteRows(records)

	assert.Empty(t, dropped)
	assert.Equal(t, "첫번째", section.Rows[0].Description)
	assert.Equal(t, "두번째", section.Rows[1].Description)
}

func twoSectionGrid() *LedgerGrid {
	g := &LedgerGrid{
		StartRow: 3,
		Sections: []*MonthSection{
			{
				Month:    YearMonth{2026, time.January},
				Rows:     []LedgerRow{{Counterparty: "A", Amount: decimal.NewFromInt(1)}, {Counterparty: "B", Amount: decimal.NewFromInt(2)}},
				ReadSpan: RowSpan{Start: 3, End: 4},
			},
			{
				Month:    YearMonth{2026, time.March},
				Rows:     make([]LedgerRow, 1),
				ReadSpan: RowSpan{Start: 6, End: 6},
			},
		},
	}
	g.Recalculate()
	return g
}

func TestCloneIsolation(t *testing.T) {
	g := twoSectionGrid()
	cp := g.Clone()

	cp.Sections[0].Rows[0].Counterparty = "변경"
	cp.Sections[0].Rows = append(cp.Sections[0].Rows, LedgerRow{})
	cp.Recalculate()

	assert.Equal(t, "A", g.Sections[0].Rows[0].Counterparty)
	assert.Len(t, g.Sections[0].Rows, 2)
	assert.Equal(t, 5, g.Sections[0].SubtotalRow)
}

func TestLocate(t *testing.T) {
	t.Run("existing section", func(t *testing.T) {
		g := twoSectionGrid()
		s, err := g.Locate(YearMonth{2026, time.January})
		require.NoError(t, err)
		assert.Same(t, g.Sections[0], s)
		assert.Len(t, g.Sections, 2)
	})

	t.Run("created between neighbours", func(t *testing.T) {
		g := twoSectionGrid()
		s, err := g.Locate(YearMonth{2026, time.February})
		require.NoError(t, err)

		require.Len(t, g.Sections, 3)
		assert.Same(t, g.Sections[1], s)
		assert.Len(t, s.Rows, 1)
		assert.Zero(t, s.ReadSpan.Len())
	})

	t.Run("created at the end", func(t *testing.T) {
		g := twoSectionGrid()
		_, err := g.Locate(YearMonth{2026, time.December})
		require.NoError(t, err)
		assert.Equal(t, YearMonth{2026, time.December}, g.Sections[2].Month)
	})

	t.Run("out-of-order sections rejected", func(t *testing.T) {
		g := twoSectionGrid()
		g.Sections[0], g.Sections[1] = g.Sections[1], g.Sections[0]
		_, err := g.Locate(YearMonth{2026, time.February})
		assert.ErrorIs(t, err, ErrSectionCorrupt)
	})

	t.Run("overlapping read spans rejected", func(t *testing.T) {
		g := twoSectionGrid()
		g.Sections[1].ReadSpan = RowSpan{Start: 4, End: 6}
		_, err := g.Locate(YearMonth{2026, time.February})
		assert.ErrorIs(t, err, ErrSectionCorrupt)
	})
}

func TestRecalculate(t *testing.T) {
	g := twoSectionGrid()

	assert.Equal(t, RowSpan{Start: 3, End: 4}, g.Sections[0].DataSpan)
	assert.Equal(t, 5, g.Sections[0].SubtotalRow)
	assert.Equal(t, RowSpan{Start: 6, End: 6}, g.Sections[1].DataSpan)
	assert.Equal(t, 7, g.Sections[1].SubtotalRow)
	assert.Equal(t, []int{5, 7}, g.SubtotalRows)
	assert.Equal(t, 8, g.GrandTotalRow)

	// Spans follow the rows, not the spans read from the document.
	g.Sections[0].Rows = append(g.Sections[0].Rows, LedgerRow{})
	g.Recalculate()

	assert.Equal(t, RowSpan{Start: 3, End: 5}, g.Sections[0].DataSpan)
	assert.Equal(t, RowSpan{Start: 7, End: 7}, g.Sections[1].DataSpan)
	assert.Equal(t, 9, g.GrandTotalRow)
}
