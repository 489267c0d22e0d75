package xlsx

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildExport(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []any{"No", "거래일시", "입금", "출금", "내용", "잔액"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParseFoldsDepositAndWithdrawal(t *testing.T) {
	buf := buildExport(t, [][]any{
		{"1", "2026.01.05 09:30:00", "10,000", "", "김회원", "110,000"},
		{"2", "2026.01.07 12:00:00", "", "45,000", "회식비", "65,000"},
	})

	records, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.True(t, records[0].Amount.Equal(decimal.NewFromInt(10000)))
	require.Equal(t, "김회원", records[0].Counterparty)
	require.True(t, records[0].HasBalance)
	require.True(t, records[0].Balance.Equal(decimal.NewFromInt(110000)))

	require.True(t, records[1].Amount.Equal(decimal.NewFromInt(-45000)))
	require.True(t, records[1].Withdrawal())
}

func TestParseSkipsPaddingRows(t *testing.T) {
	buf := buildExport(t, [][]any{
		{"1", "2026.01.05", "10,000", "", "김회원", "110,000"},
		{"", "", "", "", "", ""},
		{"2", "2026.01.06", "", "", "금액 없는 행", "110,000"},
	})

	records, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestParseMissingBalance(t *testing.T) {
	buf := buildExport(t, [][]any{
		{"1", "2026.01.05", "10,000", "", "김회원", ""},
	})

	records, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.False(t, records[0].HasBalance)
}

func TestParseRejectsBadDate(t *testing.T) {
	buf := buildExport(t, [][]any{
		{"1", "not-a-date", "10,000", "", "김회원", "110,000"},
	})

	_, err := Parse(buf)
	require.Error(t, err)
}
