package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjoh/clubledger/internal/domain"
)

func TestFolderID(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{
			name: "path form",
			ref:  "https://drive.google.com/drive/folders/1aBcD_ef-gh?usp=sharing",
			want: "1aBcD_ef-gh",
		},
		{
			name: "query form",
			ref:  "https://drive.google.com/open?id=1aBcD_ef-gh",
			want: "1aBcD_ef-gh",
		},
		{
			name:    "no id",
			ref:     "https://drive.google.com/drive/my-drive",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FolderID(tt.ref)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeReceiptTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"회식비", "회식비"},
		{"회식비의 사본", "회식비"},
		{"김회원님 회식비", "회식비"},
		{"김회원(BackEnd)님 회식비", "회식비"},
		{"2월 비기너 환급 내역의 사본", "비기너 환급"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeReceiptTitle(tt.in), "input %q", tt.in)
	}
}

func TestParseAmounts(t *testing.T) {
	text := "회식비 45,000원 결제, 수수료 500원 별도. 합계 45,500원."
	amounts := parseAmounts(text)
	assert.Equal(t, map[int64]struct{}{
		45000: {},
		500:   {},
		45500: {},
	}, amounts)
}

func TestBuildReceiptMap(t *testing.T) {
	day := "2026.02.10"
	docs := map[string][]receiptDoc{
		day: {
			{
				title:   "회식비",
				url:     "https://drive/receipt-1",
				amounts: map[int64]struct{}{45000: {}},
			},
		},
	}
	counts := map[domain.ReceiptKey]int{
		{Day: day, Amount: 45000}: 1,
	}

	got := buildReceiptMap(docs, counts)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ReceiptLink{Title: "회식비", URL: "https://drive/receipt-1"},
		got[domain.ReceiptKey{Day: day, Amount: 45000}])
}

func TestBuildReceiptMapAmbiguousKeyExcluded(t *testing.T) {
	day := "2026.02.10"
	docs := map[string][]receiptDoc{
		day: {
			{title: "회식비", url: "u1", amounts: map[int64]struct{}{45000: {}}},
		},
	}
	// Two withdrawals share the same day and amount.
	counts := map[domain.ReceiptKey]int{
		{Day: day, Amount: 45000}: 2,
	}

	got := buildReceiptMap(docs, counts)
	assert.Empty(t, got)
}

func TestBuildReceiptMapTransferFeeVariant(t *testing.T) {
	day := "2026.02.10"
	docs := map[string][]receiptDoc{
		day: {
			{
				title:   "서버비",
				url:     "u1",
				amounts: map[int64]struct{}{30000: {}, 500: {}},
			},
		},
	}
	counts := map[domain.ReceiptKey]int{
		{Day: day, Amount: 30500}: 1,
	}

	got := buildReceiptMap(docs, counts)
	require.Contains(t, got, domain.ReceiptKey{Day: day, Amount: 30500})
	assert.Equal(t, "서버비", got[domain.ReceiptKey{Day: day, Amount: 30500}].Title)
}

func TestBuildReceiptMapFirstMatchWins(t *testing.T) {
	day := "2026.02.10"
	docs := map[string][]receiptDoc{
		day: {
			{title: "먼저", url: "u1", amounts: map[int64]struct{}{10000: {}}},
			{title: "나중", url: "u2", amounts: map[int64]struct{}{10000: {}}},
		},
	}
	counts := map[domain.ReceiptKey]int{
		{Day: day, Amount: 10000}: 1,
	}

	got := buildReceiptMap(docs, counts)
	assert.Equal(t, "먼저", got[domain.ReceiptKey{Day: day, Amount: 10000}].Title)
}

func TestAmountCacheCodec(t *testing.T) {
	amounts := map[int64]struct{}{45000: {}, 500: {}}
	assert.Equal(t, "500,45000", encodeAmounts(amounts))
	assert.Equal(t, amounts, decodeAmounts("500,45000"))

	assert.Equal(t, "-", encodeAmounts(nil))
	assert.Empty(t, decodeAmounts("-"))
}
