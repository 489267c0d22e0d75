package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeRendererRender(t *testing.T) {
	renderer := &NoticeRenderer{Timeline: DefaultTimeline()}
	ctx := NoticeContext{
		MemberName: "박지훈",
		AsOf:       time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name   string
		result *ArrearsResult
		want   string
	}{
		{
			name:   "settled renders nothing",
			result: &ArrearsResult{Kind: CaseNone},
			want:   "",
		},
		{
			name: "monthly only",
			result: &ArrearsResult{
				Kind:          CaseMonthlyOnly,
				UnpaidMonthly: []BillingUnit{MonthlyUnit(YearMonth{2026, time.January})},
				MonthlyOwed:   decimal.NewFromInt(10000),
				TotalOwed:     decimal.NewFromInt(10000),
			},
			want: "확인 결과, 2026년 4월 30일 기준으로 박지훈 님의 회비가 10,000원 미납되었습니다.",
		},
		{
			name: "semester only",
			result: &ArrearsResult{
				Kind:           CaseSemesterOnly,
				UnpaidSemester: []BillingUnit{SemesterUnit(2026, 1)},
				TotalOwed:      decimal.NewFromInt(60000),
			},
			want: "확인 결과, 2026년 4월 30일 기준으로 박지훈 님의 26-1학기 회비가 미납되었습니다.",
		},
		{
			name: "mixed itemizes per source",
			result: &ArrearsResult{
				Kind: CaseMixed,
				UnpaidMonthly: []BillingUnit{
					MonthlyUnit(YearMonth{2026, time.January}),
					MonthlyUnit(YearMonth{2026, time.February}),
				},
				UnpaidSemester: []BillingUnit{SemesterUnit(2026, 1)},
				MonthlyOwed:    decimal.NewFromInt(20000),
				TotalOwed:      decimal.NewFromInt(80000),
			},
			want: "확인 결과, 2026년 4월 30일 기준으로 박지훈 님의 회비가 총 80,000원 미납되었습니다.\n" +
				"  - 이전 회비: 20,000원\n" +
				"  - 26-1학기 회비: 60,000원\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.Render(tt.result, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNoticeTemplateFill(t *testing.T) {
	tpl := NoticeTemplate{
		Body:        "{멘션} 안녕하세요, {발신자}입니다.\n{미납내역}\n{납부문서URL} / {전화번호}",
		SenderName:  "오수진",
		SenderPhone: "010-1234-5678",
		FeeSheetURL: "https://docs.google.com/spreadsheets/d/fee-doc",
	}

	got := tpl.Fill("<@U123>", "회비가 10,000원 미납되었습니다.")

	assert.Equal(t,
		"<@U123> 안녕하세요, 오수진입니다.\n"+
			"회비가 10,000원 미납되었습니다.\n"+
			"https://docs.google.com/spreadsheets/d/fee-doc / 010-1234-5678",
		got)
}

func TestFormatWon(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{10000, "10,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatWon(decimal.NewFromInt(tt.in)))
	}
}
