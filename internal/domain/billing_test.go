package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemesterOf(t *testing.T) {
	tests := []struct {
		name string
		in   YearMonth
		want BillingUnit
	}{
		{"march opens first semester", YearMonth{2026, time.March}, SemesterUnit(2026, 1)},
		{"august closes first semester", YearMonth{2026, time.August}, SemesterUnit(2026, 1)},
		{"september opens second semester", YearMonth{2026, time.September}, SemesterUnit(2026, 2)},
		{"january belongs to previous year", YearMonth{2027, time.January}, SemesterUnit(2026, 2)},
		{"february belongs to previous year", YearMonth{2027, time.February}, SemesterUnit(2026, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SemesterOf(tt.in))
		})
	}
}

func TestBillingUnitLabel(t *testing.T) {
	assert.Equal(t, "2025-11", MonthlyUnit(YearMonth{2025, time.November}).Label())
	assert.Equal(t, "26-1", SemesterUnit(2026, 1).Label())
	assert.Equal(t, "26-2", SemesterUnit(2026, 2).Label())
}

func TestBillingUnitFirstMonth(t *testing.T) {
	assert.Equal(t, YearMonth{2026, time.March}, SemesterUnit(2026, 1).FirstMonth())
	assert.Equal(t, YearMonth{2026, time.September}, SemesterUnit(2026, 2).FirstMonth())
}

func TestNewBillingRuleTimelineRejectsBadRuleSets(t *testing.T) {
	monthly := func(from, until YearMonth) BillingRule {
		return BillingRule{EffectiveFrom: from, EffectiveUntil: until, Mode: ModeMonthly, UnitFee: decimal.NewFromInt(10000)}
	}

	tests := []struct {
		name  string
		rules []BillingRule
	}{
		{"no rules", nil},
		{"gap between rules", []BillingRule{
			monthly(YearMonth{2020, time.January}, YearMonth{2024, time.January}),
			monthly(YearMonth{2024, time.March}, YearMonth{2026, time.January}),
		}},
		{"empty range", []BillingRule{
			monthly(YearMonth{2024, time.January}, YearMonth{2024, time.January}),
		}},
		{"open-ended rule not last", []BillingRule{
			{EffectiveFrom: YearMonth{2020, time.January}, OpenEnded: true, Mode: ModeMonthly},
			monthly(YearMonth{2024, time.January}, YearMonth{2026, time.January}),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBillingRuleTimeline(tt.rules...)
			assert.ErrorIs(t, err, ErrInvalidTimeline)
		})
	}
}

func TestRuleForOutsideTimeline(t *testing.T) {
	_, err := DefaultTimeline().RuleFor(YearMonth{2019, time.December})
	assert.ErrorIs(t, err, ErrRuleTimelineGap)
}

func TestUnitsBetweenStraddlesTheModeSwitch(t *testing.T) {
	units, err := DefaultTimeline().UnitsBetween(YearMonth{2025, time.November}, YearMonth{2026, time.April})
	require.NoError(t, err)

	// Four monthly units through February, then the semester absorbing
	// both March and April as a single unit.
	assert.Equal(t, []BillingUnit{
		MonthlyUnit(YearMonth{2025, time.November}),
		MonthlyUnit(YearMonth{2025, time.December}),
		MonthlyUnit(YearMonth{2026, time.January}),
		MonthlyUnit(YearMonth{2026, time.February}),
		SemesterUnit(2026, 1),
	}, units)
}

func TestUnitsBetweenBeforeEnrollment(t *testing.T) {
	units, err := DefaultTimeline().UnitsBetween(YearMonth{2026, time.May}, YearMonth{2026, time.April})
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestArrears(t *testing.T) {
	timeline := DefaultTimeline()
	asOf := YearMonth{2026, time.April}

	paid := func(units ...BillingUnit) map[BillingUnit]struct{} {
		set := make(map[BillingUnit]struct{}, len(units))
		for _, u := range units {
			set[u] = struct{}{}
		}
		return set
	}

	tests := []struct {
		name        string
		enrolled    YearMonth
		paid        map[BillingUnit]struct{}
		wantKind    CaseKind
		wantTotal   int64
		wantMonthly int64
	}{
		{
			name:     "fully settled",
			enrolled: YearMonth{2026, time.January},
			paid: paid(
				MonthlyUnit(YearMonth{2026, time.January}),
				MonthlyUnit(YearMonth{2026, time.February}),
				SemesterUnit(2026, 1),
			),
			wantKind: CaseNone,
		},
		{
			name:     "monthly only",
			enrolled: YearMonth{2026, time.January},
			paid: paid(
				MonthlyUnit(YearMonth{2026, time.January}),
				SemesterUnit(2026, 1),
			),
			wantKind:    CaseMonthlyOnly,
			wantTotal:   10000,
			wantMonthly: 10000,
		},
		{
			name:      "semester only",
			enrolled:  YearMonth{2026, time.March},
			paid:      paid(),
			wantKind:  CaseSemesterOnly,
			wantTotal: 60000,
		},
		{
			name:        "mixed",
			enrolled:    YearMonth{2025, time.November},
			paid:        paid(MonthlyUnit(YearMonth{2025, time.November}), MonthlyUnit(YearMonth{2025, time.December})),
			wantKind:    CaseMixed,
			wantTotal:   80000,
			wantMonthly: 20000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := timeline.Arrears("m1", tt.enrolled, tt.paid, asOf)
			require.NoError(t, err)

			assert.Equal(t, tt.wantKind, result.Kind)
			assert.True(t, result.TotalOwed.Equal(decimal.NewFromInt(tt.wantTotal)),
				"total owed %s, want %d", result.TotalOwed, tt.wantTotal)
			assert.True(t, result.MonthlyOwed.Equal(decimal.NewFromInt(tt.wantMonthly)),
				"monthly owed %s, want %d", result.MonthlyOwed, tt.wantMonthly)
		})
	}
}
