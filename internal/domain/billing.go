package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BillingMode selects how elapsed time is chopped into chargeable units.
type BillingMode int

const (
	ModeMonthly BillingMode = iota
	ModeSemester
)

func (m BillingMode) String() string {
	switch m {
	case ModeMonthly:
		return "monthly"
	case ModeSemester:
		return "semester"
	default:
		return "unknown"
	}
}

// BillingUnit identifies one chargeable period: a calendar month under
// monthly billing, or a half-year under semester billing.
type BillingUnit struct {
	Mode     BillingMode
	Month    YearMonth // monthly units only
	Year     int       // semester units only
	Semester int       // 1 (Mar-Aug) or 2 (Sep-Feb)
}

// MonthlyUnit returns the billing unit for one calendar month.
func MonthlyUnit(ym YearMonth) BillingUnit {
	return BillingUnit{Mode: ModeMonthly, Month: ym}
}

// SemesterUnit returns the billing unit for one semester.
func SemesterUnit(year, semester int) BillingUnit {
	return BillingUnit{Mode: ModeSemester, Year: year, Semester: semester}
}

// SemesterOf maps a calendar month to the semester containing it.
// March through August is semester 1; September through February is
// semester 2 of the September year, so January and February belong to the
// previous year's second semester.
func SemesterOf(ym YearMonth) BillingUnit {
	switch {
	case ym.Month >= time.March && ym.Month <= time.August:
		return SemesterUnit(ym.Year, 1)
	case ym.Month >= time.September:
		return SemesterUnit(ym.Year, 2)
	default: // January, February
		return SemesterUnit(ym.Year-1, 2)
	}
}

// FirstMonth returns the earliest calendar month covered by the unit.
func (u BillingUnit) FirstMonth() YearMonth {
	if u.Mode == ModeMonthly {
		return u.Month
	}
	if u.Semester == 1 {
		return YearMonth{Year: u.Year, Month: time.March}
	}
	return YearMonth{Year: u.Year, Month: time.September}
}

// Label renders the unit the way treasurers write it: "2025-11" for a
// month, "26-1" for a semester.
func (u BillingUnit) Label() string {
	if u.Mode == ModeMonthly {
		return u.Month.String()
	}
	return fmt.Sprintf("%02d-%d", u.Year%100, u.Semester)
}

// BillingRule maps a calendar range to a billing mode and unit fee.
// EffectiveFrom is inclusive, EffectiveUntil exclusive; a zero
// EffectiveUntil leaves the rule open-ended.
type BillingRule struct {
	EffectiveFrom  YearMonth
	EffectiveUntil YearMonth
	OpenEnded      bool
	Mode           BillingMode
	UnitFee        decimal.Decimal
}

func (r BillingRule) covers(ym YearMonth) bool {
	if ym.Before(r.EffectiveFrom) {
		return false
	}
	return r.OpenEnded || ym.Before(r.EffectiveUntil)
}

// BillingRuleTimeline is the single source of truth for which billing
// units exist. No other component re-derives units.
type BillingRuleTimeline struct {
	rules []BillingRule
}

// NewBillingRuleTimeline validates that rules are ordered, contiguous and
// non-overlapping, and that only the final rule is open-ended.
func NewBillingRuleTimeline(rules ...BillingRule) (*BillingRuleTimeline, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules", ErrInvalidTimeline)
	}
	for i, r := range rules {
		last := i == len(rules)-1
		if r.OpenEnded && !last {
			return nil, fmt.Errorf("%w: rule %d is open-ended but not last", ErrInvalidTimeline, i)
		}
		if !r.OpenEnded && !r.EffectiveFrom.Before(r.EffectiveUntil) {
			return nil, fmt.Errorf("%w: rule %d has empty range", ErrInvalidTimeline, i)
		}
		if i > 0 && rules[i-1].EffectiveUntil != r.EffectiveFrom {
			return nil, fmt.Errorf("%w: rule %d does not start where rule %d ends", ErrInvalidTimeline, i, i-1)
		}
	}
	return &BillingRuleTimeline{rules: rules}, nil
}

// DefaultTimeline is the rule set in force today: a 10,000 KRW monthly fee
// through February 2026, then a 60,000 KRW semester fee from March 2026.
func DefaultTimeline() *BillingRuleTimeline {
	t, err := NewBillingRuleTimeline(
		BillingRule{
			EffectiveFrom:  YearMonth{Year: 2020, Month: time.January},
			EffectiveUntil: YearMonth{Year: 2026, Month: time.March},
			Mode:           ModeMonthly,
			UnitFee:        decimal.NewFromInt(10000),
		},
		BillingRule{
			EffectiveFrom: YearMonth{Year: 2026, Month: time.March},
			OpenEnded:     true,
			Mode:          ModeSemester,
			UnitFee:       decimal.NewFromInt(60000),
		},
	)
	if err != nil {
		panic(err) // static rule set, cannot fail
	}
	return t
}

// RuleFor returns the rule in force for the given month.
func (t *BillingRuleTimeline) RuleFor(ym YearMonth) (BillingRule, error) {
	for _, r := range t.rules {
		if r.covers(ym) {
			return r, nil
		}
	}
	return BillingRule{}, fmt.Errorf("%w: %s", ErrRuleTimelineGap, ym)
}

// ModeFor returns the billing mode in force for the given date.
func (t *BillingRuleTimeline) ModeFor(date time.Time) (BillingMode, error) {
	r, err := t.RuleFor(YearMonthOf(date))
	if err != nil {
		return 0, err
	}
	return r.Mode, nil
}

// UnitFeeFor returns the fee charged for one billing unit, taken from the
// rule in force at the unit's first month.
func (t *BillingRuleTimeline) UnitFeeFor(u BillingUnit) (decimal.Decimal, error) {
	r, err := t.RuleFor(u.FirstMonth())
	if err != nil {
		return decimal.Decimal{}, err
	}
	return r.UnitFee, nil
}

// UnitsBetween walks the timeline from the enrollment month through the
// asOf month inclusive and enumerates every billing unit in between.
// Months under a monthly rule each yield one unit; months under a semester
// rule collapse into their semester's unit. Order follows the calendar;
// semester units appear once, at their first covered month.
func (t *BillingRuleTimeline) UnitsBetween(enrollmentStart, asOf YearMonth) ([]BillingUnit, error) {
	if asOf.Before(enrollmentStart) {
		return nil, nil
	}

	var units []BillingUnit
	seen := make(map[BillingUnit]struct{})
	for ym := enrollmentStart; !ym.After(asOf); ym = ym.Next() {
		rule, err := t.RuleFor(ym)
		if err != nil {
			return nil, err
		}
		var u BillingUnit
		switch rule.Mode {
		case ModeMonthly:
			u = MonthlyUnit(ym)
		case ModeSemester:
			u = SemesterOf(ym)
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		units = append(units, u)
	}
	return units, nil
}
