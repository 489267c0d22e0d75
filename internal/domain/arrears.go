package domain

import "github.com/shopspring/decimal"

// CaseKind classifies a member's outstanding debt by which kinds of
// billing units remain unpaid.
type CaseKind int

const (
	CaseNone CaseKind = iota
	CaseMonthlyOnly
	CaseSemesterOnly
	CaseMixed
)

func (k CaseKind) String() string {
	switch k {
	case CaseNone:
		return "none"
	case CaseMonthlyOnly:
		return "monthly-only"
	case CaseSemesterOnly:
		return "semester-only"
	case CaseMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// ArrearsResult is the outcome of a dues check for one member.
type ArrearsResult struct {
	MemberID       string
	UnpaidMonthly  []BillingUnit
	UnpaidSemester []BillingUnit
	MonthlyOwed    decimal.Decimal
	TotalOwed      decimal.Decimal
	Kind           CaseKind
}

// Arrears computes what the member owes as of the given month: the billing
// units elapsed since enrollment, minus the paid set, partitioned into
// monthly and semester units and priced by each unit's rule fee.
func (t *BillingRuleTimeline) Arrears(memberID string, enrollmentStart YearMonth, paid map[BillingUnit]struct{}, asOf YearMonth) (*ArrearsResult, error) {
	units, err := t.UnitsBetween(enrollmentStart, asOf)
	if err != nil {
		return nil, err
	}

	result := &ArrearsResult{
		MemberID:    memberID,
		MonthlyOwed: decimal.Zero,
		TotalOwed:   decimal.Zero,
	}
	for _, u := range units {
		if _, ok := paid[u]; ok {
			continue
		}
		fee, err := t.UnitFeeFor(u)
		if err != nil {
			return nil, err
		}
		result.TotalOwed = result.TotalOwed.Add(fee)
		switch u.Mode {
		case ModeMonthly:
			result.UnpaidMonthly = append(result.UnpaidMonthly, u)
			result.MonthlyOwed = result.MonthlyOwed.Add(fee)
		case ModeSemester:
			result.UnpaidSemester = append(result.UnpaidSemester, u)
		}
	}

	switch {
	case len(result.UnpaidMonthly) > 0 && len(result.UnpaidSemester) > 0:
		result.Kind = CaseMixed
	case len(result.UnpaidMonthly) > 0:
		result.Kind = CaseMonthlyOnly
	case len(result.UnpaidSemester) > 0:
		result.Kind = CaseSemesterOnly
	default:
		result.Kind = CaseNone
	}

	return result, nil
}
