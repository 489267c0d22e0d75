package domain

import (
	"fmt"
	"strings"
	"time"
)

// NoticeContext carries the member-facing fields a notice needs beyond
// the arrears result itself.
type NoticeContext struct {
	MemberName string
	AsOf       time.Time
}

// NoticeRenderer turns an arrears result into the notice body. Template
// selection follows the case kind; CaseNone yields an empty string and
// the member is excluded from delivery entirely.
type NoticeRenderer struct {
	Timeline *BillingRuleTimeline
}

// Render produces the unpaid-dues sentence(s) for one member.
func (nr *NoticeRenderer) Render(result *ArrearsResult, ctx NoticeContext) (string, error) {
	prefix := fmt.Sprintf("확인 결과, %d년 %d월 %d일 기준으로 %s 님의",
		ctx.AsOf.Year(), int(ctx.AsOf.Month()), ctx.AsOf.Day(), ctx.MemberName)

	switch result.Kind {
	case CaseNone:
		return "", nil

	case CaseMonthlyOnly:
		return fmt.Sprintf("%s 회비가 %s원 미납되었습니다.", prefix, formatWon(result.MonthlyOwed)), nil

	case CaseSemesterOnly:
		labels := make([]string, 0, len(result.UnpaidSemester))
		for _, u := range result.UnpaidSemester {
			labels = append(labels, u.Label()+"학기")
		}
		return fmt.Sprintf("%s %s 회비가 미납되었습니다.", prefix, strings.Join(labels, ", ")), nil

	case CaseMixed:
		var b strings.Builder
		fmt.Fprintf(&b, "%s 회비가 총 %s원 미납되었습니다.\n", prefix, formatWon(result.TotalOwed))
		fmt.Fprintf(&b, "  - 이전 회비: %s원\n", formatWon(result.MonthlyOwed))
		for _, u := range result.UnpaidSemester {
			fee, err := nr.Timeline.UnitFeeFor(u)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "  - %s학기 회비: %s원\n", u.Label(), formatWon(fee))
		}
		return b.String(), nil
	}

	return "", fmt.Errorf("unknown case kind %d", result.Kind)
}

// NoticeTemplate wraps the rendered arrears detail in the full message a
// member receives. Placeholders match the treasurer's markdown template.
type NoticeTemplate struct {
	Body        string
	SenderName  string
	SenderPhone string
	FeeSheetURL string
}

// Fill substitutes the template placeholders with run values.
func (t NoticeTemplate) Fill(mention, unpaidDetail string) string {
	msg := t.Body
	msg = strings.ReplaceAll(msg, "{발신자}", t.SenderName)
	msg = strings.ReplaceAll(msg, "{전화번호}", t.SenderPhone)
	msg = strings.ReplaceAll(msg, "{멘션}", mention)
	msg = strings.ReplaceAll(msg, "{미납내역}", unpaidDetail)
	msg = strings.ReplaceAll(msg, "{납부문서URL}", t.FeeSheetURL)
	return msg
}
