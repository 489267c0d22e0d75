package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatWon renders an amount with thousands separators, the way Korean
// bank statements print it. Dues amounts are whole KRW.
func formatWon(d decimal.Decimal) string {
	s := d.Truncate(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatWon is the exported form used by reports and notices.
func FormatWon(d decimal.Decimal) string {
	return formatWon(d)
}
