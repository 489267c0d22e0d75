package xlsx

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/sjoh/clubledger/internal/domain"
)

// Export filenames encode the statement month as a two-digit year and
// month pair, e.g. 신한_거래내역_2602.xlsx for February 2026.
var exportNameRe = regexp.MustCompile(`_(\d{2})(\d{2})\.xlsx$`)

// ExportYearMonth extracts the statement month from an export filename.
func ExportYearMonth(name string) (domain.YearMonth, error) {
	base := filepath.Base(name)
	m := exportNameRe.FindStringSubmatch(base)
	if m == nil {
		return domain.YearMonth{}, fmt.Errorf("cannot parse year and month from filename %q", base)
	}
	yy := atoi2(m[1])
	mm := atoi2(m[2])
	if mm < 1 || mm > 12 {
		return domain.YearMonth{}, fmt.Errorf("invalid month %02d in filename %q", mm, base)
	}
	return domain.YearMonth{Year: 2000 + yy, Month: time.Month(mm)}, nil
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
