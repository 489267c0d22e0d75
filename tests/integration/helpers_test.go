package integration

import (
	"time"

	"github.com/sjoh/clubledger/internal/domain"
)

func ym(year int, month time.Month) domain.YearMonth {
	return domain.YearMonth{Year: year, Month: month}
}
