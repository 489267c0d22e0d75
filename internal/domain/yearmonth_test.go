package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearMonthNext(t *testing.T) {
	tests := []struct {
		name string
		in   YearMonth
		want YearMonth
	}{
		{"mid year", YearMonth{2026, time.April}, YearMonth{2026, time.May}},
		{"year wrap", YearMonth{2025, time.December}, YearMonth{2026, time.January}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Next())
		})
	}
}

func TestYearMonthOrdering(t *testing.T) {
	a := YearMonth{2025, time.December}
	b := YearMonth{2026, time.January}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
}

func TestYearMonthLastDay(t *testing.T) {
	tests := []struct {
		name string
		in   YearMonth
		want time.Time
	}{
		{"31 days", YearMonth{2026, time.January}, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"february", YearMonth{2026, time.February}, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"leap february", YearMonth{2024, time.February}, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.LastDay())
		})
	}
}

func TestYearMonthContains(t *testing.T) {
	ym := YearMonth{2026, time.February}

	assert.True(t, ym.Contains(time.Date(2026, 2, 28, 23, 59, 0, 0, time.UTC)))
	assert.False(t, ym.Contains(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestYearMonthString(t *testing.T) {
	assert.Equal(t, "2026-02", YearMonth{2026, time.February}.String())
}
