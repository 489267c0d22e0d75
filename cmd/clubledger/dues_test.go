package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCSV(t *testing.T) {
	got := splitCSV([]string{"BackEnd, Game", "FrontEnd", " , "})
	assert.Equal(t, []string{"BackEnd", "Game", "FrontEnd"}, got)
	assert.Nil(t, splitCSV(nil))
}

func TestResolveAsOfDefaultsToPreviousMonthEnd(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	got, err := resolveAsOf("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), got)
}

func TestResolveAsOfJanuary(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	got, err := resolveAsOf("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestResolveAsOfExplicit(t *testing.T) {
	got, err := resolveAsOf("2026-04-30", time.Now())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), got)

	_, err = resolveAsOf("not-a-date", time.Now())
	require.Error(t, err)
}
