package noticefile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjoh/clubledger/internal/domain"
)

func testArchive(t *testing.T) (*Archive, string) {
	t.Helper()
	dir := t.TempDir()
	month := domain.YearMonth{Year: 2026, Month: time.April}
	return NewArchive(dir, month, zerolog.Nop()), filepath.Join(dir, "2026-04")
}

func TestSaveWritesNotice(t *testing.T) {
	a, dir := testArchive(t)
	member := domain.Member{Name: "김회원", Track: "BackEnd"}

	path, err := a.Save(context.Background(), member, "미납 안내")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "김회원_BackEnd.txt"), path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "미납 안내", string(body))
}

func TestSaveClearsStaleNotices(t *testing.T) {
	a, dir := testArchive(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	stale := filepath.Join(dir, "탈퇴자_Game.txt")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	_, err := a.Save(context.Background(), domain.Member{Name: "김회원", Track: "BackEnd"}, "x")
	require.NoError(t, err)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveDuplicateNames(t *testing.T) {
	a, dir := testArchive(t)
	member := domain.Member{Name: "김회원", Track: "BackEnd"}

	first, err := a.Save(context.Background(), member, "a")
	require.NoError(t, err)
	second, err := a.Save(context.Background(), member, "b")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "김회원_BackEnd.txt"), first)
	assert.Equal(t, filepath.Join(dir, "김회원_BackEnd_1.txt"), second)

	// Both files exist with their own contents.
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "b", string(b))
}
