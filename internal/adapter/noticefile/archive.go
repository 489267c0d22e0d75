// Package noticefile persists rendered dues notices as one text file per
// member, for manual review or copy-pasting.
package noticefile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sjoh/clubledger/internal/domain"
)

// Archive writes notices under {baseDir}/{YYYY-MM}/, one file per member
// named {name}_{track}.txt. The month directory is cleared of previous
// notices on the first save of a run, so stale files from an earlier run
// never linger.
type Archive struct {
	baseDir string
	month   domain.YearMonth
	logger  zerolog.Logger

	mu       sync.Mutex
	prepared bool
	used     map[string]struct{}
}

// NewArchive creates an archive for the given run month.
func NewArchive(baseDir string, month domain.YearMonth, logger zerolog.Logger) *Archive {
	return &Archive{
		baseDir: baseDir,
		month:   month,
		logger:  logger.With().Str("component", "notice_archive").Logger(),
		used:    make(map[string]struct{}),
	}
}

func (a *Archive) dir() string {
	return filepath.Join(a.baseDir, a.month.String())
}

// Save writes the member's notice and returns the file path.
func (a *Archive) Save(_ context.Context, member domain.Member, message string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.prepared {
		if err := a.prepare(); err != nil {
			return "", err
		}
		a.prepared = true
	}

	path := filepath.Join(a.dir(), a.uniqueFilename(member.Name, member.Track))
	if err := os.WriteFile(path, []byte(message), 0o644); err != nil {
		return "", fmt.Errorf("write notice file: %w", err)
	}
	return path, nil
}

func (a *Archive) prepare() error {
	dir := a.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create notice directory: %w", err)
	}
	stale, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return err
	}
	for _, f := range stale {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("remove stale notice %s: %w", f, err)
		}
	}
	if len(stale) > 0 {
		a.logger.Debug().Int("removed", len(stale)).Str("dir", dir).Msg("cleared previous notices")
	}
	return nil
}

// uniqueFilename resolves collisions between members who share a name
// and track spelling by appending a counter.
func (a *Archive) uniqueFilename(name, track string) string {
	base := fmt.Sprintf("%s_%s", name, track)
	candidate := base + ".txt"
	for i := 1; ; i++ {
		if _, taken := a.used[candidate]; !taken {
			a.used[candidate] = struct{}{}
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d.txt", base, i)
	}
}
