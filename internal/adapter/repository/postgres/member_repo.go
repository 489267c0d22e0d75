// Package postgres implements the member directory against the club's
// member database.
package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sjoh/clubledger/internal/domain"
)

// MemberRepository lists dues-paying members
type MemberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

// ListMembers returns every active member, minus the excluded tracks and
// "name_track" entries. Track names are compared in normalized form, so
// exclusion arguments may be spelled however the caller likes.
func (r *MemberRepository) ListMembers(ctx context.Context, excludedTracks, excludedMembers []string) ([]domain.Member, error) {
	query := `
		SELECT m.id, m.name, t.name, COALESCE(m.slack_id, ''), m.enrolled_at
		FROM members m
		JOIN tracks t ON m.track_id = t.id
		WHERE m.is_deleted = false AND t.is_deleted = false
		ORDER BY t.name, m.name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	trackExcluded := make(map[string]struct{}, len(excludedTracks))
	for _, t := range excludedTracks {
		trackExcluded[domain.NormalizeTrack(t)] = struct{}{}
	}
	memberExcluded := make(map[string]struct{}, len(excludedMembers))
	for _, m := range excludedMembers {
		memberExcluded[normalizeMemberKey(m)] = struct{}{}
	}

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		var enrolledAt time.Time
		if err := rows.Scan(&m.ID, &m.Name, &m.Track, &m.SlackID, &enrolledAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		m.EnrollmentStart = domain.YearMonthOf(enrolledAt)

		if _, ok := trackExcluded[domain.NormalizeTrack(m.Track)]; ok {
			continue
		}
		if _, ok := memberExcluded[m.Name+"_"+domain.NormalizeTrack(m.Track)]; ok {
			continue
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// normalizeMemberKey canonicalizes a "name_track" exclusion entry. The
// track part is everything after the first underscore.
func normalizeMemberKey(entry string) string {
	name, track, ok := strings.Cut(entry, "_")
	if !ok {
		return entry
	}
	return strings.TrimSpace(name) + "_" + domain.NormalizeTrack(track)
}
