package domain

import (
	"regexp"
	"strings"
)

// Member is one dues-paying person from the member directory. SlackID is
// empty for members who never connected their Slack account.
type Member struct {
	ID              string
	Name            string
	Track           string
	SlackID         string
	EnrollmentStart YearMonth
}

var nonAlpha = regexp.MustCompile(`[^a-zA-Z]`)

// NormalizeTrack canonicalizes a track name for comparison: every
// non-alphabetic character is stripped and the rest lowercased, so
// "Front-End", "frontend" and "FrontEnd" are the same track.
func NormalizeTrack(track string) string {
	return strings.ToLower(nonAlpha.ReplaceAllString(track, ""))
}

// SameTrack reports whether two track names match after normalization.
func SameTrack(a, b string) bool {
	return NormalizeTrack(a) == NormalizeTrack(b)
}

// exemptionKeywords mark members the payment sheet excuses from dues:
// graduated, on leave, military leave, suspended activity, or serving as
// track lead / education lead.
var exemptionKeywords = []string{
	"졸업",
	"활동 중지",
	"휴학",
	"군 휴학",
	"트랙장",
	"교육장",
}

// NoteExempts reports whether a payment-sheet note excuses the member
// from dues entirely.
func NoteExempts(note string) bool {
	for _, kw := range exemptionKeywords {
		if strings.Contains(note, kw) {
			return true
		}
	}
	return false
}
