package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTrack(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Front-End", "frontend"},
		{"frontend", "frontend"},
		{"Back End", "backend"},
		{"AI/ML", "aiml"},
		{"디자인", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTrack(tt.in), "input %q", tt.in)
	}
}

func TestSameTrack(t *testing.T) {
	assert.True(t, SameTrack("Front-End", "frontend"))
	assert.False(t, SameTrack("frontend", "backend"))
}

func TestNoteExempts(t *testing.T) {
	tests := []struct {
		note string
		want bool
	}{
		{"", false},
		{"2월까지 납부", false},
		{"졸업", true},
		{"군 휴학 중", true},
		{"25-2 트랙장", true},
		{"활동 중지 (복귀 예정)", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NoteExempts(tt.note), "note %q", tt.note)
	}
}
