package tstamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser(DefaultZone)
	require.NoError(t, err)
	return p
}

func TestParseNaiveIsLocalised(t *testing.T) {
	p := newParser(t)
	want := time.Date(2025, 9, 17, 13, 0, 0, 0, p.Loc)

	for _, s := range []string{
		"2025-09-17 13:00:00",
		"2025-09-17T13:00:00",
		"2025-09-17 13:00",
		"2025/09/17 13:00:00",
		"09/17/2025 13:00:00",
		" 2025-09-17 13:00:00.000 ",
	} {
		got, err := p.Parse(s)
		require.NoError(t, err, s)
		assert.True(t, got.Equal(want), "%s: got %v", s, got)
		assert.Equal(t, p.Loc, got.Location(), s)
	}
}

func TestParseZonedIsConverted(t *testing.T) {
	p := newParser(t)
	// 17:00 UTC is 13:00 EDT.
	want := time.Date(2025, 9, 17, 13, 0, 0, 0, p.Loc)

	for _, s := range []string{
		"2025-09-17T17:00:00Z",
		"2025-09-17T17:00:00.000000000Z",
		"2025-09-17 17:00:00+00:00",
		"2025-09-17 13:00:00-04:00",
		"2025-09-17T13:00:00-0400",
		"2025-09-17 17:00:00 +0000 UTC",
	} {
		got, err := p.Parse(s)
		require.NoError(t, err, s)
		assert.True(t, got.Equal(want), "%s: got %v", s, got)
		assert.Equal(t, "13:00:00", got.Format("15:04:05"), s)
	}
}

func TestParseDateOnly(t *testing.T) {
	p := newParser(t)
	got, err := p.Parse("2025-01-02")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02 00:00:00-05:00", Format(got))
}

func TestParseRejects(t *testing.T) {
	p := newParser(t)
	for _, s := range []string{"", "yesterday", "1758114000", "2025-13-01 00:00:00", "17/09/2025"} {
		_, err := p.Parse(s)
		assert.ErrorIs(t, err, ErrUnrecognized, s)
	}
}

func TestParseInput(t *testing.T) {
	p := newParser(t)
	got, err := p.ParseInput("2025-09-17 14:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-09-17 14:00:00-04:00", Format(got))

	_, err = p.ParseInput("2025-09-17T14:00:00")
	assert.Error(t, err)
	_, err = p.ParseInput("2025-09-17")
	assert.Error(t, err)
}

func TestNewParserBadZone(t *testing.T) {
	_, err := NewParser("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestParseWallAmbiguous(t *testing.T) {
	p := newParser(t)
	tests := []struct {
		in        string
		ambiguous bool
		formatted string
	}{
		{"2025-11-02 01:30:00", true, "2025-11-02 01:30:00-04:00"},
		{"2025-11-02 00:30:00", false, "2025-11-02 00:30:00-04:00"},
		{"2025-11-02 02:30:00", false, "2025-11-02 02:30:00-05:00"},
		{"2025-03-09 03:30:00", false, "2025-03-09 03:30:00-04:00"},
		{"2025-09-17 13:00:00", false, "2025-09-17 13:00:00-04:00"},
		// Explicit offsets name a single instant.
		{"2025-11-02 01:30:00-05:00", false, "2025-11-02 01:30:00-05:00"},
	}
	for _, tt := range tests {
		got, ambiguous, err := p.ParseWall(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.ambiguous, ambiguous, tt.in)
		assert.Equal(t, tt.formatted, Format(got), tt.in)
	}
}
