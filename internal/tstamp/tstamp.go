// Package tstamp parses event timestamps from a fixed, documented set of layouts and
// normalises them into a reference zone.
package tstamp

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// DefaultZone is the reference zone for naive timestamps and prompt input.
const DefaultZone = "America/New_York"

// InputLayout is the only layout accepted for operator-typed window bounds.
const InputLayout = "2006-01-02 15:04:05"

var (
	// ErrUnrecognized is returned when a value matches none of the accepted layouts.
	ErrUnrecognized = errors.New("unrecognized timestamp format")
	// ErrAmbiguous marks a naive wall clock time that names two instants in the zone.
	ErrAmbiguous = errors.New("ambiguous wall clock time")
)

// Layouts carrying their own offset. The parsed instant is converted into the zone.
var zonedLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02 15:04:05.999999999-0700",
	"2006-01-02 15:04:05.999999999 -0700 MST",
}

// Layouts without an offset. The wall clock is interpreted in the zone.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// Parser turns timestamp text into instants in Loc.
type Parser struct {
	Loc *time.Location
}

// NewParser loads the named zone (IANA name, e.g. America/New_York).
func NewParser(zone string) (*Parser, error) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", zone, err)
	}
	return &Parser{Loc: loc}, nil
}

// Parse interprets s. Values with an offset are converted into p.Loc, naive values are
// localised to it.
func (p *Parser) Parse(s string) (time.Time, error) {
	t, _, err := p.ParseWall(s)
	return t, err
}

// ParseWall is Parse that also reports whether s was a naive wall clock time that occurs
// twice in p.Loc (a DST fall-back hour). Such values resolve to the earlier instant.
func (p *Parser) ParseWall(s string) (t time.Time, ambiguous bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, fmt.Errorf("%w: empty value", ErrUnrecognized)
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(p.Loc), false, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, p.Loc); err == nil {
			return t, isAmbiguous(t), nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%w: %q", ErrUnrecognized, s)
}

// isAmbiguous reports whether the wall clock of t also names a second instant, which is
// the case when t sits in the hour repeated by a backward offset change.
func isAmbiguous(t time.Time) bool {
	_, off := t.Zone()
	for _, near := range []time.Time{t.Add(-12 * time.Hour), t.Add(12 * time.Hour)} {
		_, o := near.Zone()
		if o == off {
			continue
		}
		alt := t.Add(time.Duration(off-o) * time.Second)
		if !alt.Equal(t) && sameWall(alt, t) {
			return true
		}
	}
	return false
}

func sameWall(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute() && a.Second() == b.Second() &&
		a.Nanosecond() == b.Nanosecond()
}

// ParseInput parses an operator-typed bound in InputLayout, localised to p.Loc.
func (p *Parser) ParseInput(s string) (time.Time, error) {
	return time.ParseInLocation(InputLayout, strings.TrimSpace(s), p.Loc)
}

// Format renders t the way reports show window bounds.
func Format(t time.Time) string {
	return t.Format("2006-01-02 15:04:05-07:00")
}
