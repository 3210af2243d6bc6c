package adjust

import (
	"time"

	"ohlcv-tools/internal/prompt"
	"ohlcv-tools/internal/tstamp"
)

// Window is an inclusive time range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Validate checks Start < End. Equal bounds are rejected.
func (w Window) Validate() error {
	if !w.End.After(w.Start) {
		return ErrInvalidWindow
	}
	return nil
}

// Contains reports Start <= t <= End.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ResolveWindow asks for the start and end bounds. A blank answer keeps the matching
// default; anything else must be InputLayout in the parser's zone.
func ResolveWindow(p prompt.Prompter, parser *tstamp.Parser, first, last time.Time) (Window, error) {
	start, err := resolveBound(p, parser, prompt.FieldStart, first)
	if err != nil {
		return Window{}, err
	}
	end, err := resolveBound(p, parser, prompt.FieldEnd, last)
	if err != nil {
		return Window{}, err
	}
	w := Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

func resolveBound(p prompt.Prompter, parser *tstamp.Parser, field prompt.Field, def time.Time) (time.Time, error) {
	in, err := p.Prompt(field)
	if err != nil {
		return time.Time{}, err
	}
	if in == "" {
		return def, nil
	}
	t, err := parser.ParseInput(in)
	if err != nil {
		return time.Time{}, &DateTimeInputError{Field: field, Value: in, Err: err}
	}
	return t, nil
}

// Mask marks the rows whose time falls inside w and returns how many did.
func Mask(times []time.Time, w Window) ([]bool, int) {
	mask := make([]bool, len(times))
	n := 0
	for i, t := range times {
		if w.Contains(t) {
			mask[i] = true
			n++
		}
	}
	return mask, n
}
