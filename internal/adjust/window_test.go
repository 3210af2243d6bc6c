package adjust

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ohlcv-tools/internal/frame"
)

func TestWindowContainsIsInclusive(t *testing.T) {
	start := time.Date(2025, 9, 17, 13, 0, 0, 0, time.UTC)
	w := Window{Start: start, End: start.Add(time.Hour)}

	assert.True(t, w.Contains(start))
	assert.True(t, w.Contains(start.Add(time.Hour)))
	assert.True(t, w.Contains(start.Add(30*time.Minute)))
	assert.False(t, w.Contains(start.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(start.Add(time.Hour+time.Nanosecond)))

	assert.NoError(t, w.Validate())
	assert.ErrorIs(t, Window{Start: start, End: start}.Validate(), ErrInvalidWindow)
}

func TestMask(t *testing.T) {
	base := time.Date(2025, 9, 17, 13, 0, 0, 0, time.UTC)
	times := []time.Time{base.Add(-time.Minute), base, base.Add(time.Minute), base.Add(2 * time.Minute)}
	mask, n := Mask(times, Window{Start: base, End: base.Add(time.Minute)})
	assert.Equal(t, []bool{false, true, true, false}, mask)
	assert.Equal(t, 2, n)
}

func TestParseColumns(t *testing.T) {
	cases := []struct {
		in      string
		want    []string
		invalid []string
	}{
		{in: "all", want: []string{"open", "high", "low", "close"}},
		{in: " All ", want: []string{"open", "high", "low", "close"}},
		{in: "close", want: []string{"close"}},
		{in: "Open, LOW ,open", want: []string{"open", "low"}},
		{in: "high, foo", invalid: []string{"foo"}},
		{in: "volume,bar", invalid: []string{"volume", "bar"}},
		{in: "", invalid: []string{""}},
	}
	for _, tc := range cases {
		got, err := ParseColumns(tc.in)
		if tc.invalid != nil {
			var ce *InvalidColumnsError
			require.ErrorAs(t, err, &ce, tc.in)
			assert.Equal(t, tc.invalid, ce.Columns, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseAdjustment(t *testing.T) {
	for in, want := range map[string]string{
		"+60":                   "60",
		"-40":                   "-40",
		" 0.25":                 "0.25",
		"1e2":                   "100",
		"+123456789.123456789":  "123456789.123456789",
		"-0.000000000000000001": "-0.000000000000000001",
	} {
		got, err := ParseAdjustment(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}
	for _, in := range []string{"", "abc", "inf", "NaN", "6O"} {
		_, err := ParseAdjustment(in)
		assert.ErrorIs(t, err, ErrInvalidAdjustment, in)
	}
}

func TestApplyIsAllOrNothing(t *testing.T) {
	f := frame.New([]string{"ts_event", "open", "close"}, [][]string{
		{"t1", "1", "1"},
		{"t2", "2", "oops"},
	})
	err := Apply(f, []bool{true, true}, []string{"open", "close"}, decimal.NewFromInt(5))
	var ce *CellError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, [][]string{{"t1", "1", "1"}, {"t2", "2", "oops"}}, f.Rows)
}

func TestApplySkipsUnmaskedRows(t *testing.T) {
	f := frame.New([]string{"open"}, [][]string{{"1.5"}, {"2.5"}, {"oops"}})
	require.NoError(t, Apply(f, []bool{false, true, false}, []string{"open"}, decimal.RequireFromString("-0.5")))
	assert.Equal(t, [][]string{{"1.5"}, {"2"}, {"oops"}}, f.Rows)
}

func TestColumnStatsString(t *testing.T) {
	s := ColumnStats{
		Column: "open",
		Before: Summary{N: 2, Mean: 100.5, Min: 100, Max: 101},
		After:  Summary{N: 2, Mean: 160.5, Min: 160, Max: 161},
	}
	assert.Equal(t, "open: mean 100.5 -> 160.5, min 100 -> 160, max 101 -> 161 (2 cells)", s.String())
	assert.Equal(t, "high: no numeric cells in window", ColumnStats{Column: "high"}.String())
}
