package adjust

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"ohlcv-tools/internal/frame"
)

// Summary describes the numeric cells of one column over the masked rows.
type Summary struct {
	N    int
	Mean float64
	Min  float64
	Max  float64
}

// ColumnStats compares a column before and after the adjustment.
type ColumnStats struct {
	Column string
	Before Summary
	After  Summary
}

func (s ColumnStats) String() string {
	if s.Before.N == 0 {
		return fmt.Sprintf("%s: no numeric cells in window", s.Column)
	}
	return fmt.Sprintf("%s: mean %s -> %s, min %s -> %s, max %s -> %s (%d cells)",
		s.Column,
		num(s.Before.Mean), num(s.After.Mean),
		num(s.Before.Min), num(s.After.Min),
		num(s.Before.Max), num(s.After.Max),
		s.Before.N)
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// summarize reads the masked numeric cells of column name. Cells that do not parse are
// skipped; Apply is the place that rejects them.
func summarize(f *frame.Frame, mask []bool, name string) Summary {
	col := f.Index(name)
	if col < 0 {
		return Summary{}
	}
	vals := make([]float64, 0, len(f.Rows))
	for i, row := range f.Rows {
		if !mask[i] {
			continue
		}
		cell := strings.TrimSpace(row[col])
		if isBlank(cell) {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return Summary{}
	}
	return Summary{
		N:    len(vals),
		Mean: stat.Mean(vals, nil),
		Min:  floats.Min(vals),
		Max:  floats.Max(vals),
	}
}
