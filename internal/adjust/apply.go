package adjust

import (
	"strings"

	"github.com/shopspring/decimal"

	"ohlcv-tools/internal/frame"
)

type cellEdit struct {
	row, col int
	value    string
}

// Apply adds delta to every masked cell of cols. All cells are checked before any is
// written, so on error f is unchanged. Empty and NaN cells stay as they are, and a zero
// delta leaves the text of every cell untouched.
func Apply(f *frame.Frame, mask []bool, cols []string, delta decimal.Decimal) error {
	var edits []cellEdit
	for _, name := range cols {
		col := f.Index(name)
		if col < 0 {
			return &MissingColumnsError{Columns: []string{name}}
		}
		for i, row := range f.Rows {
			if !mask[i] {
				continue
			}
			cell := strings.TrimSpace(row[col])
			if isBlank(cell) {
				continue
			}
			v, err := decimal.NewFromString(cell)
			if err != nil {
				return &CellError{Row: i + 1, Column: name, Value: row[col], Err: err}
			}
			if delta.IsZero() {
				continue
			}
			edits = append(edits, cellEdit{row: i, col: col, value: v.Add(delta).String()})
		}
	}
	for _, e := range edits {
		f.Rows[e.row][e.col] = e.value
	}
	return nil
}

func isBlank(cell string) bool {
	return cell == "" || strings.EqualFold(cell, "nan")
}
