package adjust

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"ohlcv-tools/internal/model"
)

// ParseColumns turns the operator's selection into price column names. "all" selects
// every price column; otherwise a comma list is expected. Repeats are collapsed.
func ParseColumns(in string) ([]string, error) {
	in = strings.ToLower(strings.TrimSpace(in))
	if in == "all" {
		return slices.Clone(model.PriceColumns), nil
	}

	var cols, invalid []string
	for _, c := range strings.Split(in, ",") {
		c = strings.TrimSpace(c)
		if !slices.Contains(model.PriceColumns, c) {
			invalid = append(invalid, c)
			continue
		}
		if !slices.Contains(cols, c) {
			cols = append(cols, c)
		}
	}
	if len(invalid) > 0 {
		return nil, &InvalidColumnsError{Columns: invalid}
	}
	return cols, nil
}

// ParseAdjustment reads a signed real number such as "+60", "-40" or "0.25". The digits
// are kept exactly as typed.
func ParseAdjustment(in string) (decimal.Decimal, error) {
	in = strings.TrimSpace(in)
	v, err := strconv.ParseFloat(in, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAdjustment, in)
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(in, "+"))
	if err != nil {
		// Float spellings decimal does not read, such as hex floats.
		return decimal.NewFromFloat(v), nil
	}
	return d, nil
}
