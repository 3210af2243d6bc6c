package saver

import (
	"strings"

	"ohlcv-tools/internal/model"
)

// BarSaver writes a set of bars to one file. Callers pick an implementation by format
// and only depend on this interface.
type BarSaver interface {
	Save(bars []model.Bar, path string) error
	Extension() string
}

// Formats lists the accepted export formats.
var Formats = []string{"csv", "json", "parquet"}

// NewBarSaver creates implementation by format (csv, parquet, json).
// Returns nil if format not supported.
func NewBarSaver(format string) BarSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
