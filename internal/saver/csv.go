package saver

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"

	"github.com/guregu/null/v6"

	"ohlcv-tools/internal/model"
)

// CSVSaver writes bars as CSV: ts_event, the five numeric columns, then extra columns sorted by name.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(bars []model.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)

	extra := extraColumns(bars)
	header := append([]string{
		model.ColTsEvent, model.ColOpen, model.ColHigh, model.ColLow, model.ColClose, model.ColVolume,
	}, extra...)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, b := range bars {
		rec := []string{
			b.TsEvent,
			floatStr(b.Open),
			floatStr(b.High),
			floatStr(b.Low),
			floatStr(b.Close),
			floatStr(b.Volume),
		}
		for _, col := range extra {
			rec = append(rec, b.Extra[col])
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func extraColumns(bars []model.Bar) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, b := range bars {
		for k := range b.Extra {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

func floatStr(f null.Float) string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}
