package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v6"

	"ohlcv-tools/internal/frame"
)

// Known column names of an OHLCV file.
const (
	ColTsEvent = "ts_event"
	ColOpen    = "open"
	ColHigh    = "high"
	ColLow     = "low"
	ColClose   = "close"
	ColVolume  = "volume"
)

// PriceColumns are the columns an adjustment may target, in canonical order.
var PriceColumns = []string{ColOpen, ColHigh, ColLow, ColClose}

// RequiredColumns must all be present for a price adjustment.
var RequiredColumns = []string{ColTsEvent, ColOpen, ColHigh, ColLow, ColClose}

// Bar is one OHLCV row. TsEvent keeps the literal text from the file; Time is the parsed
// instant. Empty numeric cells are null. Unrecognised columns travel in Extra.
type Bar struct {
	TsEvent string            `json:"ts_event"`
	Time    time.Time         `json:"time"`
	Open    null.Float        `json:"open"`
	High    null.Float        `json:"high"`
	Low     null.Float        `json:"low"`
	Close   null.Float        `json:"close"`
	Volume  null.Float        `json:"volume"`
	Extra   map[string]string `json:"extra,omitempty"`
}

// ParseFloat reads a numeric cell. Empty or NaN cells are null.
func ParseFloat(s string) (null.Float, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return null.Float{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.Float{}, err
	}
	return null.FloatFrom(v), nil
}

// BarsFromFrame builds typed bars from f. times, when non-nil, holds the parsed ts_event
// of each row.
func BarsFromFrame(f *frame.Frame, times []time.Time) ([]Bar, error) {
	if times != nil && len(times) != f.Len() {
		return nil, fmt.Errorf("have %d timestamps for %d rows", len(times), f.Len())
	}
	bars := make([]Bar, 0, f.Len())
	for i, row := range f.Rows {
		var b Bar
		for j, col := range f.Columns {
			cell := row[j]
			var dst *null.Float
			switch col {
			case ColTsEvent:
				b.TsEvent = cell
				continue
			case ColOpen:
				dst = &b.Open
			case ColHigh:
				dst = &b.High
			case ColLow:
				dst = &b.Low
			case ColClose:
				dst = &b.Close
			case ColVolume:
				dst = &b.Volume
			default:
				if b.Extra == nil {
					b.Extra = make(map[string]string)
				}
				b.Extra[col] = cell
				continue
			}
			v, err := ParseFloat(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", i+1, col, err)
			}
			*dst = v
		}
		if times != nil {
			b.Time = times[i]
		}
		bars = append(bars, b)
	}
	return bars, nil
}
