package saver

import (
	"github.com/parquet-go/parquet-go"

	"ohlcv-tools/internal/model"
)

// ParquetBar is the on-disk row layout of ParquetSaver. Extra columns are not exported.
type ParquetBar struct {
	TsEvent  string   `parquet:"ts_event"`
	UnixNano int64    `parquet:"ts_unix_nano"`
	Open     *float64 `parquet:"open,optional"`
	High     *float64 `parquet:"high,optional"`
	Low      *float64 `parquet:"low,optional"`
	Close    *float64 `parquet:"close,optional"`
	Volume   *float64 `parquet:"volume,optional"`
}

// ParquetSaver writes bars as Parquet.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(bars []model.Bar, path string) error {
	rows := make([]ParquetBar, len(bars))
	for i, b := range bars {
		rows[i] = ParquetBar{
			TsEvent: b.TsEvent,
			Open:    b.Open.Ptr(),
			High:    b.High.Ptr(),
			Low:     b.Low.Ptr(),
			Close:   b.Close.Ptr(),
			Volume:  b.Volume.Ptr(),
		}
		if !b.Time.IsZero() {
			rows[i].UnixNano = b.Time.UnixNano()
		}
	}
	return parquet.WriteFile(path, rows)
}
