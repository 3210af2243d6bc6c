package saver

import (
	"encoding/json"
	"os"

	"ohlcv-tools/internal/model"
)

// JSONSaver writes bars as an indented JSON array. Null cells become JSON null.
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(bars []model.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bars); err != nil {
		return err
	}
	return f.Close()
}
