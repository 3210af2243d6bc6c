package main

import (
	"log/slog"

	"ohlcv-tools/internal/adjust"
	"ohlcv-tools/internal/app"
)

// App holds application dependencies built by Wire.
type App struct {
	Config   *app.Config
	Adjuster *adjust.Adjuster
	Logger   *slog.Logger
}
