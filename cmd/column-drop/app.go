package main

import (
	"log/slog"

	"ohlcv-tools/internal/app"
	"ohlcv-tools/internal/dropcols"
)

// App holds application dependencies built by Wire.
type App struct {
	Config  *app.Config
	Dropper *dropcols.Dropper
	Logger  *slog.Logger
}
