//go:build wireinject
// +build wireinject

package main

import (
	"ohlcv-tools/internal/app"

	"github.com/google/wire"
)

// InitializeApp builds App (Config + Dropper) via Wire.
// Caller must call the returned cleanup when done.
func InitializeApp(path app.ConfigPath) (*App, func(), error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideLogger,
		app.ProvideArchiver,
		app.ProvideRecorder,
		app.ProvideDropper,
		wire.Struct(new(App), "Config", "Dropper", "Logger"),
	)
	return nil, nil, nil
}
