//go:build wireinject
// +build wireinject

package main

import (
	"ohlcv-tools/internal/app"
	"ohlcv-tools/internal/prompt"

	"github.com/google/wire"
)

// InitializeApp builds App (Config + Adjuster) via Wire.
// Caller must call the returned cleanup when done.
func InitializeApp(path app.ConfigPath, p prompt.Prompter) (*App, func(), error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideLogger,
		app.ProvideParser,
		app.ProvideArchiver,
		app.ProvideRecorder,
		app.ProvideBarSaver,
		app.ProvideAdjuster,
		wire.Struct(new(App), "Config", "Adjuster", "Logger"),
	)
	return nil, nil, nil
}
