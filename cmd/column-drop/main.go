package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"ohlcv-tools/internal/app"
	"ohlcv-tools/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("column-drop", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: column-drop [flags] [input.csv]")
		fs.PrintDefaults()
	}
	cfgPath := fs.String("config", "", "YAML config file (default $OHLCV_CONFIG or "+app.DefaultConfigPath+")")
	columns := fs.String("columns", "", "comma list of columns to drop (overrides config)")
	output := fs.String("o", "", "output path (default: the input path)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return app.ExitOK
		}
		return app.ExitInvalid
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not loaded", "error", err)
	}

	a, cleanup, err := InitializeApp(app.ConfigPath(configPath(*cfgPath)))
	if err != nil {
		return app.Fail(stdout, slog.Default(), err)
	}
	defer cleanup()
	slog.SetDefault(a.Logger)

	if *columns != "" {
		a.Dropper.Columns = splitList(*columns)
	}
	in, out := a.Config.Drop.Input, a.Config.DropOutput()
	if fs.NArg() > 0 {
		in, out = fs.Arg(0), fs.Arg(0)
	}
	if *output != "" {
		out = *output
	}

	res, err := a.Dropper.Run(in, out)
	if err != nil {
		return app.Fail(stdout, a.Logger, err)
	}
	fmt.Fprint(stdout, res.Summary())
	return app.ExitOK
}

func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv("OHLCV_CONFIG"); v != "" {
		return v
	}
	return app.DefaultConfigPath
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
