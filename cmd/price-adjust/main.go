package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"ohlcv-tools/internal/app"
	"ohlcv-tools/internal/prompt"
	"ohlcv-tools/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("price-adjust", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: price-adjust [flags] [file.csv]")
		fs.PrintDefaults()
	}
	cfgPath := fs.String("config", "", "YAML config file (default $OHLCV_CONFIG or "+app.DefaultConfigPath+")")
	start := fs.String("start", "", "window start, YYYY-MM-DD HH:MM:SS (skips the prompt)")
	end := fs.String("end", "", "window end, YYYY-MM-DD HH:MM:SS (skips the prompt)")
	columns := fs.String("columns", "", "'all' or comma list of open,high,low,close (skips the prompt)")
	amount := fs.String("adjust", "", "signed adjustment value, e.g. +60 (skips the prompt)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return app.ExitOK
		}
		return app.ExitInvalid
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not loaded", "error", err)
	}

	// Flags given on the command line answer their prompt, even when blank.
	flagFields := map[string]prompt.Field{
		"start":   prompt.FieldStart,
		"end":     prompt.FieldEnd,
		"columns": prompt.FieldColumns,
		"adjust":  prompt.FieldAdjustment,
	}
	flagValues := map[string]*string{"start": start, "end": end, "columns": columns, "adjust": amount}
	answers := prompt.Answers{
		Values:   make(map[prompt.Field]string),
		Fallback: prompt.NewConsole(stdin, stdout),
	}
	fs.Visit(func(f *flag.Flag) {
		if field, ok := flagFields[f.Name]; ok {
			answers.Values[field] = *flagValues[f.Name]
		}
	})

	a, cleanup, err := InitializeApp(app.ConfigPath(configPath(*cfgPath)), answers)
	if err != nil {
		return app.Fail(stdout, slog.Default(), err)
	}
	defer cleanup()
	slog.SetDefault(a.Logger)

	path := a.Config.Adjust.Input
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	res, err := a.Adjuster.Run(path)
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
