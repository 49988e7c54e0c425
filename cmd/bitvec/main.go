package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/bitscan"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/bitvec <command> <flags>

var (
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "minimum log level (debug, info, warn, error)",
		Value: "info",
	}
	logFormatFlag = cli.StringFlag{
		Name:  "log-format",
		Usage: "log output format (text, json)",
		Value: "text",
	}
	scanImplFlag = cli.StringFlag{
		Name:    "scan",
		Usage:   "bit scan implementation (generic, hardware); defaults to the best available",
		EnvVars: []string{"BITVEC_SCAN"},
	}
)

var commands = []*cli.Command{
	&Scan,
	&Caps,
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "bitvec",
		Usage: "inspect bit strings with bitvec",
		Flags: []cli.Flag{
			&logLevelFlag,
			&logFormatFlag,
			&scanImplFlag,
		},
		Before:   selectScanImpl,
		Commands: commands,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func selectScanImpl(ctx *cli.Context) error {
	name := ctx.String(scanImplFlag.Name)
	if name == "" {
		return nil
	}
	impl, err := bitscan.ParseImpl(name)
	if err != nil {
		return err
	}
	return bitscan.Use(impl)
}

func newLogger(ctx *cli.Context) (*bitvec.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(ctx.String(logLevelFlag.Name))); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch format := ctx.String(logFormatFlag.Name); format {
	case "text":
		return bitvec.NewLogger(slog.NewTextHandler(ctx.App.ErrWriter, opts)), nil
	case "json":
		return bitvec.NewLogger(slog.NewJSONHandler(ctx.App.ErrWriter, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
