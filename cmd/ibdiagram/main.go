// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	slogmulti "github.com/samber/slog-multi"
	"github.com/urfave/cli/v2"
	"go.githedgehog.com/ibdiagram/pkg/ibdiag"
	"go.githedgehog.com/ibdiagram/pkg/ibdiag/diagram"
	"go.githedgehog.com/ibdiagram/pkg/version"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FlagCatGlobal   = "Global options:"
	FlagNameFormat  = "format"
	FlagNameStyle   = "style"
	FlagNameLogFile = "log-file"
)

func main() {
	if err := Run(context.Background()); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func Run(ctx context.Context) error {
	return newApp(ctx).Run(os.Args) //nolint:wrapcheck
}

func newApp(ctx context.Context) *cli.App {
	var verbose, brief bool
	var logFileName string
	globalFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "verbose output (includes debug)",
			EnvVars:     []string{"IBDIAGRAM_VERBOSE"},
			Destination: &verbose,
			Category:    FlagCatGlobal,
		},
		&cli.BoolFlag{
			Name:        "brief",
			Aliases:     []string{"b"},
			Usage:       "brief output (only warn and error)",
			EnvVars:     []string{"IBDIAGRAM_BRIEF"},
			Destination: &brief,
			Category:    FlagCatGlobal,
		},
		&cli.StringFlag{
			Name:        FlagNameLogFile,
			Usage:       "additionally write debug logs to `FILE` (rotated)",
			EnvVars:     []string{"IBDIAGRAM_LOG_FILE"},
			Destination: &logFileName,
			Category:    FlagCatGlobal,
		},
	}

	var format, stylePath string
	diagramFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    FlagNameFormat,
			Aliases: []string{"f"},
			Usage: "diagram format: " + strings.Join(lo.Map(diagram.Formats,
				func(item diagram.Format, _ int) string { return string(item) }), ", "),
			Value:       string(diagram.FormatDot),
			Destination: &format,
		},
		&cli.StringFlag{
			Name:        FlagNameStyle,
			Aliases:     []string{"s"},
			Usage:       "use diagram style from YAML `FILE` (colors, rank direction, arrow head)",
			Destination: &stylePath,
		},
	}

	before := func(c *cli.Context) error {
		if verbose && brief {
			return cli.Exit("verbose and brief are mutually exclusive", 1)
		}

		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		} else if brief {
			logLevel = slog.LevelWarn
		}

		logW := os.Stderr
		handlers := []slog.Handler{
			tint.NewHandler(logW, &tint.Options{
				Level:      logLevel,
				TimeFormat: time.TimeOnly,
				NoColor:    !isatty.IsTerminal(logW.Fd()),
			}),
		}

		if logFileName != "" {
			logFile := &lumberjack.Logger{
				Filename:   logFileName,
				MaxSize:    5, // MB
				MaxBackups: 4,
				MaxAge:     30, // days
				Compress:   true,
				FileMode:   0o644,
			}

			handlers = append(handlers, slog.NewTextHandler(logFile, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
		}

		slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))

		if c.NArg() != 4 {
			return cli.Exit(fmt.Sprintf("expected 4 arguments (TOPOLOGY MAP SPINES OUTPUT), got %d, see --help", c.NArg()), 1)
		}

		slog.Debug("InfiniBand fabric diagram", "version", version.Version)

		return nil
	}

	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}
	return &cli.App{
		Name:      "ibdiagram",
		Usage:     "convert ibnetdiscover output into a Graphviz diagram of the InfiniBand fabric",
		ArgsUsage: "TOPOLOGY MAP SPINES OUTPUT",
		Description: `Generate a layout-ready diagram from an ibnetdiscover dump:
	TOPOLOGY  output of 'ibnetdiscover' (switch and CA records with their ports)
	MAP       "<guid> <hostname>" lines used to name HCAs ('#' comments allowed)
	SPINES    switch GUIDs to place at the top of the fabric, one per line
	OUTPUT    file to write the diagram to, '-' for stdout

	Render the result with Graphviz, e.g. 'dot -Tsvg fabric.dot -o fabric.svg'.
		`,
		Version:                version.Version,
		Suggest:                true,
		UseShortOptionHandling: true,
		HideHelpCommand:        true,
		Flags:                  flatten(globalFlags, diagramFlags),
		Before:                 before,
		Action: func(c *cli.Context) error {
			args := c.Args()
			if err := ibdiag.Convert(ctx, ibdiag.ConvertOpts{
				Topology:  args.Get(0),
				Hostnames: args.Get(1),
				Spines:    args.Get(2),
				Output:    args.Get(3),
				Format:    diagram.Format(strings.ToLower(format)),
				StylePath: stylePath,
			}); err != nil {
				return fmt.Errorf("failed to generate %s diagram: %w", format, err)
			}

			return nil
		},
	}
}

func flatten[T any, Slice ~[]T](collection ...Slice) Slice {
	return lo.Flatten(collection)
}
