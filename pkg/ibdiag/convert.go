// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package ibdiag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"go.githedgehog.com/ibdiagram/pkg/ib"
	"go.githedgehog.com/ibdiagram/pkg/ibdiag/diagram"
	"golang.org/x/sync/errgroup"
)

const Stdout = "-"

type ConvertOpts struct {
	Topology  string
	Hostnames string
	Spines    string
	Output    string
	Format    diagram.Format
	StylePath string
}

// Convert reads an ibnetdiscover dump together with the hostname map and the
// spine list and writes the resulting diagram to opts.Output.
func Convert(ctx context.Context, opts ConvertOpts) error {
	style, err := diagram.LoadStyle(opts.StylePath)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", opts.StylePath, err)
	}

	var hostnames ib.Hostnames
	var spines ib.Spines

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		hostnames, err = loadFile(egCtx, opts.Hostnames, ib.LoadHostnames)
		if err != nil {
			return fmt.Errorf("hostname map %q: %w", opts.Hostnames, err)
		}

		return nil
	})
	eg.Go(func() error {
		var err error
		spines, err = loadFile(egCtx, opts.Spines, ib.LoadSpines)
		if err != nil {
			return fmt.Errorf("spine list %q: %w", opts.Spines, err)
		}

		return nil
	})
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("loading lookup tables: %w", err)
	}

	slog.Debug("Loaded lookup tables", "hostnames", len(hostnames), "spines", len(spines))

	topo, err := loadFile(ctx, opts.Topology, func(r io.Reader) (*ib.Topology, error) {
		return ib.Parse(r, hostnames, spines)
	})
	if err != nil {
		return fmt.Errorf("parsing topology %q: %w", opts.Topology, err)
	}

	stats := topo.Stats()
	slog.Info("Parsed topology", "nodes", topo.Len(), "spines", stats.Spines, "switches", stats.Switches, "hcas", stats.HCAs, "ports", stats.Links)

	out, err := diagram.Generate(topo, opts.Format, style)
	if err != nil {
		return fmt.Errorf("generating diagram: %w", err)
	}

	if opts.Output == Stdout {
		if _, err := io.WriteString(os.Stdout, out); err != nil {
			return fmt.Errorf("writing diagram: %w", err)
		}

		return nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Output), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(opts.Output, []byte(out), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("writing diagram: %w", err)
	}

	slog.Info("Generated diagram", "file", opts.Output, "format", opts.Format)

	return nil
}

func loadFile[T any](ctx context.Context, path string, load func(io.Reader) (T, error)) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("canceled: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("opening: %w", err)
	}
	defer f.Close()

	return load(f)
}
