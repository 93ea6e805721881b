// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package diagram

import (
	"fmt"
	"slices"

	"go.githedgehog.com/ibdiagram/pkg/ib"
)

// Generate renders the topology in the requested format.
func Generate(topo *ib.Topology, format Format, style Style) (string, error) {
	if !slices.Contains(Formats, format) {
		return "", fmt.Errorf("unsupported diagram format: %s", format) //nolint:goerr113
	}

	switch format {
	case FormatDot:
		out, err := GenerateDOT(topo, style)
		if err != nil {
			return "", fmt.Errorf("generating DOT diagram: %w", err)
		}

		return out, nil
	case FormatMermaid:
		out, err := GenerateMermaid(topo, style)
		if err != nil {
			return "", fmt.Errorf("generating Mermaid diagram: %w", err)
		}

		return out, nil
	default:
		return "", fmt.Errorf("unsupported diagram format: %s", format) //nolint:goerr113
	}
}
