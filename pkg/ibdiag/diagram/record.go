// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package diagram

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reFieldBreak   = regexp.MustCompile(`[ ;:]+`)
	recordReplacer = strings.NewReplacer(
		`\`, `\\`,
		`{`, `\{`,
		`}`, `\}`,
		`<`, `\<`,
		`>`, `\>`,
		`|`, `\|`,
	)
)

// PortLabel builds a Graphviz record label for a node: the title split into
// fields on runs of spaces, ';' and ':' as the first row, followed by one row
// per pair of ports. Every port cell is addressable by its port number so
// edges can be attached as "node":"port".
func PortLabel(label string, ports int) string {
	var b strings.Builder

	b.WriteString("{{")
	b.WriteString(reFieldBreak.ReplaceAllString(recordReplacer.Replace(label), "|"))
	b.WriteString("}")

	for port := 1; port <= ports; port += 2 {
		if port+1 <= ports {
			fmt.Fprintf(&b, "|{<%d> %02d|<%d> %02d}", port, port, port+1, port+1)
		} else {
			fmt.Fprintf(&b, "|{<%d> %02d}", port, port)
		}
	}

	b.WriteString("}")

	return b.String()
}
