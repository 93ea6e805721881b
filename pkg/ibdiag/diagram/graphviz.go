// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package diagram

import (
	"fmt"
	"strings"
	"text/template"

	"go.githedgehog.com/ibdiagram/pkg/ib"
	"go.githedgehog.com/ibdiagram/pkg/util/tmplutil"
)

const (
	GraphName = "ibfabric"

	attrLabel = "label"

	ShapeRecord = "record"
	StyleFilled = "filled"
	StyleSolid  = "solid"
)

var dotTmpl = tmplutil.Must("dot", `digraph {{ q .Name }} {
	graph [rankdir={{ q .Style.RankDir }}, splines="true", nodesep="0.3", ranksep="2"];
	node [fontname={{ q .Style.FontName }}, fontsize="10"];
	edge [fontname={{ q .Style.FontName }}];

{{- range .Nodes }}
	{{ .ID }} [{{ .Attrs }}];
{{- end }}

	{rank="min"; {{ join " " .Spine }}}
	{rank="same"; {{ join " " .Switch }}}
	{rank="max"; {{ join " " .HCA }}}

{{- range .Edges }}
	{{ .From }} -> {{ .To }} [{{ .Attrs }}];
{{- end }}
}
`, template.FuncMap{
	"q": dotQuote,
})

type attr struct {
	key, value string
}

type dotStatement struct {
	ID    string
	From  string
	To    string
	Attrs string
}

// GenerateDOT renders the topology as a Graphviz digraph: one record node per
// fabric node, rank groups for spines, other switches and HCAs, and one edge
// per cable attached to the port cells on both ends.
func GenerateDOT(topo *ib.Topology, style Style) (string, error) {
	links, err := cables(topo, style)
	if err != nil {
		return "", err
	}

	layers := sortNodes(topo)

	nodes := make([]dotStatement, 0, topo.Len())
	for _, node := range topo.Nodes() {
		nodes = append(nodes, dotStatement{
			ID:    dotQuote(node.ID),
			Attrs: formatAttrs(nodeAttrs(node, style)...),
		})
	}

	edges := make([]dotStatement, 0, len(links))
	for _, link := range links {
		edges = append(edges, dotStatement{
			From: dotPort(link.From.ID, link.FromPort),
			To:   dotPort(link.To.ID, link.ToPort),
			Attrs: formatAttrs(
				attr{"color", string(link.Color)},
				attr{"arrowhead", style.ArrowHead},
				attr{"weight", formatWeight(link.Weight)},
			),
		})
	}

	out, err := dotTmpl.Execute(map[string]any{
		"Name":   GraphName,
		"Style":  style,
		"Nodes":  nodes,
		"Spine":  rankMembers(layers.Spine),
		"Switch": rankMembers(layers.Switch),
		"HCA":    rankMembers(layers.HCA),
		"Edges":  edges,
	})
	if err != nil {
		return "", fmt.Errorf("rendering DOT: %w", err)
	}

	return out, nil
}

func nodeAttrs(node *ib.Node, style Style) []attr {
	tier := tierOf(node)
	attrs := []attr{
		{attrLabel, PortLabel(node.Label, node.Ports)},
		{"shape", ShapeRecord},
	}

	switch tier {
	case TierSpine:
		attrs = append(attrs,
			attr{"style", StyleFilled},
			attr{"fillcolor", style.tierColor(tier)},
			attr{"root", "true"},
		)
	case TierSwitch:
		attrs = append(attrs,
			attr{"style", StyleFilled},
			attr{"fillcolor", style.tierColor(tier)},
		)
	case TierHCA:
		attrs = append(attrs,
			attr{"style", StyleSolid},
			attr{"color", style.tierColor(tier)},
		)
	}

	return append(attrs, attr{"rank", fmt.Sprint(int(tier))})
}

func rankMembers(nodes []*ib.Node) []string {
	res := make([]string, 0, len(nodes))
	for _, node := range nodes {
		res = append(res, dotQuote(node.ID)+";")
	}

	return res
}

func formatAttrs(attrs ...attr) string {
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if a.key == attrLabel {
			parts = append(parts, a.key+"="+dotLabel(a.value))
		} else {
			parts = append(parts, a.key+"="+dotQuote(a.value))
		}
	}

	return strings.Join(parts, ", ")
}

func dotPort(id string, port int) string {
	return fmt.Sprintf("%s:%s", dotQuote(id), dotQuote(fmt.Sprint(port)))
}

// dotQuote makes a DOT double-quoted string for identifiers and plain
// attribute values.
func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)

	return dotLabel(s)
}

// dotLabel quotes a record label. Backslashes are kept as is since they
// already escape record field characters.
func dotLabel(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)

	return `"` + s + `"`
}
