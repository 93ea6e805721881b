// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package diagram

import (
	"fmt"
	"strings"

	"go.githedgehog.com/ibdiagram/pkg/ib"
	"go.githedgehog.com/ibdiagram/pkg/util/tmplutil"
)

var mermaidTmpl = tmplutil.Must("mermaid", `flowchart {{ .Style.RankDir }}

%% Style definitions
classDef spine  fill:{{ .Style.SpineColor }},stroke:#333,stroke-width:1px,color:#000
classDef sw     fill:{{ .Style.SwitchColor }},stroke:#333,stroke-width:1px,color:#000
classDef hca    fill:none,stroke:{{ .Style.HCAColor }},stroke-width:1px,color:#000

%% Fabric
{{- range .Groups }}
subgraph {{ .Name }}[" "]
	direction LR
{{- range .Nodes }}
	{{ .ID }}["{{ .Label }}"]:::{{ .Class }}
{{- end }}
end
{{- end }}

{{ range .Links -}}
{{ .From }} {{ .Arrow }}|"{{ .Label }}"| {{ .To }}
{{ end -}}
{{ range $i, $link := .Links -}}
linkStyle {{ $i }} stroke:{{ $link.Color }}
{{ end -}}
`, nil)

type mermaidNode struct {
	ID    string
	Label string
	Class string
}

type mermaidGroup struct {
	Name  string
	Nodes []mermaidNode
}

type mermaidLink struct {
	From  string
	To    string
	Arrow string
	Label string
	Color string
}

// GenerateMermaid renders the topology as a Mermaid flowchart. Mermaid has no
// record shapes so port numbers are put on the link labels instead.
func GenerateMermaid(topo *ib.Topology, style Style) (string, error) {
	links, err := cables(topo, style)
	if err != nil {
		return "", err
	}

	ids := map[string]string{}
	for idx, node := range topo.Nodes() {
		ids[node.ID] = fmt.Sprintf("n%d", idx)
	}

	layers := sortNodes(topo)
	groups := []mermaidGroup{}
	for _, group := range []struct {
		name  string
		class string
		nodes []*ib.Node
	}{
		{"Spines", "spine", layers.Spine},
		{"Switches", "sw", layers.Switch},
		{"HCAs", "hca", layers.HCA},
	} {
		if len(group.nodes) == 0 {
			continue
		}

		mg := mermaidGroup{Name: group.name}
		for _, node := range group.nodes {
			mg.Nodes = append(mg.Nodes, mermaidNode{
				ID:    ids[node.ID],
				Label: formatLabel(node.Label),
				Class: group.class,
			})
		}
		groups = append(groups, mg)
	}

	arrow := "-->"
	if style.ArrowHead == "none" {
		arrow = "---"
	}

	mlinks := make([]mermaidLink, 0, len(links))
	for _, link := range links {
		mlinks = append(mlinks, mermaidLink{
			From:  ids[link.From.ID],
			To:    ids[link.To.ID],
			Arrow: arrow,
			Label: fmt.Sprintf("%d-%d w%s", link.FromPort, link.ToPort, formatWeight(link.Weight)),
			Color: string(link.Color),
		})
	}

	out, err := mermaidTmpl.Execute(map[string]any{
		"Style":  style,
		"Groups": groups,
		"Links":  mlinks,
	})
	if err != nil {
		return "", fmt.Errorf("rendering Mermaid: %w", err)
	}

	return out, nil
}

func formatLabel(label string) string {
	return strings.ReplaceAll(label, `"`, "#quot;")
}
