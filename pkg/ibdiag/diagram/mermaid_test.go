// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.githedgehog.com/ibdiagram/pkg/ib"
)

func TestGenerateMermaid(t *testing.T) {
	topo := parse(t, roundTripDump, nil, nil)

	out, err := GenerateMermaid(topo, DefaultStyle)
	require.NoError(t, err)
	require.Equal(t, `flowchart TB

%% Style definitions
classDef spine  fill:orange,stroke:#333,stroke-width:1px,color:#000
classDef sw     fill:cyan,stroke:#333,stroke-width:1px,color:#000
classDef hca    fill:none,stroke:grey,stroke-width:1px,color:#000

%% Fabric
subgraph Switches[" "]
	direction LR
	n0["Sw1"]:::sw
end
subgraph HCAs[" "]
	direction LR
	n1["Host1"]:::hca
end

n0 -->|"1-1 w2"| n1
linkStyle 0 stroke:red
`, out)
}

func TestGenerateMermaidSpinesAndLinks(t *testing.T) {
	in := `Switch 4 "S1" # "spine \"1\""
[1] "L1"[3] 4xEDR
Switch 4 "L1" # "leaf"
[3] "S1"[1] 4xEDR
`
	topo := parse(t, strings.ReplaceAll(in, `\"`, `'`), nil, ib.Spines{"S1": true})

	style := DefaultStyle
	style.ArrowHead = "none"
	style.RankDir = "LR"

	out, err := GenerateMermaid(topo, style)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "flowchart LR\n"))
	assert.Contains(t, out, "subgraph Spines[\" \"]\n\tdirection LR\n\tn0[\"spine '1'\"]:::spine\nend\n")
	assert.Contains(t, out, "n1[\"leaf\"]:::sw")
	assert.NotContains(t, out, "HCAs")
	assert.Contains(t, out, "n1 ---|\"3-1 w96.96\"| n0\n")
	assert.Contains(t, out, "linkStyle 0 stroke:black\n")
	assert.Equal(t, 1, strings.Count(out, "linkStyle"))
}

func TestGenerateMermaidDanglingLink(t *testing.T) {
	topo := parse(t, "Ca 1 \"B\" # \"Host1\"\n[1] \"A\"[1] 4xQDR\n", nil, nil)

	_, err := GenerateMermaid(topo, DefaultStyle)
	require.ErrorIs(t, err, ib.ErrDanglingLink)
}

func TestFormatLabel(t *testing.T) {
	require.Equal(t, "say #quot;hi#quot;", formatLabel(`say "hi"`))
}
