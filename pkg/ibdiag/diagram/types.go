// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package diagram

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"go.githedgehog.com/ibdiagram/pkg/ib"
)

type Format string

const (
	FormatDot     Format = "dot"
	FormatMermaid Format = "mermaid"
)

var Formats = []Format{
	FormatDot,
	FormatMermaid,
}

type Tier int

const (
	TierSpine Tier = iota
	TierSwitch
	TierHCA
)

func tierOf(node *ib.Node) Tier {
	switch {
	case node.IsSpine():
		return TierSpine
	case node.IsSwitch():
		return TierSwitch
	default:
		return TierHCA
	}
}

type TieredNodes struct {
	Spine  []*ib.Node
	Switch []*ib.Node
	HCA    []*ib.Node
}

// sortNodes splits nodes into tiers keeping the topology order within a tier.
func sortNodes(topo *ib.Topology) TieredNodes {
	nodes := topo.Nodes()
	inTier := func(tier Tier) func(*ib.Node, int) bool {
		return func(node *ib.Node, _ int) bool {
			return tierOf(node) == tier
		}
	}

	return TieredNodes{
		Spine:  lo.Filter(nodes, inTier(TierSpine)),
		Switch: lo.Filter(nodes, inTier(TierSwitch)),
		HCA:    lo.Filter(nodes, inTier(TierHCA)),
	}
}

// Cable is a single physical link picked from the two port entries that
// describe it.
type Cable struct {
	From     *ib.Node
	FromPort int
	To       *ib.Node
	ToPort   int
	Weight   float64
	Color    ib.Color
}

// cables walks all ports in topology order and returns one Cable per physical
// link. Of the two halves only the one whose "<id> <port>" key sorts strictly
// before the remote's key is kept; keys are compared as strings.
func cables(topo *ib.Topology, style Style) ([]Cable, error) {
	res := []Cable{}

	for _, node := range topo.Nodes() {
		for _, port := range node.Links {
			remote, ok := topo.Get(port.Remote)
			if !ok {
				return nil, fmt.Errorf("%w: port %d of %q points to unknown node %q", ib.ErrDanglingLink, port.Local, node.ID, port.Remote)
			}

			color := port.Color
			if node.IsSwitch() && remote.IsSwitch() {
				color = ib.Color(style.SwitchLinkColor)
			}

			if fmt.Sprintf("%s %d", node.ID, port.Local) >= fmt.Sprintf("%s %d", remote.ID, port.RemotePort) {
				continue
			}

			res = append(res, Cable{
				From:     node,
				FromPort: port.Local,
				To:       remote,
				ToPort:   port.RemotePort,
				Weight:   port.Weight,
				Color:    color,
			})
		}
	}

	return res, nil
}

func formatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'f', -1, 64)
}
