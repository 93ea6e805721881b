// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package ib

type NodeType string

const (
	NodeTypeSwitch NodeType = "switch"
	NodeTypeHCA    NodeType = "hca"
)

type SwitchType string

const (
	SwitchTypeNone  SwitchType = ""
	SwitchTypeSpine SwitchType = "spine"
)

const KeywordSwitch = "Switch"

// Port is one directed half of a cable as seen from the owning node. The
// reverse half is recorded separately on the remote node.
type Port struct {
	Local      int
	Remote     string
	RemotePort int
	Weight     float64
	Color      Color
}

type Node struct {
	ID         string
	Ports      int
	Label      string
	Type       NodeType
	SwitchType SwitchType
	Links      []Port
}

func (n *Node) IsSwitch() bool {
	return n.Type == NodeTypeSwitch
}

func (n *Node) IsSpine() bool {
	return n.Type == NodeTypeSwitch && n.SwitchType == SwitchTypeSpine
}

// Topology keeps nodes in the order their identifiers were first declared.
type Topology struct {
	order []string
	nodes map[string]*Node
}

func NewTopology() *Topology {
	return &Topology{
		nodes: map[string]*Node{},
	}
}

// set adds the node or replaces a previous declaration of the same
// identifier, keeping the original position.
func (t *Topology) set(node *Node) {
	if _, exist := t.nodes[node.ID]; !exist {
		t.order = append(t.order, node.ID)
	}
	t.nodes[node.ID] = node
}

func (t *Topology) Get(id string) (*Node, bool) {
	node, ok := t.nodes[id]

	return node, ok
}

func (t *Topology) Nodes() []*Node {
	nodes := make([]*Node, 0, len(t.order))
	for _, id := range t.order {
		nodes = append(nodes, t.nodes[id])
	}

	return nodes
}

func (t *Topology) Len() int {
	return len(t.order)
}

type Stats struct {
	Switches int
	Spines   int
	HCAs     int
	Links    int
}

// Stats counts nodes per tier and port entries (both halves of every cable).
func (t *Topology) Stats() Stats {
	stats := Stats{}
	for _, node := range t.Nodes() {
		switch {
		case node.IsSpine():
			stats.Spines++
		case node.IsSwitch():
			stats.Switches++
		default:
			stats.HCAs++
		}
		stats.Links += len(node.Links)
	}

	return stats
}
