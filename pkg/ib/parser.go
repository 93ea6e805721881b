// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package ib

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

const maxLineSize = 1024 * 1024

var (
	// Switch 36 "S-0002c903008e4900" # "MF0;sw-1:SX6036/U1" enhanced port 0 lid 3 lmc 0
	reHeader = regexp.MustCompile(`^\s*(\S+)\s+(\d+)\s+"([^"]*)"\s+#\s+"([^"]*)"`)
	// [1] "H-0002c903000b3c5e"[1](2c903000b3c5f) # "node01 HCA-1" lid 3 4xQDR
	rePort = regexp.MustCompile(`^\s*\[(\d+)\].*?"([^"]+)"\[(\d+)\].*\s(\S+)\s*$`)
)

// parser holds the state of a single Parse call. current is nil until the
// first node header has been seen.
type parser struct {
	hostnames Hostnames
	spines    Spines
	topo      *Topology
	current   *Node
}

// Parse reads an ibnetdiscover dump and builds the fabric topology. Lines that
// are neither node headers nor port lines are skipped.
func Parse(r io.Reader, hostnames Hostnames, spines Spines) (*Topology, error) {
	p := &parser{
		hostnames: hostnames,
		spines:    spines,
		topo:      NewTopology(),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		if err := p.line(scanner.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading topology: %w", err)
	}

	return p.topo, nil
}

func (p *parser) line(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	if m := reHeader.FindStringSubmatch(line); m != nil {
		return p.header(m[1], m[2], m[3], m[4])
	}

	if m := rePort.FindStringSubmatch(line); m != nil {
		return p.port(m[1], m[2], m[3], m[4])
	}

	return nil
}

func (p *parser) header(keyword, ports, id, desc string) error {
	count, err := strconv.Atoi(ports)
	if err != nil {
		return fmt.Errorf("port count %q: %w", ports, err)
	}

	node := &Node{
		ID:    id,
		Ports: count,
		Label: desc,
	}

	if keyword == KeywordSwitch {
		node.Type = NodeTypeSwitch
		if p.spines.Contains(id) {
			node.SwitchType = SwitchTypeSpine
		}
	} else {
		node.Type = NodeTypeHCA
		if hostname, ok := p.hostnames[id]; ok {
			node.Label = hostname
			if fields := strings.Fields(desc); len(fields) > 0 {
				node.Label += " " + fields[0]
			}
		}
	}

	if _, exist := p.topo.Get(id); exist {
		slog.Debug("Node redeclared, dropping previous ports", "id", id)
	}

	p.topo.set(node)
	p.current = node

	slog.Debug("Parsed node", "id", id, "type", node.Type, "spine", node.IsSpine(), "ports", count, "label", node.Label)

	return nil
}

func (p *parser) port(local, remote, remotePort, speed string) error {
	if p.current == nil {
		return fmt.Errorf("%w: port line for %q before any node header", ErrMalformedTopology, remote)
	}

	localNum, err := strconv.Atoi(local)
	if err != nil {
		return fmt.Errorf("local port %q: %w", local, err)
	}
	remoteNum, err := strconv.Atoi(remotePort)
	if err != nil {
		return fmt.Errorf("remote port %q: %w", remotePort, err)
	}

	weight, color, err := Classify(speed)
	if err != nil {
		return fmt.Errorf("port %d of %q: %w", localNum, p.current.ID, err)
	}

	p.current.Links = append(p.current.Links, Port{
		Local:      localNum,
		Remote:     remote,
		RemotePort: remoteNum,
		Weight:     weight,
		Color:      color,
	})

	return nil
}
