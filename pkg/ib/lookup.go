// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package ib

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Hostnames maps node identifiers to host names
type Hostnames map[string]string

// Spines is the set of switch identifiers forming the top layer of the fabric
type Spines map[string]bool

func (s Spines) Contains(id string) bool {
	return s[id]
}

// LoadHostnames reads "<identifier> <hostname>" lines. Hostnames may be
// double-quoted as in node-name-map files.
func LoadHostnames(r io.Reader) (Hostnames, error) {
	hostnames := Hostnames{}

	err := scanLookup(r, func(lineNo int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("line %d: expected identifier and hostname, got %q", lineNo, strings.Join(fields, " ")) //nolint:goerr113
		}

		hostnames[fields[0]] = strings.Trim(strings.Join(fields[1:], " "), `"`)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading hostnames: %w", err)
	}

	return hostnames, nil
}

// LoadSpines reads one switch identifier per line.
func LoadSpines(r io.Reader) (Spines, error) {
	spines := Spines{}

	err := scanLookup(r, func(_ int, fields []string) error {
		spines[fields[0]] = true

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading spines: %w", err)
	}

	return spines, nil
}

func scanLookup(r io.Reader, fn func(lineNo int, fields []string) error) error {
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := fn(lineNo, strings.Fields(line)); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	return nil
}
