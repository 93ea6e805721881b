// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package ib

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

type Color string

const (
	ColorRed   Color = "red"
	ColorBlue  Color = "blue"
	ColorGreen Color = "green"
)

type rate struct {
	perLane float64
	color   Color
}

// Per-lane signaling rates in Gb/s, keyed by InfiniBand rate class
var rates = map[string]rate{
	"SDR":   {2, ColorRed},
	"DDR":   {4, ColorRed},
	"QDR":   {8, ColorBlue},
	"FDR10": {8, ColorRed},
	"FDR":   {13.64, ColorGreen},
	"EDR":   {24.24, ColorGreen},
	"HDR":   {50, ColorGreen},
	"NDR":   {100, ColorGreen},
	"XDR":   {250, ColorGreen},
}

var reSpeed = regexp.MustCompile(`^(\d+)x(\S+)$`)

// Classify turns a link speed token such as "4xQDR" into the routing weight
// (lanes times per-lane rate) and the display color of the link.
func Classify(token string) (float64, Color, error) {
	m := reSpeed.FindStringSubmatch(token)
	if m == nil {
		return 0, "", fmt.Errorf("%w: %q", ErrUnsupportedSpeed, token)
	}

	r, ok := rates[m[2]]
	if !ok {
		return 0, "", fmt.Errorf("%w: %q: unknown rate class %q", ErrUnsupportedSpeed, token, m[2])
	}

	lanes, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q: lane count: %w", ErrUnsupportedSpeed, token, err)
	}

	return math.Round(float64(lanes)*r.perLane*100) / 100, r.color, nil
}
