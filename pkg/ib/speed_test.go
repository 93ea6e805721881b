// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package ib_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.githedgehog.com/ibdiagram/pkg/ib"
)

func TestClassify(t *testing.T) {
	for _, test := range []struct {
		token  string
		weight float64
		color  ib.Color
	}{
		{"1xSDR", 2, ib.ColorRed},
		{"4xSDR", 8, ib.ColorRed},
		{"4xDDR", 16, ib.ColorRed},
		{"4xQDR", 32, ib.ColorBlue},
		{"4xFDR10", 32, ib.ColorRed},
		{"4xFDR", 54.56, ib.ColorGreen},
		{"3xFDR", 40.92, ib.ColorGreen},
		{"4xEDR", 96.96, ib.ColorGreen},
		{"1xEDR", 24.24, ib.ColorGreen},
		{"4xHDR", 200, ib.ColorGreen},
		{"2xNDR", 200, ib.ColorGreen},
		{"4xNDR", 400, ib.ColorGreen},
		{"4xXDR", 1000, ib.ColorGreen},
		{"12xQDR", 96, ib.ColorBlue},
	} {
		t.Run(test.token, func(t *testing.T) {
			weight, color, err := ib.Classify(test.token)
			require.NoError(t, err)
			require.Equal(t, test.weight, weight)
			require.Equal(t, test.color, color)
		})
	}
}

func TestClassifyUnsupported(t *testing.T) {
	for _, token := range []string{
		"",
		"4xqdr",
		"4xXYZ",
		"QDR",
		"4QDR",
		"xQDR",
		"4xFDR14",
		"4x QDR",
	} {
		t.Run(token, func(t *testing.T) {
			_, _, err := ib.Classify(token)
			require.ErrorIs(t, err, ib.ErrUnsupportedSpeed)
			require.ErrorContains(t, err, token)
		})
	}
}
