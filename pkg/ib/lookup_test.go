// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package ib_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.githedgehog.com/ibdiagram/pkg/ib"
)

func TestLoadHostnames(t *testing.T) {
	in := strings.Join([]string{
		"# node name map",
		"",
		"B host7",
		"  H-0002c903000b3c5c   \"compute 01\"  ",
		"#C ignored",
		"0x0002c903000b3c5e \"node02\"",
	}, "\n")

	hostnames, err := ib.LoadHostnames(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, ib.Hostnames{
		"B":                  "host7",
		"H-0002c903000b3c5c": "compute 01",
		"0x0002c903000b3c5e": "node02",
	}, hostnames)
}

func TestLoadHostnamesMissingHostname(t *testing.T) {
	_, err := ib.LoadHostnames(strings.NewReader("B host7\nC\n"))
	require.ErrorContains(t, err, "line 2")
}

func TestLoadSpines(t *testing.T) {
	in := "# spines\nA\n\n  S-0002c903008e4900  # core\n#B\n"

	spines, err := ib.LoadSpines(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, ib.Spines{"A": true, "S-0002c903008e4900": true}, spines)
	require.True(t, spines.Contains("A"))
	require.False(t, spines.Contains("B"))
}

func TestLoadEmpty(t *testing.T) {
	hostnames, err := ib.LoadHostnames(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, hostnames)

	spines, err := ib.LoadSpines(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, spines)
}
