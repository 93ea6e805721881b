// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpSkipsArgumentCheck(t *testing.T) {
	for _, tt := range []struct {
		name string
		args []string
		want string
	}{
		{
			name: "long help flag",
			args: []string{"ibdiagram", "--help"},
			want: "TOPOLOGY MAP SPINES OUTPUT",
		},
		{
			name: "short help flag",
			args: []string{"ibdiagram", "-h"},
			want: "TOPOLOGY MAP SPINES OUTPUT",
		},
		{
			name: "version flag",
			args: []string{"ibdiagram", "-V"},
			want: "ibdiagram version",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(context.Background())
			buf := &bytes.Buffer{}
			app.Writer = buf

			require.NoError(t, app.Run(tt.args))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNoHelpCommand(t *testing.T) {
	app := newApp(context.Background())
	require.True(t, app.HideHelpCommand)

	buf := &bytes.Buffer{}
	app.Writer = buf
	require.NoError(t, app.Run([]string{"ibdiagram", "--help"}))
	assert.NotContains(t, buf.String(), "COMMANDS:")
}

func TestRunWritesDiagram(t *testing.T) {
	dir := t.TempDir()
	topo := filepath.Join(dir, "topology.txt")
	hostnames := filepath.Join(dir, "map.txt")
	spines := filepath.Join(dir, "spines.txt")
	out := filepath.Join(dir, "out", "fabric.dot")

	require.NoError(t, os.WriteFile(topo, []byte(`Switch 2 "A" # "Sw1"
[1] ... "B"[1] ... 1xSDR
Ca 1 "B" # "Host1"
[1] ... "A"[1] ... 1xSDR
`), 0o600))
	require.NoError(t, os.WriteFile(hostnames, []byte("B node-1\n"), 0o600))
	require.NoError(t, os.WriteFile(spines, []byte("A\n"), 0o600))

	app := newApp(context.Background())
	require.NoError(t, app.Run([]string{"ibdiagram", "--brief", topo, hostnames, spines, out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `digraph "ibfabric" {`)
	assert.Contains(t, string(data), `{rank="min"; "A";}`)
}
