/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/go-enums/pkg/errors"
	"github.com/NVIDIA/go-enums/pkg/header"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, "enums.yaml", `kind: EnumManifest
apiVersion: enums.nvidia.com/v1alpha1
minVersion: 0.2.0
types:
  - type: Color
    trimPrefix: Color
    transform: snake
    caseInsensitive: true
    json: true
    labels:
      ColorRed: crimson
    aliases:
      - name: grey
        value: ColorGray
  - type: Status
`)

	m, err := LoadManifest(path, "0.3.0")
	assert.NoError(t, err)
	assert.NotNil(t, m)
	assert.Equal(t, header.KindEnumManifest, m.Kind)
	assert.Equal(t, "0.2.0", m.MinVersion)
	assert.Len(t, m.Types, 2)

	ts := m.Types[0]
	assert.Equal(t, "Color", ts.Type)
	assert.Equal(t, "Color", ts.TrimPrefix)
	assert.Equal(t, TransformSnake, ts.Transform)
	assert.True(t, ts.CaseInsensitive)
	assert.True(t, ts.JSON)
	assert.Equal(t, "crimson", ts.Labels["ColorRed"])
	assert.Equal(t, []AliasSpec{{Name: "grey", Value: "ColorGray"}}, ts.Aliases)

	assert.Equal(t, []string{"Color", "Status"}, m.TypeNames())
}

func TestLoadManifestJSON(t *testing.T) {
	path := writeManifest(t, "enums.json", `{
  "kind": "EnumManifest",
  "types": [
    {"type": "Color", "transform": "lower"}
  ]
}`)

	m, err := LoadManifest(path, "0.3.0")
	assert.NoError(t, err)
	assert.Len(t, m.Types, 1)
	assert.Equal(t, TransformLower, m.Types[0].Transform)
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "wrong kind",
			content: `kind: Recipe
types:
  - type: Color
`,
		},
		{
			name: "unsupported apiVersion",
			content: `kind: EnumManifest
apiVersion: enums.nvidia.com/v2
types:
  - type: Color
`,
		},
		{
			name: "no types",
			content: `kind: EnumManifest
types: []
`,
		},
		{
			name: "empty type name",
			content: `kind: EnumManifest
types:
  - type: ""
`,
		},
		{
			name: "duplicate type",
			content: `kind: EnumManifest
types:
  - type: Color
  - type: Color
`,
		},
		{
			name: "minVersion not satisfied",
			content: `kind: EnumManifest
minVersion: 9.0.0
types:
  - type: Color
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, "enums.yaml", tt.content)

			m, err := LoadManifest(path, "0.3.0")
			assert.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.IsInvalidManifest(err),
				"error code = %v, want invalid manifest", errors.CodeOf(err))
		})
	}
}

func TestLoadManifestMinVersionSkippedForDevBuilds(t *testing.T) {
	path := writeManifest(t, "enums.yaml", `kind: EnumManifest
minVersion: 9.0.0
types:
  - type: Color
`)

	// Unparseable tool versions (local dev builds) bypass the gate.
	m, err := LoadManifest(path, "dev")
	assert.NoError(t, err)
	assert.NotNil(t, m)
}

func TestLoadManifestMissingFile(t *testing.T) {
	m, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"), "0.3.0")
	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestLoadManifestFromDirectory(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "enums.yaml"), []byte(`kind: EnumManifest
types:
  - type: Color
`), 0o644)
	assert.NoError(t, err)

	// A directory path resolves to the standard manifest name inside it.
	m, err := LoadManifest(dir, "0.3.0")
	assert.NoError(t, err)
	assert.Len(t, m.Types, 1)
	assert.Equal(t, "Color", m.Types[0].Type)
}

func TestManifestSpecFor(t *testing.T) {
	m := &Manifest{
		Types: []TypeSpec{
			{Type: "Color", TrimPrefix: "Color", Transform: TransformSnake},
		},
	}

	got := m.SpecFor("Color")
	assert.Equal(t, "Color", got.TrimPrefix)
	assert.Equal(t, TransformSnake, got.Transform)

	// Unknown types fall back to bare defaults.
	got = m.SpecFor("Status")
	assert.Equal(t, TypeSpec{Type: "Status"}, got)

	// Safe on a nil manifest.
	var nilManifest *Manifest
	got = nilManifest.SpecFor("Status")
	assert.Equal(t, TypeSpec{Type: "Status"}, got)
}
