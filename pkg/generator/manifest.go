/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/go-enums/pkg/defaults"
	"github.com/NVIDIA/go-enums/pkg/errors"
	"github.com/NVIDIA/go-enums/pkg/header"
	"github.com/NVIDIA/go-enums/pkg/serializer"
	"github.com/NVIDIA/go-enums/pkg/validator"
)

// Manifest declares generation settings for a set of enumeration types.
//
// Manifests are YAML or JSON resources with the standard header:
//
//	kind: EnumManifest
//	apiVersion: enums.nvidia.com/v1alpha1
//	minVersion: ">= 0.2.0"
//	types:
//	  - type: Color
//	    trimPrefix: Color
//	    transform: lower
//	    caseInsensitive: true
//	    aliases:
//	      - name: crimson
//	        value: ColorRed
type Manifest struct {
	header.Header `json:",inline" yaml:",inline"`

	// MinVersion constrains the enumgen version allowed to process the
	// manifest. A bare version means a lower bound.
	MinVersion string `json:"minVersion,omitempty" yaml:"minVersion,omitempty"`

	// Types lists the per-type generation settings.
	Types []TypeSpec `json:"types" yaml:"types"`
}

// TypeSpec holds the generation settings for one enumeration type.
type TypeSpec struct {
	// Type is the enumeration type name.
	Type string `json:"type" yaml:"type"`

	// TrimPrefix is removed from constant names before the transform runs.
	TrimPrefix string `json:"trimPrefix,omitempty" yaml:"trimPrefix,omitempty"`

	// Transform derives labels from constant names (defaults to none).
	Transform Transform `json:"transform,omitempty" yaml:"transform,omitempty"`

	// CaseInsensitive folds case when parsing labels.
	CaseInsensitive bool `json:"caseInsensitive,omitempty" yaml:"caseInsensitive,omitempty"`

	// JSON adds MarshalJSON/UnmarshalJSON methods to the generated code.
	JSON bool `json:"json,omitempty" yaml:"json,omitempty"`

	// Labels overrides derived labels by constant name.
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Aliases adds alternate parse-only labels for declared constants.
	Aliases []AliasSpec `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// AliasSpec maps an alternate label to a declared constant.
type AliasSpec struct {
	// Name is the alias label.
	Name string `json:"name" yaml:"name"`

	// Value is the constant name the alias resolves to.
	Value string `json:"value" yaml:"value"`
}

// LoadManifest reads a manifest file, checks its header and minVersion
// gate, and returns the declared settings. A directory path resolves to
// the standard manifest name inside it, so go:generate directives can
// pass the package directory.
func LoadManifest(path, toolVersion string) (*Manifest, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, defaults.DefaultManifestName)
	}

	m, err := serializer.FromFile[Manifest](path)
	if err != nil {
		return nil, err
	}

	if m.Kind != header.KindEnumManifest {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidManifest,
			"unexpected manifest kind",
			map[string]any{"kind": string(m.Kind), "want": string(header.KindEnumManifest), "path": path})
	}
	if m.APIVersion != "" && m.APIVersion != header.APIVersion {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidManifest,
			"unsupported manifest apiVersion",
			map[string]any{"apiVersion": m.APIVersion, "want": header.APIVersion, "path": path})
	}
	if len(m.Types) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidManifest,
			"manifest declares no types", map[string]any{"path": path})
	}

	seen := make(map[string]bool, len(m.Types))
	for i, ts := range m.Types {
		if strings.TrimSpace(ts.Type) == "" {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidManifest,
				"manifest type entry missing a name", map[string]any{"index": i, "path": path})
		}
		if seen[ts.Type] {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidManifest,
				"manifest declares a type twice", map[string]any{"type": ts.Type, "path": path})
		}
		seen[ts.Type] = true
	}

	if m.MinVersion != "" {
		if err := validator.CheckMinVersion(m.MinVersion, toolVersion); err != nil {
			return nil, err
		}
	}

	slog.Debug("manifest loaded",
		"path", path,
		"types", len(m.Types),
		"minVersion", m.MinVersion)

	return m, nil
}

// SpecFor returns the settings for a type, falling back to defaults when
// the manifest does not mention it. Safe to call on a nil manifest.
func (m *Manifest) SpecFor(name string) TypeSpec {
	if m != nil {
		for _, ts := range m.Types {
			if ts.Type == name {
				return ts
			}
		}
	}
	return TypeSpec{Type: name}
}

// TypeNames returns the types the manifest declares, in order.
func (m *Manifest) TypeNames() []string {
	names := make([]string, 0, len(m.Types))
	for _, ts := range m.Types {
		names = append(names, ts.Type)
	}
	return names
}
