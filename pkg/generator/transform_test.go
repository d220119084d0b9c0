/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"slices"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/go-enums/pkg/errors"
)

func TestTransformApply(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform
		input     string
		want      string
	}{
		{
			name:      "none keeps the name",
			transform: TransformNone,
			input:     "BrightRed",
			want:      "BrightRed",
		},
		{
			name:      "lower",
			transform: TransformLower,
			input:     "BrightRed",
			want:      "brightred",
		},
		{
			name:      "upper",
			transform: TransformUpper,
			input:     "BrightRed",
			want:      "BRIGHTRED",
		},
		{
			name:      "snake",
			transform: TransformSnake,
			input:     "BrightRed",
			want:      "bright_red",
		},
		{
			name:      "snake with acronym",
			transform: TransformSnake,
			input:     "HTTPServer",
			want:      "http_server",
		},
		{
			name:      "snake single word",
			transform: TransformSnake,
			input:     "Red",
			want:      "red",
		},
		{
			name:      "kebab",
			transform: TransformKebab,
			input:     "DeepSkyBlue",
			want:      "deep-sky-blue",
		},
		{
			name:      "title",
			transform: TransformTitle,
			input:     "RED",
			want:      "Red",
		},
		{
			name:      "out of range keeps the name",
			transform: Transform(99),
			input:     "BrightRed",
			want:      "BrightRed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transform.Apply(tt.input)
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "camel case",
			input: "BrightRed",
			want:  []string{"bright", "red"},
		},
		{
			name:  "acronym run",
			input: "HTTPServer",
			want:  []string{"http", "server"},
		},
		{
			name:  "trailing acronym",
			input: "parseURL",
			want:  []string{"parse", "url"},
		},
		{
			name:  "underscore separator",
			input: "Bright_Red",
			want:  []string{"bright", "red"},
		},
		{
			name:  "digits stay attached",
			input: "Http2Server",
			want:  []string{"http2", "server"},
		},
		{
			name:  "single word",
			input: "red",
			want:  []string{"red"},
		},
		{
			name:  "single letter",
			input: "A",
			want:  []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitWords(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("splitWords(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Transform
		wantErr bool
	}{
		{name: "none", input: "none", want: TransformNone},
		{name: "snake", input: "snake", want: TransformSnake},
		{name: "case folded", input: "KEBAB", want: TransformKebab},
		{name: "unknown label", input: "camel", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTransform(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTransform(%q) expected error, got %v", tt.input, got)
				}
				if !errors.IsInvalidRepresentation(err) {
					t.Errorf("ParseTransform(%q) error code = %v, want invalid representation",
						tt.input, errors.CodeOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTransform(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTransform(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransformString(t *testing.T) {
	if got := TransformSnake.String(); got != "snake" {
		t.Errorf("TransformSnake.String() = %q, want %q", got, "snake")
	}
	if got := Transform(99).String(); got != "Transform(99)" {
		t.Errorf("Transform(99).String() = %q, want %q", got, "Transform(99)")
	}
}

func TestTransformIsValid(t *testing.T) {
	for _, tr := range []Transform{TransformNone, TransformLower, TransformUpper,
		TransformSnake, TransformKebab, TransformTitle} {
		if !tr.IsValid() {
			t.Errorf("expected %v to be valid", tr)
		}
	}
	if numTransforms.IsValid() {
		t.Error("expected the count sentinel to be invalid")
	}
	if Transform(-1).IsValid() {
		t.Error("expected a negative value to be invalid")
	}
}

func TestTransformYAML(t *testing.T) {
	type doc struct {
		Transform Transform `yaml:"transform"`
	}

	out, err := yaml.Marshal(doc{Transform: TransformKebab})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(out), "transform: kebab\n"; got != want {
		t.Errorf("yaml = %q, want %q", got, want)
	}

	var in doc
	if err := yaml.Unmarshal([]byte("transform: SNAKE\n"), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if in.Transform != TransformSnake {
		t.Errorf("unmarshal = %v, want %v", in.Transform, TransformSnake)
	}

	if err := yaml.Unmarshal([]byte("transform: camel\n"), &in); err == nil {
		t.Error("expected error for unknown transform label")
	}
}

func TestSupportedTransforms(t *testing.T) {
	want := []string{"none", "lower", "upper", "snake", "kebab", "title"}
	if got := SupportedTransforms(); !slices.Equal(got, want) {
		t.Errorf("SupportedTransforms() = %v, want %v", got, want)
	}
}
