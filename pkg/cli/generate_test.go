/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/go-enums/pkg/generator"
	"github.com/NVIDIA/go-enums/pkg/header"
	"github.com/NVIDIA/go-enums/pkg/serializer"
)

func TestGenerateCmd_CommandStructure(t *testing.T) {
	cmd := generateCmd()

	if cmd.Name != "generate" {
		t.Errorf("Name = %v, want generate", cmd.Name)
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}
	if cmd.Description == "" {
		t.Error("Description should not be empty")
	}

	requiredFlags := []string{
		"type", "trim-prefix", "transform", "json", "case-insensitive",
		"sentinel-suffix", "manifest", "out-dir", "timeout", "output", "format",
	}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}

	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestGenerateCommandRun(t *testing.T) {
	dir := t.TempDir()
	writeTestSource(t, dir, "palette.go", colorFixture)
	resultPath := filepath.Join(t.TempDir(), "result.json")

	args := []string{"enumgen", "generate",
		"--type", "Color",
		"--trim-prefix", "Color",
		"--transform", "snake",
		"--output", resultPath,
		"--format", "json",
		dir,
	}
	if err := rootCmd().Run(context.Background(), args); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "color_enums.go"))
	if err != nil {
		t.Fatalf("failed to read generated file: %v", err)
	}
	for _, want := range []string{
		"Code generated by enumgen. DO NOT EDIT.",
		"package palette",
		`enums.MustNew[Color]([]string{"red", "green", "blue"}`,
		"enums.WithCount(int(ColorEnd))",
		"func ParseColor(s string) (Color, error)",
	} {
		if !strings.Contains(string(content), want) {
			t.Errorf("generated file missing %q", want)
		}
	}

	result, err := serializer.FromFile[generator.Result](resultPath)
	if err != nil {
		t.Fatalf("failed to read result document: %v", err)
	}
	if result.Kind != header.KindGenerationResult {
		t.Errorf("Kind = %q, want %q", result.Kind, header.KindGenerationResult)
	}
	if result.RunID == "" {
		t.Error("RunID should not be empty")
	}
	if result.Summary.Types != 1 || result.Summary.Files != 1 {
		t.Errorf("Summary = %+v, want 1 type and 1 file", result.Summary)
	}
	if len(result.Files) != 1 || result.Files[0].Type != "Color" {
		t.Errorf("Files = %+v, want one entry for Color", result.Files)
	}
}

func TestGenerateCommandRunManifest(t *testing.T) {
	dir := t.TempDir()
	writeTestSource(t, dir, "palette.go", colorFixture)
	manifestPath := writeTestSource(t, t.TempDir(), "enums.yaml", `kind: EnumManifest
apiVersion: enums.nvidia.com/v1alpha1
types:
  - type: Color
    trimPrefix: Color
    transform: lower
    labels:
      ColorRed: crimson
`)
	resultPath := filepath.Join(t.TempDir(), "result.yaml")

	args := []string{"enumgen", "generate",
		"--manifest", manifestPath,
		"--output", resultPath,
		"--format", "yaml",
		dir,
	}
	if err := rootCmd().Run(context.Background(), args); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "color_enums.go"))
	if err != nil {
		t.Fatalf("failed to read generated file: %v", err)
	}
	if !strings.Contains(string(content), `[]string{"crimson", "green", "blue"}`) {
		t.Errorf("generated file missing manifest labels:\n%s", content)
	}
}

func TestGenerateCommandRunDeclarationError(t *testing.T) {
	dir := t.TempDir()
	writeTestSource(t, dir, "shade.go", `package palette

type Shade int

const (
	ShadeLight Shade = 0
	ShadeDark  Shade = 2
)
`)

	args := []string{"enumgen", "generate",
		"--type", "Shade",
		"--output", filepath.Join(t.TempDir(), "result.json"),
		"--format", "json",
		dir,
	}
	err := rootCmd().Run(context.Background(), args)
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "generation failed") {
		t.Errorf("error = %v, want error containing %q", err, "generation failed")
	}
	if !strings.Contains(err.Error(), "contiguous") {
		t.Errorf("error = %v, want error containing %q", err, "contiguous")
	}
}
