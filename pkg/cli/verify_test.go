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

	"github.com/NVIDIA/go-enums/pkg/serializer"
	"github.com/NVIDIA/go-enums/pkg/validator"
)

func TestVerifyCmd_CommandStructure(t *testing.T) {
	cmd := verifyCmd()

	if cmd.Name != "verify" {
		t.Errorf("Name = %v, want verify", cmd.Name)
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}
	if cmd.Description == "" {
		t.Error("Description should not be empty")
	}

	requiredFlags := []string{"type", "manifest", "timeout", "output", "format"}
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

func TestVerifyCommandRun(t *testing.T) {
	dir := t.TempDir()
	writeTestSource(t, dir, "palette.go", colorFixture)
	settings := []string{
		"--type", "Color",
		"--trim-prefix", "Color",
		"--transform", "snake",
	}

	genArgs := append([]string{"enumgen", "generate"}, settings...)
	genArgs = append(genArgs,
		"--output", filepath.Join(t.TempDir(), "result.json"),
		"--format", "json",
		dir)
	if err := rootCmd().Run(context.Background(), genArgs); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	verifyPath := filepath.Join(t.TempDir(), "verification.json")
	verifyArgs := append([]string{"enumgen", "verify"}, settings...)
	verifyArgs = append(verifyArgs,
		"--output", verifyPath,
		"--format", "json",
		dir)
	if err := rootCmd().Run(context.Background(), verifyArgs); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	result, err := serializer.FromFile[validator.VerificationResult](verifyPath)
	if err != nil {
		t.Fatalf("failed to read verification document: %v", err)
	}
	if result.Summary.Status != validator.VerificationStatusPass {
		t.Errorf("Status = %v, want %v", result.Summary.Status, validator.VerificationStatusPass)
	}
	if result.Summary.Passed != 1 || result.Summary.Total != 1 {
		t.Errorf("Summary = %+v, want 1 of 1 passed", result.Summary)
	}
}

func TestVerifyCommandRunDrift(t *testing.T) {
	dir := t.TempDir()
	writeTestSource(t, dir, "palette.go", colorFixture)

	genArgs := []string{"enumgen", "generate",
		"--trim-prefix", "Color",
		"--output", filepath.Join(t.TempDir(), "result.json"),
		"--format", "json",
		dir,
	}
	if err := rootCmd().Run(context.Background(), genArgs); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// Introduce drift into the generated file
	generated := filepath.Join(dir, "color_enums.go")
	content, err := os.ReadFile(generated)
	if err != nil {
		t.Fatalf("failed to read generated file: %v", err)
	}
	stale := strings.Replace(string(content), `"Red"`, `"Rouge"`, 1)
	if stale == string(content) {
		t.Fatal("fixture label not found in generated file")
	}
	if err := os.WriteFile(generated, []byte(stale), 0o644); err != nil {
		t.Fatalf("failed to write stale file: %v", err)
	}

	verifyPath := filepath.Join(t.TempDir(), "verification.json")
	verifyArgs := []string{"enumgen", "verify",
		"--trim-prefix", "Color",
		"--output", verifyPath,
		"--format", "json",
		dir,
	}
	err = rootCmd().Run(context.Background(), verifyArgs)
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "out of date") {
		t.Errorf("error = %v, want error containing %q", err, "out of date")
	}

	result, readErr := serializer.FromFile[validator.VerificationResult](verifyPath)
	if readErr != nil {
		t.Fatalf("failed to read verification document: %v", readErr)
	}
	if result.Summary.Status != validator.VerificationStatusFail {
		t.Errorf("Status = %v, want %v", result.Summary.Status, validator.VerificationStatusFail)
	}
	if result.Summary.Failed != 1 {
		t.Errorf("Failed = %d, want 1", result.Summary.Failed)
	}
}

func TestVerifyCommandRunMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeTestSource(t, dir, "palette.go", colorFixture)

	args := []string{"enumgen", "verify",
		"--output", filepath.Join(t.TempDir(), "verification.json"),
		"--format", "json",
		dir,
	}
	err := rootCmd().Run(context.Background(), args)
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "out of date") {
		t.Errorf("error = %v, want error containing %q", err, "out of date")
	}
}
