/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/NVIDIA/go-enums/pkg/header"
)

// FileCheck describes one expected generated file to verify.
type FileCheck struct {
	// Type is the enumeration type the generated file covers.
	Type string

	// Path is the location of the generated file on disk.
	Path string

	// Content is the expected file content from a fresh rendering.
	Content []byte
}

// Verifier compares expected generated-file renderings against the files on disk.
type Verifier struct {
	// Version is the verifier version (typically the CLI version).
	Version string
}

// Option is a functional option for configuring Verifier instances.
type Option func(*Verifier)

// WithVersion returns an Option that sets the Verifier version string.
func WithVersion(version string) Option {
	return func(v *Verifier) {
		v.Version = version
	}
}

// New creates a new Verifier with the provided options.
func New(opts ...Option) *Verifier {
	v := &Verifier{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify checks each expected rendering against the file on disk.
// Returns a VerificationResult containing per-type check results and summary.
func (v *Verifier) Verify(ctx context.Context, source string, checks []FileCheck) (*VerificationResult, error) {
	start := time.Now()

	result := NewVerificationResult()
	result.Init(header.KindVerificationResult, header.APIVersion, v.Version)
	result.Source = source

	for _, check := range checks {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		tc := v.checkFile(check)
		result.Checks = append(result.Checks, tc)

		// Update summary counts
		switch tc.Status {
		case CheckStatusPassed:
			result.Summary.Passed++
		case CheckStatusFailed:
			result.Summary.Failed++
		case CheckStatusSkipped:
			result.Summary.Skipped++
		}
	}

	// Calculate summary
	result.Summary.Total = len(checks)
	result.Summary.Duration = time.Since(start)

	// Determine overall status
	switch {
	case result.Summary.Failed > 0:
		result.Summary.Status = VerificationStatusFail
	case result.Summary.Skipped > 0:
		result.Summary.Status = VerificationStatusPartial
	default:
		result.Summary.Status = VerificationStatusPass
	}

	slog.Debug("verification completed",
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"skipped", result.Summary.Skipped,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// checkFile compares a single expected rendering against the file on disk.
func (v *Verifier) checkFile(check FileCheck) TypeCheck {
	tc := TypeCheck{
		Type:     check.Type,
		Path:     check.Path,
		Expected: digest(check.Content),
	}

	actual, err := os.ReadFile(check.Path)
	if err != nil {
		tc.Status = CheckStatusSkipped
		if errors.Is(err, fs.ErrNotExist) {
			tc.Message = "generated file not found, run enumgen generate"
			slog.Warn("skipping check - generated file not found",
				"type", check.Type,
				"path", check.Path)
		} else {
			tc.Message = fmt.Sprintf("cannot read generated file: %v", err)
			slog.Warn("skipping check - generated file not readable",
				"type", check.Type,
				"path", check.Path,
				"error", err)
		}
		return tc
	}
	tc.Actual = digest(actual)

	if bytes.Equal(actual, check.Content) {
		tc.Status = CheckStatusPassed
		slog.Debug("check passed",
			"type", check.Type,
			"path", check.Path)
		return tc
	}

	tc.Status = CheckStatusFailed
	tc.Message = fmt.Sprintf("content drift detected, first difference at line %d",
		firstDiffLine(check.Content, actual))
	slog.Debug("check failed",
		"type", check.Type,
		"path", check.Path,
		"expected", tc.Expected,
		"actual", tc.Actual)
	return tc
}

// digest returns a short content digest used in verification results.
func digest(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:6])
}

// firstDiffLine returns the 1-based line number of the first difference
// between the expected and actual content.
func firstDiffLine(expected, actual []byte) int {
	el := strings.Split(string(expected), "\n")
	al := strings.Split(string(actual), "\n")
	for i := 0; i < len(el) && i < len(al); i++ {
		if el[i] != al[i] {
			return i + 1
		}
	}
	if len(el) < len(al) {
		return len(el) + 1
	}
	return len(al) + 1
}
