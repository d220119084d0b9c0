// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validator

import (
	"time"

	"github.com/NVIDIA/go-enums/pkg/header"
)

// VerificationResult represents the complete verification outcome.
type VerificationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Source is the package directory whose generated files were verified.
	Source string `json:"source" yaml:"source"`

	// Summary contains aggregate verification statistics.
	Summary VerificationSummary `json:"summary" yaml:"summary"`

	// Checks contains per-type verification details.
	Checks []TypeCheck `json:"checks" yaml:"checks"`
}

// VerificationSummary contains aggregate statistics about the verification.
type VerificationSummary struct {
	// Passed is the count of generated files that matched.
	Passed int `json:"passed" yaml:"passed"`

	// Failed is the count of generated files that drifted.
	Failed int `json:"failed" yaml:"failed"`

	// Skipped is the count of checks that couldn't be evaluated.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Total is the total number of checks performed.
	Total int `json:"total" yaml:"total"`

	// Status is the overall verification status.
	Status VerificationStatus `json:"status" yaml:"status"`

	// Duration is how long the verification took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// TypeCheck represents the result of checking one generated file.
type TypeCheck struct {
	// Type is the enumeration type the generated file covers (e.g. "Color").
	Type string `json:"type" yaml:"type"`

	// Path is the location of the generated file.
	Path string `json:"path" yaml:"path"`

	// Expected is the content digest of the fresh rendering.
	Expected string `json:"expected" yaml:"expected"`

	// Actual is the content digest of the on-disk file, empty when missing.
	Actual string `json:"actual,omitempty" yaml:"actual,omitempty"`

	// Status is the outcome of this check.
	Status CheckStatus `json:"status" yaml:"status"`

	// Message provides additional context, especially for failed or skipped checks.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewVerificationResult creates a new VerificationResult with initialized slices.
func NewVerificationResult() *VerificationResult {
	return &VerificationResult{
		Checks: make([]TypeCheck, 0),
	}
}
