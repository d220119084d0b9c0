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

// Package validator verifies generated enumeration files and evaluates
// manifest constraints.
//
// # Overview
//
// The validator package compares freshly rendered enumeration files against
// the files on disk to detect drift between declarations and generated code.
// It also evaluates manifest constraint expressions, such as the minVersion
// requirement a manifest places on the enumgen tool.
//
// # Constraint Format
//
// Constraint expressions combine an optional operator with a value:
//   - ">=" - Greater than or equal (version comparison)
//   - "<=" - Less than or equal (version comparison)
//   - ">"  - Greater than (version comparison)
//   - "<"  - Less than (version comparison)
//   - "==" - Exact match (string or version)
//   - "!=" - Not equal (string or version)
//   - (no operator) - Exact string match
//
// For manifest minVersion fields a bare version is treated as a lower bound,
// so "0.3.0" behaves the same as ">= 0.3.0".
//
// # Usage
//
// Basic verification:
//
//	v := validator.New(validator.WithVersion("1.2.0"))
//	result, err := v.Verify(ctx, "./internal/color", checks)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Status: %s\n", result.Summary.Status)
//	for _, c := range result.Checks {
//	    fmt.Printf("  %s: %s - %s\n", c.Type, c.Path, c.Status)
//	}
//
// # Result Structure
//
// VerificationResult contains:
//   - Summary: Overall pass/fail counts and status
//   - Checks: Per-type check results with content digests
//
// # Error Handling
//
// Checks that cannot be evaluated (e.g., generated file missing from disk)
// are marked as "skipped" with appropriate warning messages, allowing
// partial verification results to be returned.
package validator
