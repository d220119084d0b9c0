/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"time"

	"github.com/NVIDIA/go-enums/pkg/header"
)

// Result represents the outcome of a generation run.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	// RunID uniquely identifies the generation run.
	RunID string `json:"runId" yaml:"runId"`

	// Sources lists the package directories processed.
	Sources []string `json:"sources" yaml:"sources"`

	// Summary contains aggregate generation statistics.
	Summary GenerationSummary `json:"summary" yaml:"summary"`

	// Files contains one entry per generated file.
	Files []GeneratedFile `json:"files" yaml:"files"`
}

// GenerationSummary contains aggregate statistics about a generation run.
type GenerationSummary struct {
	// Types is the number of enumeration types processed.
	Types int `json:"types" yaml:"types"`

	// Files is the number of files written.
	Files int `json:"files" yaml:"files"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// GeneratedFile describes one emitted file.
type GeneratedFile struct {
	// Type is the enumeration type the file covers.
	Type string `json:"type" yaml:"type"`

	// Path is where the file was written.
	Path string `json:"path" yaml:"path"`

	// Labels are the labels registered for the type, in value order.
	Labels []string `json:"labels" yaml:"labels"`
}

// NewResult creates a new Result with initialized slices.
func NewResult() *Result {
	return &Result{
		Sources: make([]string, 0),
		Files:   make([]GeneratedFile, 0),
	}
}

// Catalog represents the discovered enumeration types as a document.
// It backs the enumgen inspect command.
type Catalog struct {
	header.Header `json:",inline" yaml:",inline"`

	// Sources lists the package directories inspected.
	Sources []string `json:"sources" yaml:"sources"`

	// Types lists the discovered enumeration types.
	Types []*EnumType `json:"types" yaml:"types"`
}
