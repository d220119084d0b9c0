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

// Package header provides common header types for enumgen data structures.
//
// This package defines the Header type used across enum manifests, catalog
// dumps, and generation/verification results to provide consistent metadata
// and versioning information.
//
// # Header Structure
//
// The Header contains standard fields for API versioning and metadata:
//
//	type Header struct {
//	    Kind       Kind              `json:"kind" yaml:"kind"`             // Resource type (e.g. "EnumManifest")
//	    APIVersion string            `json:"apiVersion" yaml:"apiVersion"` // Schema version
//	    Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
//	}
//
// # Usage
//
// Create a header for a generation result:
//
//	h := header.New(
//	    header.WithKind(header.KindGenerationResult),
//	    header.WithAPIVersion(header.APIVersion),
//	    header.WithMetadata("version", "v1.0.0"),
//	)
//
// Or initialize an embedded header in place:
//
//	var result GenerationResult
//	result.Header.Init(header.KindGenerationResult, header.APIVersion, "v1.0.0")
//
// # Serialization
//
// Headers serialize consistently to JSON and YAML:
//
//	{
//	  "kind": "GenerationResult",
//	  "apiVersion": "enums.nvidia.com/v1alpha1",
//	  "metadata": {
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
//
// # Kind Field
//
// The Kind field identifies the resource type:
//   - EnumManifest: declarative description of enum types to generate
//   - EnumCatalog: dump of every enum type known to a process
//   - GenerationResult: outcome of a generate run
//   - VerificationResult: outcome of a verify run
//
// Consumers should check both fields before parsing a resource:
//
//	if h.Kind != header.KindEnumManifest {
//	    return fmt.Errorf("unexpected kind: %s", h.Kind)
//	}
//	if h.APIVersion != header.APIVersion {
//	    return fmt.Errorf("unsupported API version: %s", h.APIVersion)
//	}
package header
