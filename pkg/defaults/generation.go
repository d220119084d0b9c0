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

package defaults

import "os"

// Generation defaults shared by the generator and the CLI.
const (
	// GeneratedFileSuffix is appended to the lowercased type name to form
	// the generated file name (e.g. colors_enums.go).
	GeneratedFileSuffix = "_enums.go"

	// DefaultManifestName is the manifest file name used when a directory
	// rather than a file is passed to generate or verify.
	DefaultManifestName = "enums.yaml"

	// DefaultTransform is the label transform applied when a manifest
	// entry does not specify one.
	DefaultTransform = "none"

	// DefaultSentinelSuffix marks a trailing count constant that is
	// excluded from label tables (e.g. ColorEnd after the last color).
	DefaultSentinelSuffix = "End"

	// MaxParallelism bounds how many package directories are processed
	// concurrently during a generation run.
	MaxParallelism = 4
)

// File modes for generated output.
const (
	// OutputFileMode is the permission set on generated files.
	OutputFileMode os.FileMode = 0o644

	// OutputDirMode is the permission set on created output directories.
	OutputDirMode os.FileMode = 0o755
)
