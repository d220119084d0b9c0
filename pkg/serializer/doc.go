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

// Package serializer reads manifests and writes result documents in
// multiple formats.
//
// The package supports three output formats:
//   - JSON: machine-readable structured data with proper indentation
//   - YAML: human-readable configuration format
//   - Table: human-readable tabular output with flattened keys
//
// Format is itself a registered enumeration built with pkg/enums, so the
// format flag parses with the same validation and error reporting the rest
// of the system uses:
//
//	format, err := serializer.ParseFormat("yaml")
//	// invalid names error with: invalid Format: "xml", supported: json, yaml, table
//
// # Writing
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, doc); err != nil {
//	    log.Fatal(err)
//	}
//
// NewFileWriterOrStdout writes to a file when a path is given and falls
// back to stdout otherwise, which is the shape the CLI's --output flag
// needs. Table output flattens nested structures into dotted keys.
//
// # Reading
//
// Reader deserializes JSON and YAML; table format is write-only. The
// format is detected from the file extension when not given explicitly:
//
//	manifest, err := serializer.FromFile[generator.Manifest]("enums.yaml")
package serializer
