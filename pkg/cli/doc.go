// Package cli implements the command-line interface for the enumgen tool.
//
// # Overview
//
// The enumgen CLI generates, inspects, and verifies string label tables for
// integer-backed Go enumeration types. It is designed to run from
// go:generate directives and CI pipelines.
//
// # Commands
//
// generate - Write label table files:
//
//	enumgen generate [--type NAME]... [--transform snake] [DIR]...
//
// Discovers enum declarations in the given package directories and writes
// one <type>_enums.go file per type with registration, String, IsValid,
// text marshaling, and parse functions.
//
// inspect - Print the discovered catalog:
//
//	enumgen inspect [--type NAME]... [--format yaml|json|table] [DIR]...
//
// Shows every discovered type with its constants, evaluated values, and
// sentinel without writing files.
//
// verify - Check generated files for drift:
//
//	enumgen verify [--manifest enums.yaml] [DIR]...
//
// Recomputes the generated content in memory and compares it against the
// files on disk. Exits non-zero when anything is missing or stale.
//
// version - Print build information.
//
// # Global Flags
//
//	--output, -o   Result document path (default: stdout)
//	--format, -t   Result document format: yaml, json, table (default: yaml)
//	--log-level    Logging verbosity: debug, info, warn, error
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	ENUMGEN_OUTPUT     Default for --output
//	ENUMGEN_FORMAT     Default for --format
//	ENUMGEN_TYPE       Default for --type
//	ENUMGEN_MANIFEST   Default for --manifest
//	ENUMGEN_LOG_LEVEL  Default for --log-level (LOG_LEVEL also honored)
//
// # Usage Examples
//
// Generate from a go:generate directive:
//
//	//go:generate enumgen generate --type Color --trim-prefix Color --transform snake
//
// Generate everything a manifest declares (a directory value resolves to
// the enums.yaml inside it):
//
//	enumgen generate --manifest enums.yaml ./pkg/model
//
// Gate CI on stale tables:
//
//	enumgen verify --manifest enums.yaml ./... || exit 1
//
// # Exit Codes
//
//	0  Success
//	1  Error (invalid arguments, declaration problems, drift detected)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/generator - discovery, label derivation, file rendering
//   - pkg/validator - drift verification and manifest constraints
//   - pkg/serializer - result document formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/go-enums/pkg/cli.version=1.0.0'"
package cli
