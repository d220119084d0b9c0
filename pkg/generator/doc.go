/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

/*
Package generator discovers integer-backed enumeration types in Go source
and renders their label tables as generated files.

# Discovery

Discovery parses package sources without type-checking them, so it works
even when the generated file does not exist yet. A type qualifies when it
is declared over an integer kind and has at least one constant of that
type. Constant values are evaluated from the declaration site, including
iota progressions, implicit carry-over in const blocks, and simple
arithmetic. Values must be contiguous starting at zero.

A trailing count sentinel is recognized by name, either a configurable
suffix (ColorEnd) or a lowercase num prefix (numColors), and must equal
the number of preceding constants. The sentinel is recorded so generated
code can enforce the count at registration.

# Label Derivation

Labels derive from constant names. A trim prefix strips the leading type
name and a Transform rewrites the remainder:

	ColorBrightRed  ->  trim "Color"  ->  snake  ->  "bright_red"

Per-constant overrides and aliases come from the manifest. Derivation
fails when two constants fold to the same label or an alias collides
with a label, so the problem surfaces at generation time rather than as
a panic in the generated package's init.

# Manifest

A manifest pins generation settings in the repository:

	kind: EnumManifest
	apiVersion: enums.nvidia.com/v1alpha1
	minVersion: 0.3.0
	types:
	  - type: Color
	    trimPrefix: Color
	    transform: snake
	    json: true

LoadManifest validates the document and enforces minVersion against the
running tool before any generation happens.

# Usage

	g := generator.New(
		generator.WithTypes("Color", "Status"),
		generator.WithTransform(generator.TransformSnake),
		generator.WithJSON(true),
	)

	result, err := g.Generate(ctx, []string{"./pkg/model"})
	if err != nil {
		return err
	}
	slog.Info("done", "files", result.Summary.Files)

Generate writes one file per type next to its sources (or under an
output directory). Checks renders the same content in memory and pairs
it with on-disk paths for drift verification. BuildCatalog returns the
discovery results as a document for inspection.

# Error Handling

Structural problems in the scanned source (gaps, duplicates, bad
sentinels) surface as ErrCodeInvalidRegistration. Manifest problems
surface as ErrCodeInvalidManifest. Template and filesystem failures
wrap the cause under ErrCodeInternal.
*/
package generator
