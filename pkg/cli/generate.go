/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/go-enums/pkg/defaults"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate enum label table files for Go packages",
		ArgsUsage:             "[package directories]",
		Description: `Discover integer-backed enum declarations in the given package
directories (default: current directory) and write one <type>_enums.go
file per type. Generated files register the type's label table and add
String, IsValid, text marshaling, and parse functions.

Constants must run contiguously from zero. A trailing count sentinel
(ColorEnd, numColors) is excluded from the table and enforced at
registration.

Labels derive from constant names via --trim-prefix and --transform,
or per type from an EnumManifest file:

  kind: EnumManifest
  apiVersion: enums.nvidia.com/v1alpha1
  types:
    - type: Color
      trimPrefix: Color
      transform: snake

# Examples

Generate tables for every enum in the current package:
  enumgen generate

Generate one type with snake_case labels and JSON methods:
  enumgen generate --type Color --trim-prefix Color --transform snake --json ./pkg/model

Generate from a manifest, writing the run result to a file:
  enumgen generate --manifest enums.yaml -o result.yaml ./pkg/model`,
		Flags: append(generatorFlags(),
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for the whole generation run",
				Value: defaults.GenerateTimeout,
			},
			outputFlag,
			formatFlag,
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			g, err := generatorFromCmd(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := g.Generate(ctx, sourceDirs(cmd))
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			slog.Info("generation completed",
				"types", result.Summary.Types,
				"files", result.Summary.Files,
				"duration", time.Since(start))

			return writeDocument(ctx, cmd, result)
		},
	}
}
