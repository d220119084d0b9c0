/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/go-enums/pkg/defaults"
	"github.com/NVIDIA/go-enums/pkg/validator"
)

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "verify",
		EnableShellCompletion: true,
		Usage:                 "Check that generated enum files are up to date",
		ArgsUsage:             "[package directories]",
		Description: `Re-run discovery and rendering in memory and compare the result
against the generated files on disk. Exits non-zero when any file is
missing or differs from what generate would produce, so CI can gate on
stale tables.

Settings flags must match the ones used for generate; with a manifest
the settings travel with the repository and verify needs no flags.

# Examples

Verify the current package:
  enumgen verify

Verify against a manifest and keep the result document:
  enumgen verify --manifest enums.yaml -o verification.yaml ./pkg/model`,
		Flags: append(generatorFlags(),
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for the whole verification run",
				Value: defaults.VerifyTimeout,
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

			dirs := sourceDirs(cmd)
			checks, err := g.Checks(ctx, dirs)
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			v := validator.New(
				validator.WithVersion(version),
			)

			result, err := v.Verify(ctx, strings.Join(dirs, ","), checks)
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			slog.Info("verification completed",
				"status", result.Summary.Status,
				"passed", result.Summary.Passed,
				"failed", result.Summary.Failed,
				"skipped", result.Summary.Skipped,
				"duration", result.Summary.Duration)

			if err := writeDocument(ctx, cmd, result); err != nil {
				return err
			}

			if result.Summary.Status != validator.VerificationStatusPass {
				return fmt.Errorf("%d of %d generated file(s) out of date, run enumgen generate",
					result.Summary.Failed+result.Summary.Skipped, result.Summary.Total)
			}
			return nil
		},
	}
}
