/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/go-enums/pkg/defaults"
	"github.com/NVIDIA/go-enums/pkg/generator"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		Usage:                 "Print the enum catalog for Go packages",
		ArgsUsage:             "[package directories]",
		Description: `Discover integer-backed enum declarations in the given package
directories (default: current directory) and print them as a catalog
document without writing any files. Useful for checking what generate
would process and how constant values evaluated.

# Examples

Inspect the current package:
  enumgen inspect

Inspect specific types across packages as JSON:
  enumgen inspect --type Color --type Status --format json ./pkg/model ./pkg/api`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "type",
				Usage: "Enum type to inspect (can be repeated; default: every discovered type)",
			},
			&cli.StringFlag{
				Name:  "sentinel-suffix",
				Usage: "Constant name suffix marking the trailing count sentinel",
				Value: defaults.DefaultSentinelSuffix,
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, defaults.InspectTimeout)
			defer cancel()

			opts := []generator.Option{
				generator.WithVersion(version),
				generator.WithSentinelSuffix(cmd.String("sentinel-suffix")),
			}
			if types := cmd.StringSlice("type"); len(types) > 0 {
				opts = append(opts, generator.WithTypes(types...))
			}

			catalog, err := generator.New(opts...).BuildCatalog(ctx, sourceDirs(cmd))
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}

			return writeDocument(ctx, cmd, catalog)
		},
	}
}
