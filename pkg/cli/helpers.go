/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/go-enums/pkg/defaults"
	"github.com/NVIDIA/go-enums/pkg/generator"
	"github.com/NVIDIA/go-enums/pkg/serializer"
)

// parseOutputFormat resolves the --format flag into a serializer format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f, err := serializer.ParseFormat(cmd.String("format"))
	if err != nil {
		return f, fmt.Errorf("unknown output format %q, supported values: %s",
			cmd.String("format"), serializer.SupportedFormats())
	}
	return f, nil
}

// writeDocument serializes a result document to the --output destination
// (or stdout) in the --format encoding.
func writeDocument(ctx context.Context, cmd *cli.Command, doc any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, doc)
}

// sourceDirs returns the package directories given as positional
// arguments, defaulting to the current directory.
func sourceDirs(cmd *cli.Command) []string {
	dirs := cmd.Args().Slice()
	if len(dirs) == 0 {
		return []string{"."}
	}
	return dirs
}

// generatorFlags are the settings flags shared by generate and verify.
func generatorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "type",
			Usage:   "Enum type to process (can be repeated; default: every discovered type)",
			Sources: cli.EnvVars("ENUMGEN_TYPE"),
		},
		&cli.StringFlag{
			Name:  "trim-prefix",
			Usage: "Prefix stripped from constant names before labels derive",
		},
		&cli.StringFlag{
			Name: "transform",
			Usage: fmt.Sprintf("Label transform applied to constant names (supported values: %s)",
				generator.SupportedTransforms()),
			Value: defaults.DefaultTransform,
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Add MarshalJSON/UnmarshalJSON methods to generated code",
		},
		&cli.BoolFlag{
			Name:  "case-insensitive",
			Usage: "Fold case when generated code parses labels",
		},
		&cli.StringFlag{
			Name:  "sentinel-suffix",
			Usage: "Constant name suffix marking the trailing count sentinel",
			Value: defaults.DefaultSentinelSuffix,
		},
		&cli.StringFlag{
			Name:    "manifest",
			Aliases: []string{"m"},
			Usage:   "Path to an EnumManifest file with per-type settings (a directory resolves to enums.yaml inside it)",
			Sources: cli.EnvVars("ENUMGEN_MANIFEST"),
		},
		&cli.StringFlag{
			Name:  "out-dir",
			Usage: "Write generated files into this directory instead of next to the sources",
		},
	}
}

// generatorFromCmd builds a Generator from the shared settings flags.
func generatorFromCmd(cmd *cli.Command) (*generator.Generator, error) {
	transform, err := generator.ParseTransform(cmd.String("transform"))
	if err != nil {
		return nil, fmt.Errorf("invalid transform %q, supported values: %s",
			cmd.String("transform"), generator.SupportedTransforms())
	}

	opts := []generator.Option{
		generator.WithVersion(version),
		generator.WithTransform(transform),
		generator.WithJSON(cmd.Bool("json")),
		generator.WithCaseInsensitive(cmd.Bool("case-insensitive")),
		generator.WithSentinelSuffix(cmd.String("sentinel-suffix")),
	}
	if types := cmd.StringSlice("type"); len(types) > 0 {
		opts = append(opts, generator.WithTypes(types...))
	}
	if prefix := cmd.String("trim-prefix"); prefix != "" {
		opts = append(opts, generator.WithTrimPrefix(prefix))
	}
	if dir := cmd.String("out-dir"); dir != "" {
		opts = append(opts, generator.WithOutputDir(dir))
	}
	if path := cmd.String("manifest"); path != "" {
		m, err := generator.LoadManifest(path, version)
		if err != nil {
			return nil, fmt.Errorf("failed to load manifest from %q: %w", path, err)
		}
		opts = append(opts, generator.WithManifest(m))
	}

	return generator.New(opts...), nil
}
