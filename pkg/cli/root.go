/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/go-enums/pkg/defaults"
	"github.com/NVIDIA/go-enums/pkg/logging"
	"github.com/NVIDIA/go-enums/pkg/serializer"
)

const (
	name           = "enumgen"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags reused across subcommands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Path for the result document (default: stdout)",
		Sources: cli.EnvVars("ENUMGEN_OUTPUT"),
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Result document format (supported values: %s)", serializer.SupportedFormats()),
		Value:   serializer.FormatYAML.String(),
		Sources: cli.EnvVars("ENUMGEN_FORMAT"),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Value:   "info",
		Sources: cli.EnvVars("ENUMGEN_LOG_LEVEL", "LOG_LEVEL"),
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Generate and verify enum label tables for Go packages",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `Discovers integer-backed constant blocks in Go sources, derives string
labels for them, and emits registration files backed by the enums runtime:

generate - discover enum declarations and write <type>_enums.go files
inspect  - print the discovered enum catalog without writing files
verify   - recompute generated content and report drift (CI gate)
version  - print build information`,
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCmd(),
			inspectCmd(),
			verifyCmd(),
			versionCmd(),
		},
	}
}

// Execute assembles the command tree and runs it. This is called by
// main.main().
func Execute() {
	ctx, cancel := context.WithTimeout(context.Background(), defaults.CLIRunTimeout)
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
