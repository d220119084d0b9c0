/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/go-enums/pkg/defaults"
	"github.com/NVIDIA/go-enums/pkg/errors"
	"github.com/NVIDIA/go-enums/pkg/header"
	"github.com/NVIDIA/go-enums/pkg/serializer"
	"github.com/NVIDIA/go-enums/pkg/validator"
)

// Generator discovers enumeration declarations in Go packages and renders
// their conversion tables as generated files.
type Generator struct {
	version         string
	types           []string
	trimPrefix      string
	transform       Transform
	json            bool
	caseInsensitive bool
	sentinelSuffix  string
	outputDir       string
	manifest        *Manifest
	parallelism     int
}

// Option is a functional option for configuring Generator instances.
type Option func(*Generator)

// WithVersion sets the tool version stamped into result documents.
func WithVersion(version string) Option {
	return func(g *Generator) {
		g.version = version
	}
}

// WithTypes restricts processing to the named types.
func WithTypes(types ...string) Option {
	return func(g *Generator) {
		g.types = types
	}
}

// WithTrimPrefix strips a prefix from constant names before labels derive.
func WithTrimPrefix(prefix string) Option {
	return func(g *Generator) {
		g.trimPrefix = prefix
	}
}

// WithTransform sets the label derivation rule.
func WithTransform(t Transform) Option {
	return func(g *Generator) {
		g.transform = t
	}
}

// WithJSON adds JSON marshaling methods to generated code.
func WithJSON(enabled bool) Option {
	return func(g *Generator) {
		g.json = enabled
	}
}

// WithCaseInsensitive folds case when generated code parses labels.
func WithCaseInsensitive(enabled bool) Option {
	return func(g *Generator) {
		g.caseInsensitive = enabled
	}
}

// WithSentinelSuffix overrides the suffix that marks count sentinels.
func WithSentinelSuffix(suffix string) Option {
	return func(g *Generator) {
		g.sentinelSuffix = suffix
	}
}

// WithOutputDir redirects generated files to a directory instead of
// writing next to the sources.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outputDir = dir
	}
}

// WithManifest applies per-type settings from a loaded manifest.
func WithManifest(m *Manifest) Option {
	return func(g *Generator) {
		g.manifest = m
	}
}

// WithParallelism bounds concurrent package processing.
func WithParallelism(n int) Option {
	return func(g *Generator) {
		g.parallelism = n
	}
}

// New creates a new Generator with the provided options.
func New(opts ...Option) *Generator {
	g := &Generator{
		sentinelSuffix: defaults.DefaultSentinelSuffix,
		parallelism:    defaults.MaxParallelism,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.parallelism < 1 {
		g.parallelism = 1
	}
	return g
}

// Discover parses the given package directories and returns their
// enumeration types sorted by directory and name.
func (g *Generator) Discover(ctx context.Context, dirs []string) ([]*EnumType, error) {
	dirs = normalizeDirs(dirs)
	requested := g.requestedTypes()

	wanted := make(map[string]bool, len(requested))
	for _, name := range requested {
		wanted[name] = true
	}

	var mu sync.Mutex
	var all []*EnumType

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.parallelism)
	for _, dir := range dirs {
		eg.Go(func() error {
			dirCtx, cancel := context.WithTimeout(ctx, defaults.DiscoverTimeout)
			defer cancel()

			found, err := discoverDir(dirCtx, dir, wanted, g.sentinelSuffix)
			if err != nil {
				return err
			}

			mu.Lock()
			all = append(all, found...)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if len(requested) > 0 {
		found := make(map[string]bool, len(all))
		for _, et := range all {
			found[et.Name] = true
		}
		for _, name := range requested {
			if !found[name] {
				return nil, errors.NewWithContext(errors.ErrCodeInvalidRegistration,
					"no constants found for type",
					map[string]any{"type": name, "dirs": dirs})
			}
		}
	}

	slices.SortFunc(all, func(a, b *EnumType) int {
		if c := strings.Compare(a.Dir, b.Dir); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	slog.Debug("discovery completed",
		"dirs", len(dirs),
		"types", len(all))

	return all, nil
}

// Render discovers the requested types and renders their generated files
// in memory.
func (g *Generator) Render(ctx context.Context, dirs []string) ([]Rendered, error) {
	types, err := g.Discover(ctx, dirs)
	if err != nil {
		return nil, err
	}

	rendered := make([]Rendered, 0, len(types))
	for _, et := range types {
		r, err := renderType(et, g.specFor(et.Name), g.outputDir)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, r)
	}
	return rendered, nil
}

// Checks renders the requested types and pairs each rendering with its
// on-disk path for verification.
func (g *Generator) Checks(ctx context.Context, dirs []string) ([]validator.FileCheck, error) {
	rendered, err := g.Render(ctx, dirs)
	if err != nil {
		return nil, err
	}

	checks := make([]validator.FileCheck, 0, len(rendered))
	for _, r := range rendered {
		checks = append(checks, validator.FileCheck{Type: r.Type, Path: r.Path, Content: r.Content})
	}
	return checks, nil
}

// Generate renders and writes the generated files, returning a result
// document describing the run.
func (g *Generator) Generate(ctx context.Context, dirs []string) (*Result, error) {
	start := time.Now()

	rendered, err := g.Render(ctx, dirs)
	if err != nil {
		return nil, err
	}

	if g.outputDir != "" {
		if err := os.MkdirAll(g.outputDir, defaults.OutputDirMode); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInternal,
				"creating output directory", err, map[string]any{"dir": g.outputDir})
		}
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(g.parallelism)
	for _, r := range rendered {
		eg.Go(func() error {
			if err := serializer.WriteToFile(r.Path, r.Content); err != nil {
				return errors.WrapWithContext(errors.ErrCodeInternal,
					"writing generated file", err, map[string]any{"path": r.Path})
			}
			slog.Info("generated",
				"type", r.Type,
				"path", r.Path,
				"labels", len(r.Labels))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := NewResult()
	result.Init(header.KindGenerationResult, header.APIVersion, g.version)
	result.RunID = uuid.NewString()
	result.Sources = normalizeDirs(dirs)
	for _, r := range rendered {
		result.Files = append(result.Files, GeneratedFile{
			Type:   r.Type,
			Path:   r.Path,
			Labels: r.Labels,
		})
	}
	result.Summary = GenerationSummary{
		Types:    len(rendered),
		Files:    len(rendered),
		Duration: time.Since(start),
	}

	return result, nil
}

// BuildCatalog discovers enumeration types and assembles the catalog
// document backing enumgen inspect.
func (g *Generator) BuildCatalog(ctx context.Context, dirs []string) (*Catalog, error) {
	types, err := g.Discover(ctx, dirs)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		Sources: normalizeDirs(dirs),
		Types:   types,
	}
	c.Init(header.KindEnumCatalog, header.APIVersion, g.version)
	return c, nil
}

// requestedTypes returns the explicit type filter, falling back to the
// manifest's declared types.
func (g *Generator) requestedTypes() []string {
	if len(g.types) > 0 {
		return g.types
	}
	if g.manifest != nil {
		return g.manifest.TypeNames()
	}
	return nil
}

// specFor resolves the settings for one type: the manifest entry when
// present, otherwise the flag-level settings.
func (g *Generator) specFor(name string) TypeSpec {
	if g.manifest != nil {
		for _, ts := range g.manifest.Types {
			if ts.Type == name {
				return ts
			}
		}
	}
	return TypeSpec{
		Type:            name,
		TrimPrefix:      g.trimPrefix,
		Transform:       g.transform,
		CaseInsensitive: g.caseInsensitive,
		JSON:            g.json,
	}
}

func normalizeDirs(dirs []string) []string {
	if len(dirs) == 0 {
		return []string{"."}
	}
	return slices.Clone(dirs)
}
