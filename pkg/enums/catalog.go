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

package enums

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	apperrors "github.com/NVIDIA/go-enums/pkg/errors"
)

// Entry describes one enumeration type known to a Catalog. It is the
// serializable descriptor behind catalog dumps.
type Entry struct {
	// TypeName is the package-qualified type name, e.g. "serializer.Format".
	TypeName string `json:"type" yaml:"type"`

	// Labels is the ordered label table registered for the type.
	Labels []string `json:"labels" yaml:"labels"`

	// Type is the reflected type backing the entry.
	Type reflect.Type `json:"-" yaml:"-"`
}

// Catalog is a concurrency-safe record of every Enum constructed in the
// process, keyed by reflected type. The typed converters hold the actual
// label associations; the catalog exists for diagnostics and introspection
// (e.g. the inspect command), so it never participates in conversion.
type Catalog struct {
	mu      sync.RWMutex
	entries map[reflect.Type]Entry
}

var defaultCatalog = &Catalog{
	entries: make(map[reflect.Type]Entry),
}

// DefaultCatalog returns the process-wide catalog populated by New.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// register records a label table for t. Registering the same type again
// with an identical table is idempotent; a differing table is a conflict.
// Distinct named types never collide here even when their underlying
// types and labels match, since each named type reflects distinctly.
func (c *Catalog) register(t reflect.Type, labels []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[t]; ok {
		if slices.Equal(existing.Labels, labels) {
			return nil
		}
		return apperrors.NewWithContext(
			apperrors.ErrCodeInvalidRegistration,
			fmt.Sprintf("conflicting registration for %s", t.String()),
			map[string]any{
				"type":       t.String(),
				"registered": existing.Labels,
				"requested":  labels,
			})
	}

	c.entries[t] = Entry{
		TypeName: t.String(),
		Labels:   slices.Clone(labels),
		Type:     t,
	}
	registeredTotal.Inc()
	return nil
}

// Entries returns a snapshot of all registered entries sorted by type
// name for deterministic output.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return strings.Compare(a.TypeName, b.TypeName)
	})
	return out
}

// Count returns the number of registered enumeration types.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// LookupType returns the entry registered for t, if any.
func (c *Catalog) LookupType(t reflect.Type) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[t]
	return e, ok
}

// Reset clears the catalog. Tests only; production registration happens
// once at package init and is never unwound.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[reflect.Type]Entry)
}
