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
	"reflect"
	"slices"
	"sync"
	"testing"

	apperrors "github.com/NVIDIA/go-enums/pkg/errors"
)

func newTestCatalog() *Catalog {
	return &Catalog{entries: make(map[reflect.Type]Entry)}
}

func TestDefaultCatalogHoldsPackageTypes(t *testing.T) {
	entry, ok := DefaultCatalog().LookupType(reflect.TypeFor[Color]())
	if !ok {
		t.Fatal("Color missing from default catalog")
	}
	if !slices.Equal(entry.Labels, []string{"red", "green", "blue"}) {
		t.Errorf("Color labels = %v", entry.Labels)
	}
	if entry.TypeName != "enums.Color" {
		t.Errorf("Color type name = %q, want %q", entry.TypeName, "enums.Color")
	}

	// Shade registered independently despite the shared underlying type.
	shade, ok := DefaultCatalog().LookupType(reflect.TypeFor[Shade]())
	if !ok {
		t.Fatal("Shade missing from default catalog")
	}
	if slices.Equal(shade.Labels, entry.Labels) {
		t.Error("Shade and Color share a label table")
	}
}

func TestCatalogIdempotentReRegistration(t *testing.T) {
	c := newTestCatalog()
	typ := reflect.TypeFor[Color]()

	if err := c.register(typ, []string{"red", "green", "blue"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := c.register(typ, []string{"red", "green", "blue"}); err != nil {
		t.Fatalf("identical re-registration should be idempotent: %v", err)
	}
	if c.Count() != 1 {
		t.Errorf("Count() = %d, want 1", c.Count())
	}
}

func TestCatalogConflict(t *testing.T) {
	c := newTestCatalog()
	typ := reflect.TypeFor[Color]()

	if err := c.register(typ, []string{"red", "green", "blue"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	err := c.register(typ, []string{"cyan", "magenta", "yellow"})
	if err == nil {
		t.Fatal("conflicting re-registration expected error")
	}
	if !apperrors.IsInvalidRegistration(err) {
		t.Errorf("conflict error code = %v, want invalid registration", err)
	}

	// The original table survives the conflict.
	entry, _ := c.LookupType(typ)
	if !slices.Equal(entry.Labels, []string{"red", "green", "blue"}) {
		t.Errorf("labels after conflict = %v", entry.Labels)
	}
}

func TestNewConflictsThroughDefaultCatalog(t *testing.T) {
	type drift int

	if _, err := New[drift]([]string{"a", "b"}); err != nil {
		t.Fatalf("first New: %v", err)
	}

	// Same type, different table: conflict.
	if _, err := New[drift]([]string{"x", "y"}); err == nil {
		t.Fatal("New with differing table expected conflict")
	}

	// Same type, identical table: idempotent.
	if _, err := New[drift]([]string{"a", "b"}); err != nil {
		t.Fatalf("idempotent New: %v", err)
	}
}

func TestCatalogEntriesSorted(t *testing.T) {
	c := newTestCatalog()
	if err := c.register(reflect.TypeFor[Shade](), []string{"red", "crimson"}); err != nil {
		t.Fatal(err)
	}
	if err := c.register(reflect.TypeFor[Color](), []string{"red", "green", "blue"}); err != nil {
		t.Fatal(err)
	}
	if err := c.register(reflect.TypeFor[Priority](), []string{"low", "high"}); err != nil {
		t.Fatal(err)
	}

	entries := c.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries() returned %d entries, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].TypeName > entries[i].TypeName {
			t.Errorf("Entries() out of order: %q before %q",
				entries[i-1].TypeName, entries[i].TypeName)
		}
	}
}

func TestCatalogEntriesAreCopies(t *testing.T) {
	c := newTestCatalog()
	labels := []string{"red", "green", "blue"}
	if err := c.register(reflect.TypeFor[Color](), labels); err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's slice after registration must not reach the
	// catalog.
	labels[0] = "mutated"
	entry, _ := c.LookupType(reflect.TypeFor[Color]())
	if entry.Labels[0] != "red" {
		t.Error("catalog aliases the caller's label slice")
	}
}

func TestCatalogReset(t *testing.T) {
	c := newTestCatalog()
	if err := c.register(reflect.TypeFor[Color](), []string{"red"}); err != nil {
		t.Fatal(err)
	}
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}

	c.Reset()
	if c.Count() != 0 {
		t.Errorf("Count() after Reset = %d, want 0", c.Count())
	}
}

func TestCatalogConcurrentAccess(t *testing.T) {
	c := newTestCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = c.register(reflect.TypeFor[Color](), []string{"red", "green", "blue"})
				_ = c.Entries()
				_ = c.Count()
				_, _ = c.LookupType(reflect.TypeFor[Color]())
			}
		}()
	}
	wg.Wait()

	if c.Count() != 1 {
		t.Errorf("Count() = %d, want 1", c.Count())
	}
}
