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

	apperrors "github.com/NVIDIA/go-enums/pkg/errors"
)

// Value is a constraint (compile-time) for the integer-backed types an
// Enum can be built for.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Enum associates a fixed, ordered list of string labels with the values
// of an integer-backed enumeration type E. The label at index i is the
// label for value E(i), so the label list defines the valid value range
// [0, Len()).
//
// An Enum is immutable after construction and safe for concurrent use
// without locking. Build one per enumeration type as a package-level var:
//
//	type Color int
//
//	const (
//	    Red Color = iota
//	    Green
//	    Blue
//	)
//
//	var Colors = enums.MustNew[Color]([]string{"red", "green", "blue"})
type Enum[E Value] struct {
	name   string
	labels []string
	index  map[string]E
	fold   bool
}

// New builds the converter for enumeration type E from the ordered label
// list. Labels are validated eagerly so that misconfiguration surfaces at
// registration rather than on first use:
//
//   - the label list must be non-empty and contain no empty labels
//   - duplicate labels are rejected
//   - with WithCount(n), the label count must equal n
//   - alias names must not collide with labels or other aliases, and
//     alias values must be inside the label range
//
// Under WithCaseInsensitive, uniqueness applies to the folded forms.
// Unless WithoutCatalog is given, the new type is also recorded in the
// process-wide catalog; registering the same type twice with a different
// label table is a conflict.
func New[E Value](labels []string, opts ...Option) (*Enum[E], error) {
	s := settings{count: -1}
	for _, opt := range opts {
		opt(&s)
	}

	t := reflect.TypeFor[E]()
	name := t.Name()
	if name == "" {
		name = t.String()
	}

	if len(labels) == 0 {
		return nil, apperrors.NewWithContext(
			apperrors.ErrCodeInvalidRegistration,
			fmt.Sprintf("%s: label list is empty", name),
			map[string]any{"type": t.String()})
	}
	if s.count >= 0 && s.count != len(labels) {
		return nil, apperrors.NewWithContext(
			apperrors.ErrCodeInvalidRegistration,
			fmt.Sprintf("%s: %d labels for %d values", name, len(labels), s.count),
			map[string]any{"type": t.String(), "labels": len(labels), "values": s.count})
	}

	e := &Enum[E]{
		name:   name,
		labels: slices.Clone(labels),
		index:  make(map[string]E, len(labels)+len(s.aliases)),
		fold:   s.caseInsensitive,
	}

	for i, label := range e.labels {
		if label == "" {
			return nil, apperrors.NewWithContext(
				apperrors.ErrCodeInvalidRegistration,
				fmt.Sprintf("%s: empty label at index %d", name, i),
				map[string]any{"type": t.String(), "index": i})
		}
		key := e.key(label)
		if _, exists := e.index[key]; exists {
			return nil, apperrors.NewWithContext(
				apperrors.ErrCodeInvalidRegistration,
				fmt.Sprintf("%s: duplicate label %q", name, label),
				map[string]any{"type": t.String(), "label": label})
		}
		e.index[key] = E(i)
	}

	for _, a := range s.aliases {
		if a.name == "" {
			return nil, apperrors.NewWithContext(
				apperrors.ErrCodeInvalidRegistration,
				fmt.Sprintf("%s: empty alias name", name),
				map[string]any{"type": t.String()})
		}
		if a.value < 0 || a.value >= int64(len(e.labels)) {
			return nil, apperrors.NewWithContext(
				apperrors.ErrCodeInvalidRegistration,
				fmt.Sprintf("%s: alias %q maps to out-of-range value %d, valid range: [0, %d)",
					name, a.name, a.value, len(e.labels)),
				map[string]any{"type": t.String(), "alias": a.name, "value": a.value})
		}
		key := e.key(a.name)
		if _, exists := e.index[key]; exists {
			return nil, apperrors.NewWithContext(
				apperrors.ErrCodeInvalidRegistration,
				fmt.Sprintf("%s: alias %q collides with a label or another alias", name, a.name),
				map[string]any{"type": t.String(), "alias": a.name})
		}
		e.index[key] = E(a.value)
	}

	if !s.noCatalog {
		if err := defaultCatalog.register(t, e.labels); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// MustNew is like New but panics on a validation error. Intended for
// package-level var registration where the label table is fixed at
// compile time.
func MustNew[E Value](labels []string, opts ...Option) *Enum[E] {
	e, err := New[E](labels, opts...)
	if err != nil {
		panic(fmt.Sprintf("MustNew: %v", err))
	}
	return e
}

// Label returns the label registered for v. A value outside the label
// range yields an invalid-representation error naming the value, the
// type, and the valid range.
func (e *Enum[E]) Label(v E) (string, error) {
	i, ok := e.pos(v)
	if !ok {
		formatFailures.Inc()
		return "", apperrors.NewWithContext(
			apperrors.ErrCodeInvalidRepresentation,
			fmt.Sprintf("no label for %s value %d, valid range: [0, %d)", e.name, v, len(e.labels)),
			map[string]any{"type": e.name, "value": int64(v), "len": len(e.labels)})
	}
	return e.labels[i], nil
}

// Format returns the label for v, or the placeholder "Type(n)" when v is
// outside the label range. Use it to implement fmt.Stringer, which cannot
// report an error.
func (e *Enum[E]) Format(v E) string {
	if i, ok := e.pos(v); ok {
		return e.labels[i]
	}
	return fmt.Sprintf("%s(%d)", e.name, v)
}

// Parse returns the value registered for label s, consulting aliases
// after labels. An unrecognized label yields an invalid-representation
// error listing the supported labels, with the zero value of E.
func (e *Enum[E]) Parse(s string) (E, error) {
	if v, ok := e.Lookup(s); ok {
		return v, nil
	}
	parseFailures.Inc()
	var zero E
	return zero, apperrors.NewWithContext(
		apperrors.ErrCodeInvalidRepresentation,
		fmt.Sprintf("invalid %s: %q, supported: %s", e.name, s, strings.Join(e.labels, ", ")),
		map[string]any{"type": e.name, "input": s})
}

// Lookup returns the value registered for label s and true, or the zero
// value and false when s is not a known label or alias.
func (e *Enum[E]) Lookup(s string) (E, bool) {
	v, ok := e.index[e.key(s)]
	return v, ok
}

// IsValid returns true if v is inside the label range.
func (e *Enum[E]) IsValid(v E) bool {
	_, ok := e.pos(v)
	return ok
}

// Labels returns a copy of the ordered label list.
func (e *Enum[E]) Labels() []string {
	return slices.Clone(e.labels)
}

// Values returns every valid value of E in label order.
func (e *Enum[E]) Values() []E {
	out := make([]E, len(e.labels))
	for i := range out {
		out[i] = E(i)
	}
	return out
}

// Len returns the number of registered labels.
func (e *Enum[E]) Len() int {
	return len(e.labels)
}

// TypeName returns the name of the enumeration type E.
func (e *Enum[E]) TypeName() string {
	return e.name
}

// pos maps v to its label index. Conversion through int64 keeps sized and
// unsigned backing types honest: anything that lands outside [0, len) is
// out of range.
func (e *Enum[E]) pos(v E) (int, bool) {
	i := int64(v)
	if i < 0 || i >= int64(len(e.labels)) {
		return 0, false
	}
	return int(i), true
}

// key normalizes a lookup key according to the case sensitivity the
// converter was built with.
func (e *Enum[E]) key(s string) string {
	if e.fold {
		return strings.ToLower(s)
	}
	return s
}
