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

// Option is a functional option for configuring Enum construction.
type Option func(*settings)

type settings struct {
	count           int
	caseInsensitive bool
	aliases         []alias
	noCatalog       bool
}

type alias struct {
	name  string
	value int64
}

// WithCount declares the expected number of enumeration values. New fails
// when the label count differs, which catches a label list that drifted
// from its const block. Pass the trailing sentinel constant when the const
// block carries one:
//
//	const (
//	    Red Color = iota
//	    Green
//	    Blue
//	    numColors
//	)
//
//	var Colors = enums.MustNew[Color](
//	    []string{"red", "green", "blue"},
//	    enums.WithCount(int(numColors)),
//	)
func WithCount(n int) Option {
	return func(s *settings) {
		s.count = n
	}
}

// WithCaseInsensitive makes Parse and Lookup match labels and aliases
// regardless of case. Label and alias uniqueness is then enforced on the
// folded forms.
func WithCaseInsensitive() Option {
	return func(s *settings) {
		s.caseInsensitive = true
	}
}

// WithAlias registers a parse-only synonym for v. Aliases are consulted
// by Parse and Lookup but never produced by Label or Format, so "warning"
// can resolve to the value labeled "warn" without changing its canonical
// spelling. The alias value must be inside the label range.
func WithAlias[E Value](name string, v E) Option {
	return func(s *settings) {
		s.aliases = append(s.aliases, alias{name: name, value: int64(v)})
	}
}

// WithoutCatalog skips process-wide catalog registration. Intended for
// tests that construct throwaway converters for types already registered
// elsewhere.
func WithoutCatalog() Option {
	return func(s *settings) {
		s.noCatalog = true
	}
}
