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

package serializer

import (
	"github.com/NVIDIA/go-enums/pkg/enums"
)

// Format represents the output format type.
type Format int

const (
	// FormatJSON outputs data in JSON format
	FormatJSON Format = iota
	// FormatYAML outputs data in YAML format
	FormatYAML
	// FormatTable outputs data in table format
	FormatTable
	numFormats
)

var formats = enums.MustNew[Format](
	[]string{"json", "yaml", "table"},
	enums.WithCount(int(numFormats)),
	enums.WithCaseInsensitive(),
	enums.WithAlias("yml", FormatYAML),
	enums.WithAlias("txt", FormatTable),
)

// String returns the format's label, or a placeholder for out-of-range values.
func (f Format) String() string {
	return formats.Format(f)
}

// IsValid returns true if the format is one of the supported output formats.
func (f Format) IsValid() bool {
	return formats.IsValid(f)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return formats.MarshalText(f)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(data []byte) error {
	v, err := formats.UnmarshalText(data)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFormat parses a format name ("json", "yaml", "table", case-insensitive,
// with "yml" and "txt" accepted as aliases). Unknown names yield an
// invalid-representation error listing the supported formats.
func ParseFormat(s string) (Format, error) {
	return formats.Parse(s)
}

// LookupFormat is the non-erroring variant of ParseFormat.
func LookupFormat(s string) (Format, bool) {
	return formats.Lookup(s)
}

// SupportedFormats returns a list of all supported output formats
// for serialization.
func SupportedFormats() []string {
	return formats.Labels()
}
