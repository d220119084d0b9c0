/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/go-enums/pkg/enums"
)

// Transform represents a label derivation rule applied to constant names.
type Transform int

const (
	// TransformNone keeps the constant name as the label.
	TransformNone Transform = iota

	// TransformLower lowercases the constant name.
	TransformLower

	// TransformUpper uppercases the constant name.
	TransformUpper

	// TransformSnake converts CamelCase names to snake_case.
	TransformSnake

	// TransformKebab converts CamelCase names to kebab-case.
	TransformKebab

	// TransformTitle converts names to Title case.
	TransformTitle

	numTransforms
)

var transforms = enums.MustNew[Transform](
	[]string{"none", "lower", "upper", "snake", "kebab", "title"},
	enums.WithCount(int(numTransforms)),
	enums.WithCaseInsensitive())

// String returns the transform label.
func (t Transform) String() string {
	return transforms.Format(t)
}

// IsValid reports whether the transform is one of the declared values.
func (t Transform) IsValid() bool {
	return transforms.IsValid(t)
}

// MarshalText implements encoding.TextMarshaler.
func (t Transform) MarshalText() ([]byte, error) {
	return transforms.MarshalText(t)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Transform) UnmarshalText(data []byte) error {
	v, err := transforms.UnmarshalText(data)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Transform) MarshalYAML() (any, error) {
	return transforms.Label(t)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Transform) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := transforms.Parse(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseTransform converts a transform name into a Transform value.
// Parsing is case-insensitive.
func ParseTransform(s string) (Transform, error) {
	return transforms.Parse(s)
}

// SupportedTransforms returns the recognized transform names.
func SupportedTransforms() []string {
	return transforms.Labels()
}

// Apply derives a label from a constant name according to the transform.
func (t Transform) Apply(name string) string {
	switch t {
	case TransformLower:
		return strings.ToLower(name)
	case TransformUpper:
		return strings.ToUpper(name)
	case TransformSnake:
		return strings.Join(splitWords(name), "_")
	case TransformKebab:
		return strings.Join(splitWords(name), "-")
	case TransformTitle:
		// Caser instances are not safe for concurrent use, so build one per call.
		return cases.Title(language.English).String(strings.ToLower(name))
	default:
		return name
	}
}

// splitWords breaks a CamelCase identifier into lowercase words.
// Acronym runs stay together, so "HTTPServer" yields ["http", "server"].
func splitWords(name string) []string {
	runes := []rune(name)
	words := make([]string, 0, 2)
	start := 0

	flush := func(end int) {
		if end > start {
			words = append(words, strings.ToLower(string(runes[start:end])))
		}
		start = end
	}

	for i := 1; i < len(runes); i++ {
		switch {
		case runes[i] == '_':
			flush(i)
			start = i + 1
		case unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]):
			flush(i)
		case unicode.IsUpper(runes[i]) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
		}
	}
	flush(len(runes))

	return words
}
