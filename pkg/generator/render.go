/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/NVIDIA/go-enums/pkg/defaults"
	"github.com/NVIDIA/go-enums/pkg/errors"
)

// Rendered is one generated file rendering, not yet written to disk.
type Rendered struct {
	// Type is the enumeration type the file covers.
	Type string

	// Path is the target location of the generated file.
	Path string

	// Labels are the derived labels in value order.
	Labels []string

	// Content is the gofmt-formatted file content.
	Content []byte
}

type renderAlias struct {
	Label string
	Const string
}

type renderData struct {
	Package       string
	Type          string
	Receiver      string
	VarName       string
	LabelsLiteral string
	Options       []string
	JSON          bool
}

var enumTemplate = template.Must(template.New("enum").Parse(`// Code generated by enumgen. DO NOT EDIT.

package {{.Package}}

import (
{{if .JSON}}	"encoding/json"

{{end}}	"github.com/NVIDIA/go-enums/pkg/enums"
)

var {{.VarName}} = enums.MustNew[{{.Type}}]({{.LabelsLiteral}}{{range .Options}},
	{{.}}{{end}})

// String returns the label for the value, or a "{{.Type}}(n)" form when the
// value has no label.
func ({{.Receiver}} {{.Type}}) String() string {
	return {{.VarName}}.Format({{.Receiver}})
}

// IsValid reports whether the value is one of the declared {{.Type}} values.
func ({{.Receiver}} {{.Type}}) IsValid() bool {
	return {{.VarName}}.IsValid({{.Receiver}})
}

// MarshalText implements encoding.TextMarshaler.
func ({{.Receiver}} {{.Type}}) MarshalText() ([]byte, error) {
	return {{.VarName}}.MarshalText({{.Receiver}})
}

// UnmarshalText implements encoding.TextUnmarshaler.
func ({{.Receiver}} *{{.Type}}) UnmarshalText(data []byte) error {
	v, err := {{.VarName}}.UnmarshalText(data)
	if err != nil {
		return err
	}
	*{{.Receiver}} = v
	return nil
}
{{if .JSON}}
// MarshalJSON implements json.Marshaler.
func ({{.Receiver}} {{.Type}}) MarshalJSON() ([]byte, error) {
	label, err := {{.VarName}}.Label({{.Receiver}})
	if err != nil {
		return nil, err
	}
	return json.Marshal(label)
}

// UnmarshalJSON implements json.Unmarshaler.
func ({{.Receiver}} *{{.Type}}) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	v, err := {{.VarName}}.Parse(label)
	if err != nil {
		return err
	}
	*{{.Receiver}} = v
	return nil
}
{{end}}
// Parse{{.Type}} converts a label into a {{.Type}} value.
func Parse{{.Type}}(s string) ({{.Type}}, error) {
	return {{.VarName}}.Parse(s)
}

// Lookup{{.Type}} converts a label into a {{.Type}} value, reporting
// whether the label is known.
func Lookup{{.Type}}(s string) ({{.Type}}, bool) {
	return {{.VarName}}.Lookup(s)
}

// {{.Type}}Labels returns the declared labels in value order.
func {{.Type}}Labels() []string {
	return {{.VarName}}.Labels()
}

// {{.Type}}Values returns the declared {{.Type}} values in order.
func {{.Type}}Values() []{{.Type}} {
	return {{.VarName}}.Values()
}
`))

// renderType derives labels for the type and renders its generated file.
func renderType(et *EnumType, spec TypeSpec, outputDir string) (Rendered, error) {
	labels, aliases, err := deriveLabels(et, spec)
	if err != nil {
		return Rendered{}, err
	}

	options := make([]string, 0, 2+len(aliases))
	if et.Sentinel != "" {
		options = append(options, fmt.Sprintf("enums.WithCount(int(%s))", et.Sentinel))
	}
	if spec.CaseInsensitive {
		options = append(options, "enums.WithCaseInsensitive()")
	}
	for _, a := range aliases {
		options = append(options, fmt.Sprintf("enums.WithAlias(%q, %s)", a.Label, a.Const))
	}

	data := renderData{
		Package:       et.Package,
		Type:          et.Name,
		Receiver:      receiverName(et.Name),
		VarName:       "_" + et.Name + "Enum",
		LabelsLiteral: labelsLiteral(labels),
		Options:       options,
		JSON:          spec.JSON,
	}

	var buf bytes.Buffer
	if err := enumTemplate.Execute(&buf, data); err != nil {
		return Rendered{}, errors.WrapWithContext(errors.ErrCodeInternal,
			"rendering enumeration file", err, map[string]any{"type": et.Name})
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return Rendered{}, errors.WrapWithContext(errors.ErrCodeInternal,
			"formatting generated code", err, map[string]any{"type": et.Name})
	}

	dir := et.Dir
	if outputDir != "" {
		dir = outputDir
	}

	return Rendered{
		Type:    et.Name,
		Path:    filepath.Join(dir, GeneratedFileName(et.Name)),
		Labels:  labels,
		Content: src,
	}, nil
}

// deriveLabels builds the label table and alias list for one type,
// applying manifest overrides and rejecting collisions before any code is
// emitted. Collisions would otherwise only surface as an init panic in the
// generated package.
func deriveLabels(et *EnumType, spec TypeSpec) ([]string, []renderAlias, error) {
	names := make(map[string]bool, len(et.Constants))
	for _, c := range et.Constants {
		names[c.Name] = true
	}

	for name := range spec.Labels {
		if !names[name] {
			return nil, nil, errors.NewWithContext(errors.ErrCodeInvalidManifest,
				"label override references unknown constant",
				map[string]any{"type": et.Name, "constant": name})
		}
	}

	fold := func(s string) string {
		if spec.CaseInsensitive {
			return strings.ToLower(s)
		}
		return s
	}

	labels := make([]string, 0, len(et.Constants))
	seen := make(map[string]string, len(et.Constants))
	for _, c := range et.Constants {
		label, ok := spec.Labels[c.Name]
		if !ok {
			trimmed := strings.TrimPrefix(c.Name, spec.TrimPrefix)
			if trimmed == "" {
				trimmed = c.Name
			}
			label = spec.Transform.Apply(trimmed)
		}
		if label == "" {
			return nil, nil, errors.NewWithContext(errors.ErrCodeInvalidManifest,
				"label override cannot be empty",
				map[string]any{"type": et.Name, "constant": c.Name})
		}
		if prev, dup := seen[fold(label)]; dup {
			return nil, nil, errors.NewWithContext(errors.ErrCodeInvalidRegistration,
				"constants derive the same label",
				map[string]any{"type": et.Name, "label": label,
					"constants": []string{prev, c.Name}})
		}
		seen[fold(label)] = c.Name
		labels = append(labels, label)
	}

	aliases := make([]renderAlias, 0, len(spec.Aliases))
	for _, a := range spec.Aliases {
		if strings.TrimSpace(a.Name) == "" {
			return nil, nil, errors.NewWithContext(errors.ErrCodeInvalidManifest,
				"alias name cannot be empty",
				map[string]any{"type": et.Name, "constant": a.Value})
		}
		if !names[a.Value] {
			return nil, nil, errors.NewWithContext(errors.ErrCodeInvalidManifest,
				"alias references unknown constant",
				map[string]any{"type": et.Name, "alias": a.Name, "constant": a.Value})
		}
		if prev, dup := seen[fold(a.Name)]; dup {
			return nil, nil, errors.NewWithContext(errors.ErrCodeInvalidRegistration,
				"alias collides with an existing label",
				map[string]any{"type": et.Name, "alias": a.Name, "constant": prev})
		}
		seen[fold(a.Name)] = a.Value
		aliases = append(aliases, renderAlias{Label: a.Name, Const: a.Value})
	}

	return labels, aliases, nil
}

// GeneratedFileName returns the file name emitted for a type,
// e.g. "HTTPStatus" becomes "http_status_enums.go".
func GeneratedFileName(typeName string) string {
	return TransformSnake.Apply(typeName) + defaults.GeneratedFileSuffix
}

func labelsLiteral(labels []string) string {
	var b strings.Builder
	b.WriteString("[]string{")
	for i, l := range labels {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", l)
	}
	b.WriteString("}")
	return b.String()
}

func receiverName(typeName string) string {
	for _, r := range typeName {
		return string(unicode.ToLower(r))
	}
	return "e"
}
