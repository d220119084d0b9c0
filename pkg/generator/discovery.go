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

package generator

import (
	"cmp"
	"context"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/NVIDIA/go-enums/pkg/defaults"
	"github.com/NVIDIA/go-enums/pkg/errors"
)

// EnumType describes one discovered integer-backed enumeration type.
type EnumType struct {
	// Name is the declared type name (e.g. "Color").
	Name string `json:"name" yaml:"name"`

	// Underlying is the integer kind backing the type (e.g. "int", "int16").
	Underlying string `json:"underlying" yaml:"underlying"`

	// Package is the name of the package declaring the type.
	Package string `json:"package" yaml:"package"`

	// Dir is the directory containing the declaring sources.
	Dir string `json:"dir" yaml:"dir"`

	// Constants holds the declared values ordered by value, sentinel excluded.
	Constants []Constant `json:"constants" yaml:"constants"`

	// Sentinel is the name of the trailing count marker, empty when absent.
	Sentinel string `json:"sentinel,omitempty" yaml:"sentinel,omitempty"`
}

// Constant is one declared enumeration constant.
type Constant struct {
	// Name is the constant identifier.
	Name string `json:"name" yaml:"name"`

	// Value is the evaluated constant value.
	Value int64 `json:"value" yaml:"value"`
}

// integerKinds are the underlying types eligible for enumeration tables.
var integerKinds = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
}

// discoverDir parses the Go package in dir and returns its integer-backed
// enumeration types. When wanted is non-empty, only those types are
// returned and any declaration problem among them is an error; for
// unrequested types problems demote to a warning (bitmask and offset const
// blocks are legitimate declarations that simply aren't enumerations).
func discoverDir(ctx context.Context, dir string, wanted map[string]bool, sentinelSuffix string) ([]*EnumType, error) {
	files, pkgName, err := parseDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRegistration,
			"no Go sources found", map[string]any{"dir": dir})
	}

	underlying := collectIntegerTypes(files)
	grouped := collectConstants(files, underlying)

	var result []*EnumType
	for name, constants := range grouped {
		if len(wanted) > 0 && !wanted[name] {
			continue
		}

		et := &EnumType{
			Name:       name,
			Underlying: underlying[name],
			Package:    pkgName,
			Dir:        dir,
			Constants:  constants,
		}
		if err := normalizeEnumType(et, sentinelSuffix); err != nil {
			if wanted[name] {
				return nil, err
			}
			slog.Warn("skipping type, constants do not form an enumeration",
				"type", name,
				"dir", dir,
				"reason", err)
			continue
		}
		result = append(result, et)
	}

	slices.SortFunc(result, func(a, b *EnumType) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result, nil
}

// parseDir parses every non-test, non-generated Go file in dir, checking
// the context between files so a deadline can interrupt large packages.
func parseDir(ctx context.Context, dir string) ([]*ast.File, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInternal, "reading source directory", err)
	}

	fset := token.NewFileSet()
	var files []*ast.File
	var pkgName string

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		name := entry.Name()
		if entry.IsDir() ||
			!strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") ||
			strings.HasSuffix(name, defaults.GeneratedFileSuffix) {
			continue
		}

		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, "", errors.WrapWithContext(errors.ErrCodeInvalidRegistration,
				"parsing source file", err, map[string]any{"file": name})
		}

		// Ignore stray files from a different package (e.g. main in a tool dir)
		if pkgName == "" {
			pkgName = f.Name.Name
		} else if f.Name.Name != pkgName {
			continue
		}
		files = append(files, f)
	}

	return files, pkgName, nil
}

// collectIntegerTypes returns the names of declared types with an integer
// underlying kind. Type aliases are excluded since methods cannot be
// declared on them.
func collectIntegerTypes(files []*ast.File) map[string]string {
	found := make(map[string]string)
	for _, f := range files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Assign.IsValid() {
					continue
				}
				if ident, ok := ts.Type.(*ast.Ident); ok && integerKinds[ident.Name] {
					found[ts.Name.Name] = ident.Name
				}
			}
		}
	}
	return found
}

// collectConstants walks const blocks and groups evaluated constants by
// their declared enum type. Constants whose expressions cannot be
// evaluated are recorded with a poisoned value so validation reports them.
func collectConstants(files []*ast.File, underlying map[string]string) map[string][]Constant {
	grouped := make(map[string][]Constant)
	known := make(map[string]constant.Value)

	for _, f := range files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}

			curType := ""
			var curExprs []ast.Expr

			for iotaVal, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				// A new type or a new expression list resets the carried state;
				// a bare name list repeats the previous spec with the next iota.
				if vs.Type != nil {
					curType = ""
					if ident, ok := vs.Type.(*ast.Ident); ok {
						curType = ident.Name
					}
					curExprs = vs.Values
				} else if len(vs.Values) > 0 {
					curType = ""
					curExprs = vs.Values
				}

				for i, nameIdent := range vs.Names {
					if i >= len(curExprs) {
						continue
					}
					val, ok := evalConstExpr(curExprs[i], iotaVal, known)
					if ok {
						known[nameIdent.Name] = val
					}
					if _, isEnum := underlying[curType]; !isEnum {
						continue
					}
					if nameIdent.Name == "_" {
						continue
					}

					c := Constant{Name: nameIdent.Name, Value: -1}
					if ok {
						if n, exact := constant.Int64Val(val); exact {
							c.Value = n
						}
					}
					grouped[curType] = append(grouped[curType], c)
				}
			}
		}
	}

	return grouped
}

// evalConstExpr evaluates the subset of constant expressions that appear in
// enumeration declarations: integer literals, iota, references to earlier
// constants, conversions, parentheses, and basic arithmetic.
func evalConstExpr(expr ast.Expr, iotaVal int, known map[string]constant.Value) (constant.Value, bool) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.INT {
			return nil, false
		}
		v := constant.MakeFromLiteral(e.Value, e.Kind, 0)
		return v, v.Kind() == constant.Int

	case *ast.Ident:
		if e.Name == "iota" {
			return constant.MakeInt64(int64(iotaVal)), true
		}
		v, ok := known[e.Name]
		return v, ok

	case *ast.ParenExpr:
		return evalConstExpr(e.X, iotaVal, known)

	case *ast.CallExpr:
		// Conversions like Color(2)
		if len(e.Args) != 1 {
			return nil, false
		}
		if _, ok := e.Fun.(*ast.Ident); !ok {
			return nil, false
		}
		return evalConstExpr(e.Args[0], iotaVal, known)

	case *ast.UnaryExpr:
		x, ok := evalConstExpr(e.X, iotaVal, known)
		if !ok || x.Kind() != constant.Int {
			return nil, false
		}
		switch e.Op {
		case token.ADD, token.SUB, token.XOR:
			return constant.UnaryOp(e.Op, x, 0), true
		default:
			return nil, false
		}

	case *ast.BinaryExpr:
		x, ok := evalConstExpr(e.X, iotaVal, known)
		if !ok || x.Kind() != constant.Int {
			return nil, false
		}
		y, ok := evalConstExpr(e.Y, iotaVal, known)
		if !ok || y.Kind() != constant.Int {
			return nil, false
		}
		switch e.Op {
		case token.SHL, token.SHR:
			s, exact := constant.Uint64Val(y)
			if !exact || s > 63 {
				return nil, false
			}
			return constant.Shift(x, e.Op, uint(s)), true
		case token.ADD, token.SUB, token.MUL, token.AND, token.OR, token.XOR:
			return constant.BinaryOp(x, e.Op, y), true
		case token.QUO, token.REM:
			if n, _ := constant.Int64Val(y); n == 0 {
				return nil, false
			}
			op := e.Op
			if op == token.QUO {
				// QUO_ASSIGN forces integer division of Int operands
				op = token.QUO_ASSIGN
			}
			return constant.BinaryOp(x, op, y), true
		default:
			return nil, false
		}
	}

	return nil, false
}

// normalizeEnumType sorts constants by value, strips a trailing sentinel,
// and verifies the remaining values run contiguously from zero.
func normalizeEnumType(et *EnumType, sentinelSuffix string) error {
	if len(et.Constants) == 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRegistration,
			"no constants declared for type", map[string]any{"type": et.Name})
	}

	slices.SortStableFunc(et.Constants, func(a, b Constant) int {
		return cmp.Compare(a.Value, b.Value)
	})

	last := et.Constants[len(et.Constants)-1]
	if len(et.Constants) > 1 && isSentinelName(last.Name, sentinelSuffix) {
		et.Sentinel = last.Name
		et.Constants = et.Constants[:len(et.Constants)-1]
		if want := int64(len(et.Constants)); last.Value != want {
			return errors.NewWithContext(errors.ErrCodeInvalidRegistration,
				"sentinel value does not match the number of constants",
				map[string]any{"type": et.Name, "sentinel": last.Name,
					"value": last.Value, "want": want})
		}
	}

	for i, c := range et.Constants {
		if c.Value == int64(i) {
			continue
		}
		msg := "constant values must be contiguous starting at zero"
		switch {
		case i > 0 && c.Value == et.Constants[i-1].Value:
			msg = "duplicate constant value"
		case c.Value < 0:
			msg = "constant value cannot be evaluated or is negative"
		}
		return errors.NewWithContext(errors.ErrCodeInvalidRegistration, msg,
			map[string]any{"type": et.Name, "constant": c.Name,
				"value": c.Value, "want": i})
	}

	return nil
}

// isSentinelName reports whether a constant name marks the count sentinel.
// Both the configured suffix (e.g. "ColorEnd") and the unexported
// "numColors" idiom are recognized.
func isSentinelName(name, suffix string) bool {
	if suffix != "" && strings.HasSuffix(strings.ToLower(name), strings.ToLower(suffix)) {
		return true
	}
	return strings.HasPrefix(name, "num") &&
		len(name) > 3 &&
		unicode.IsUpper(rune(name[3]))
}
