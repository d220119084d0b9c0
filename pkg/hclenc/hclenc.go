/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package hclenc decodes and encodes registered enumeration values for
// HCL-configured tools. Enum attributes are written as their labels:
//
//	priority = "high"
//
// and decode through the type's registered label table, so configuration
// errors carry the same context as every other conversion failure.
// Numeric attribute values are accepted when they fall inside the label
// range.
package hclenc

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/NVIDIA/go-enums/pkg/enums"
	"github.com/NVIDIA/go-enums/pkg/errors"
)

// FromCty converts a cty value into an enumeration value. String values
// parse through the registered label table (aliases included), number
// values convert when inside the label range, and other types convert to
// string first when cty allows it.
func FromCty[E enums.Value](reg *enums.Enum[E], val cty.Value) (E, error) {
	var zero E

	if val.IsNull() {
		return zero, errors.NewWithContext(errors.ErrCodeInvalidRepresentation,
			"cannot decode null value",
			map[string]any{"type": reg.TypeName()})
	}
	if !val.IsKnown() {
		return zero, errors.NewWithContext(errors.ErrCodeInvalidRepresentation,
			"cannot decode unknown value",
			map[string]any{"type": reg.TypeName()})
	}

	if val.Type() == cty.String {
		return reg.Parse(val.AsString())
	}

	if val.Type() == cty.Number {
		var n int64
		if err := gocty.FromCtyValue(val, &n); err != nil {
			return zero, errors.WrapWithContext(errors.ErrCodeInvalidRepresentation,
				"decoding numeric value", err,
				map[string]any{"type": reg.TypeName()})
		}
		v := E(n)
		if int64(v) != n {
			return zero, errors.NewWithContext(errors.ErrCodeInvalidRepresentation,
				"numeric value overflows the enumeration type",
				map[string]any{"type": reg.TypeName(), "value": n})
		}
		if _, err := reg.Label(v); err != nil {
			return zero, err
		}
		return v, nil
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return zero, errors.WrapWithContext(errors.ErrCodeInvalidRepresentation,
			"cannot decode value", err,
			map[string]any{"type": reg.TypeName(), "ctyType": val.Type().FriendlyName()})
	}
	return reg.Parse(converted.AsString())
}

// ToCty converts an enumeration value into a cty string value carrying the
// registered label. A value outside the label range yields an
// invalid-representation error.
func ToCty[E enums.Value](reg *enums.Enum[E], v E) (cty.Value, error) {
	label, err := reg.Label(v)
	if err != nil {
		return cty.NilVal, err
	}
	return cty.StringVal(label), nil
}

// DecodeExpression evaluates an HCL expression against evalCtx and
// converts the result. Evaluation diagnostics are wrapped so callers get
// one error chain covering both evaluation and conversion failures.
func DecodeExpression[E enums.Value](reg *enums.Enum[E], expr hcl.Expression, evalCtx *hcl.EvalContext) (E, error) {
	var zero E

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return zero, errors.WrapWithContext(errors.ErrCodeInvalidRepresentation,
			"evaluating expression", diags,
			map[string]any{"type": reg.TypeName()})
	}
	return FromCty(reg, val)
}
