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

// Package enums associates ordered string label tables with integer-backed
// enumeration types and provides bidirectional conversion between values
// and labels.
//
// An Enum[E] is built once, normally as a package-level var, and is then
// immutable and safe for concurrent use without locking. The label at
// index i names the value E(i), so the table defines both the spelling
// and the valid range of the type.
//
// # Registration
//
// Declare the type and its constants the usual way, then register the
// labels next to them:
//
//	type Color int
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
//
// WithCount ties the label table to the trailing sentinel constant, so a
// constant added without a label (or the reverse) fails at load time
// rather than misconverting at run time. All validation happens inside
// New: empty or duplicate labels, count mismatches, and alias collisions
// are rejected with invalid-registration errors before the converter
// exists.
//
// # Conversion
//
// Both directions report failures explicitly. Values outside the table
// and unrecognized labels yield invalid-representation errors carrying
// the offending input and the valid alternatives:
//
//	label, err := Colors.Label(Green)   // "green", nil
//	_, err = Colors.Label(Color(7))     // no label for Color value 7, valid range: [0, 3)
//
//	v, err := Colors.Parse("blue")      // Blue, nil
//	_, err = Colors.Parse("magenta")    // invalid Color: "magenta", supported: red, green, blue
//
// Format is the infallible variant for fmt.Stringer implementations; it
// falls back to a "Color(7)" placeholder for out-of-range values:
//
//	func (c Color) String() string { return Colors.Format(c) }
//
// # Streams and encoding
//
// Write and Read insert and extract labels on text streams, one
// whitespace-delimited token per value:
//
//	var buf bytes.Buffer
//	_ = Colors.Write(&buf, Red)
//	v, _ := Colors.Read(&buf)           // Red
//
// MarshalText, UnmarshalText, and AppendText are one-line bodies for the
// standard encoding interfaces, which makes registered types usable with
// encoding/json and yaml.v3 directly:
//
//	func (c Color) MarshalText() ([]byte, error) { return Colors.MarshalText(c) }
//
// # Catalog
//
// Every New call records its type and label table in a process-wide
// catalog keyed by reflected type. The catalog is purely introspective;
// conversion always goes through the typed converter. Converters for
// distinct named types never share state, even when their underlying
// types and label sets coincide.
//
// # Generated code
//
// The enumgen tool (cmd/enumgen) discovers const blocks in Go sources and
// emits the registration var plus the method set shown above, so hand
// maintenance of label tables is only needed when labels diverge from
// constant names.
package enums
