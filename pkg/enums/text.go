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

// MarshalText returns the label for v as a byte slice. It is the one-line
// body for an enumeration type's encoding.TextMarshaler method, which also
// covers JSON and YAML encoding:
//
//	func (c Color) MarshalText() ([]byte, error) { return Colors.MarshalText(c) }
func (e *Enum[E]) MarshalText(v E) ([]byte, error) {
	label, err := e.Label(v)
	if err != nil {
		return nil, err
	}
	return []byte(label), nil
}

// UnmarshalText parses a label from a byte slice. It is the body for an
// enumeration type's encoding.TextUnmarshaler method:
//
//	func (c *Color) UnmarshalText(data []byte) error {
//	    v, err := Colors.UnmarshalText(data)
//	    if err != nil {
//	        return err
//	    }
//	    *c = v
//	    return nil
//	}
func (e *Enum[E]) UnmarshalText(data []byte) (E, error) {
	return e.Parse(string(data))
}

// AppendText appends the label for v to b, the encoding.TextAppender
// shape. On error b is returned unchanged.
func (e *Enum[E]) AppendText(b []byte, v E) ([]byte, error) {
	label, err := e.Label(v)
	if err != nil {
		return b, err
	}
	return append(b, label...), nil
}
