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
	"io"

	apperrors "github.com/NVIDIA/go-enums/pkg/errors"
)

// Write inserts the label for v into a text stream. A value outside the
// label range yields the same invalid-representation error as Label, and
// nothing is written.
func (e *Enum[E]) Write(w io.Writer, v E) error {
	label, err := e.Label(v)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, label); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal,
			fmt.Sprintf("writing %s label", e.name), err)
	}
	return nil
}

// Read extracts one whitespace-delimited token from a text stream and
// converts it to a value of E. An unrecognized token yields the same
// invalid-representation error as Parse; stream errors, including io.EOF
// on an exhausted reader, propagate wrapped and remain matchable with
// errors.Is.
func (e *Enum[E]) Read(r io.Reader) (E, error) {
	var token string
	if _, err := fmt.Fscan(r, &token); err != nil {
		var zero E
		return zero, apperrors.Wrap(apperrors.ErrCodeInternal,
			fmt.Sprintf("reading %s token", e.name), err)
	}
	return e.Parse(token)
}
