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

package version

import (
	"testing"
)

// FuzzParseVersion exercises ParseVersion with arbitrary input. Manifest
// minVersion fields come straight from user-authored files, so the parser
// must never panic and every accepted version must round-trip.
func FuzzParseVersion(f *testing.F) {
	f.Add("1")
	f.Add("v1")
	f.Add("1.2")
	f.Add("1.2.3")
	f.Add("v1.2.3")
	f.Add("0.0.0")
	f.Add("999.999.999")
	f.Add("1.2.3-rc.1")
	f.Add("1.2.3+dev")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("v")
	f.Add("vv1")
	f.Add("-1")
	f.Add("1.-2")
	f.Add("a.b.c")
	f.Add("1.2.3.4")
	f.Add("   1.2.3")
	f.Add("1. 2.3")

	f.Fuzz(func(t *testing.T, input string) {
		v, err := ParseVersion(input)
		if err != nil {
			return
		}

		if !v.IsValid() {
			t.Errorf("ParseVersion(%q) returned invalid version: %+v", input, v)
		}

		// Re-parsing the rendered string must produce the same version.
		s := v.String()
		v2, err2 := ParseVersion(s)
		if err2 != nil {
			t.Errorf("re-parsing %q (from %q) failed: %v", s, input, err2)
		} else if v.Major != v2.Major || v.Minor != v2.Minor || v.Patch != v2.Patch || v.Precision != v2.Precision {
			t.Errorf("round-trip mismatch for %q: %+v != %+v", input, v, v2)
		}

		// Comparison methods must not panic on any accepted version.
		ref := NewVersion(1, 2, 3)
		_ = v.EqualsOrNewer(ref)
		_ = v.IsNewer(ref)
		_ = v.Equals(ref)
		_ = v.Compare(ref)
	})
}
