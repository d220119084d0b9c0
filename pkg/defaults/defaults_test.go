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

package defaults

import (
	"strings"
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"GenerateTimeout", GenerateTimeout, 30 * time.Second, 10 * time.Minute},
		{"DiscoverTimeout", DiscoverTimeout, 5 * time.Second, 2 * time.Minute},
		{"VerifyTimeout", VerifyTimeout, 10 * time.Second, 5 * time.Minute},
		{"InspectTimeout", InspectTimeout, 1 * time.Second, 1 * time.Minute},
		{"CLIRunTimeout", CLIRunTimeout, 1 * time.Minute, 15 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestDiscoverTimeoutLessThanGenerate(t *testing.T) {
	// A single package parse must fit inside a full generation run.
	if DiscoverTimeout >= GenerateTimeout {
		t.Errorf("DiscoverTimeout (%v) should be less than GenerateTimeout (%v)",
			DiscoverTimeout, GenerateTimeout)
	}
}

func TestCLIRunTimeoutCoversOperations(t *testing.T) {
	// The outer CLI guard must not cut off any single operation's timeout.
	if CLIRunTimeout < GenerateTimeout {
		t.Errorf("CLIRunTimeout (%v) should be at least GenerateTimeout (%v)",
			CLIRunTimeout, GenerateTimeout)
	}
	if CLIRunTimeout < VerifyTimeout {
		t.Errorf("CLIRunTimeout (%v) should be at least VerifyTimeout (%v)",
			CLIRunTimeout, VerifyTimeout)
	}
}

func TestGenerationConstants(t *testing.T) {
	if !strings.HasSuffix(GeneratedFileSuffix, ".go") {
		t.Errorf("GeneratedFileSuffix %q must end in .go", GeneratedFileSuffix)
	}
	if !strings.HasSuffix(DefaultManifestName, ".yaml") {
		t.Errorf("DefaultManifestName %q must end in .yaml", DefaultManifestName)
	}
	if MaxParallelism < 1 {
		t.Errorf("MaxParallelism (%d) must be at least 1", MaxParallelism)
	}
}

func TestFileModes(t *testing.T) {
	if OutputFileMode&0o200 == 0 {
		t.Errorf("OutputFileMode (%o) must be owner-writable", OutputFileMode)
	}
	if OutputDirMode&0o100 == 0 {
		t.Errorf("OutputDirMode (%o) must be owner-executable", OutputDirMode)
	}
}
