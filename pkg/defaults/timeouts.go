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

import "time"

// Generation timeouts for enum code generation runs.
const (
	// GenerateTimeout is the default timeout for a full generation run
	// covering every package directory passed on the command line.
	GenerateTimeout = 2 * time.Minute

	// DiscoverTimeout is the timeout for parsing a single package's
	// sources during constant discovery. Discovery should respect
	// parent context deadlines when shorter.
	DiscoverTimeout = 30 * time.Second
)

// Verification timeouts for checking generated files against manifests.
const (
	// VerifyTimeout is the default timeout for a verify run.
	VerifyTimeout = 1 * time.Minute

	// InspectTimeout is the timeout for catalog inspection.
	InspectTimeout = 10 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIRunTimeout is the outer guard for any single CLI command.
	// Individual operations carry tighter timeouts of their own.
	CLIRunTimeout = 5 * time.Minute
)
