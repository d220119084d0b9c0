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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registration metrics
	registeredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enums_registered_total",
			Help: "Total number of enum types registered in the process catalog",
		},
	)

	// Conversion failure metrics
	parseFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enums_parse_failures_total",
			Help: "Total number of label to value conversion failures",
		},
	)
	formatFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enums_format_failures_total",
			Help: "Total number of value to label conversion failures",
		},
	)
)
