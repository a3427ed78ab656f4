// Copyright 2025 OpenBackbone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bbr

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/openbackbone/backbone/bbr/control"
	"github.com/openbackbone/backbone/pkg/metrics"
)

// NewControllerMetrics registers the controller metrics with the default
// prometheus registry. Must be called at most once per process.
func NewControllerMetrics() control.Metrics {
	return control.Metrics{
		RoleTransitions: metrics.NewPromCounterFrom(
			prometheus.CounterOpts{
				Name: "bbr_role_transitions_total",
				Help: "Total number of backbone router role transitions.",
			},
			[]string{"from", "to"},
		),
		RegistrationAttempts: metrics.NewPromCounterFrom(
			prometheus.CounterOpts{
				Name: "bbr_registration_attempts_total",
				Help: "Total number of backbone service registration attempts.",
			},
			[]string{"mode", "result"},
		),
		CurrentRole: metrics.NewPromGaugeFrom(
			prometheus.GaugeOpts{
				Name: "bbr_current_role",
				Help: "Current backbone router role (0 disabled, 1 secondary, 2 primary).",
			},
			nil,
		),
	}
}
