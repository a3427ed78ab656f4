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

package control

import (
	"github.com/openbackbone/backbone/pkg/metrics"
)

// Metrics are the metrics modified during controller operation. If a field
// is nil, the corresponding metric is not reported.
type Metrics struct {
	// RoleTransitions counts role transitions, labeled by "from" and "to".
	RoleTransitions metrics.Counter
	// RegistrationAttempts counts service registration attempts, labeled by
	// "mode" and "result".
	RegistrationAttempts metrics.Counter
	// CurrentRole holds the current role as a number: 0 disabled,
	// 1 secondary, 2 primary.
	CurrentRole metrics.Gauge
}
