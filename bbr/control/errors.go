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

import "errors"

// Error kinds returned by the controller. Callers match them with errors.Is;
// returned errors carry additional context via serrors.
var (
	// ErrInvalidArgument indicates malformed caller input, such as a
	// zero-length prefix or an out-of-range configuration value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState indicates an operation attempted while the controller
	// is disabled, the node is detached, or another node holds the role.
	ErrInvalidState = errors.New("invalid state")
	// ErrNotFound indicates a query or removal against absent data.
	ErrNotFound = errors.New("not found")
)
