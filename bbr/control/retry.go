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

// armRegistrationRetry schedules a registration attempt after an observed
// role vacancy. A coordinating router registers on the next tick; other
// candidates add a random delay to avoid a registration storm. Re-arming
// simply overwrites a pending countdown.
func (l *Local) armRegistrationRetry() {
	l.registrationTimeout = 1
	if !l.mesh.IsCoordinatingRouter() {
		l.registrationTimeout +=
			l.rand.Uint16InRange(0, uint16(l.registrationJitter)+1)
	}
	l.ticks.RegisterReceiver(TickReceiverLocal)
}

// HandleTick advances the registration countdown by one tick. While the mesh
// reports a pending role selection jitter of its own the countdown is frozen
// entirely: nothing is decremented and the tick registration stays in place,
// so the two jitter windows never race. Once the countdown reaches zero a
// state-based registration is attempted and the controller deregisters from
// the tick source.
func (l *Local) HandleTick() {
	if l.mesh.PendingRoleSelectionJitter() != 0 {
		return
	}
	if l.registrationTimeout > 0 {
		l.registrationTimeout--
		if l.registrationTimeout == 0 {
			_ = l.AddService(DecideBasedOnState)
		}
	}
	if l.registrationTimeout == 0 {
		l.ticks.UnregisterReceiver(TickReceiverLocal)
	}
}
