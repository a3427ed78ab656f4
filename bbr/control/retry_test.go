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

package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbackbone/backbone/bbr/control"
	"github.com/openbackbone/backbone/pkg/addr"
)

func TestVacancyArmsJitteredRetry(t *testing.T) {
	e := newEnv(t)
	e.enable(t)
	require.Len(t, e.records, 1)

	// Vacancy with a drawn jitter of 2 arms a three-tick countdown.
	e.mesh.EXPECT().IsCoordinatingRouter().Return(false)
	e.rand.EXPECT().Uint16InRange(uint16(0), uint16(6)).Return(uint16(2))
	e.ticks.EXPECT().RegisterReceiver(control.TickReceiverLocal)
	e.local.HandleLeaderRoleUpdate(control.LeaderUpdate{Holder: addr.ShortAddrInvalid})

	e.mesh.EXPECT().PendingRoleSelectionJitter().Return(uint16(0)).AnyTimes()
	e.local.HandleTick()
	e.local.HandleTick()
	assert.Len(t, e.records, 1)

	e.ticks.EXPECT().UnregisterReceiver(control.TickReceiverLocal)
	e.local.HandleTick()
	assert.Len(t, e.records, 2)
}

func TestCoordinatingRouterSkipsJitter(t *testing.T) {
	e := newEnv(t)
	e.enable(t)

	// A coordinating router draws no jitter and registers on the next tick.
	e.mesh.EXPECT().IsCoordinatingRouter().Return(true)
	e.ticks.EXPECT().RegisterReceiver(control.TickReceiverLocal)
	e.local.HandleLeaderRoleUpdate(control.LeaderUpdate{Holder: addr.ShortAddrInvalid})

	e.mesh.EXPECT().PendingRoleSelectionJitter().Return(uint16(0))
	e.ticks.EXPECT().UnregisterReceiver(control.TickReceiverLocal)
	e.local.HandleTick()
	assert.Len(t, e.records, 2)
}

// TestTickFrozenDuringRoleSelection checks that a pending mesh role selection
// suspends the countdown entirely instead of just delaying the registration.
func TestTickFrozenDuringRoleSelection(t *testing.T) {
	e := newEnv(t)
	e.enable(t)

	e.mesh.EXPECT().IsCoordinatingRouter().Return(false)
	e.rand.EXPECT().Uint16InRange(uint16(0), uint16(6)).Return(uint16(1))
	e.ticks.EXPECT().RegisterReceiver(control.TickReceiverLocal)
	e.local.HandleLeaderRoleUpdate(control.LeaderUpdate{Holder: addr.ShortAddrInvalid})

	// Three frozen ticks: no decrement, no deregistration.
	e.mesh.EXPECT().PendingRoleSelectionJitter().Return(uint16(7)).Times(3)
	e.local.HandleTick()
	e.local.HandleTick()
	e.local.HandleTick()
	assert.Len(t, e.records, 1)

	// The full two-tick countdown still runs afterwards.
	e.mesh.EXPECT().PendingRoleSelectionJitter().Return(uint16(0)).Times(2)
	e.local.HandleTick()
	assert.Len(t, e.records, 1)
	e.ticks.EXPECT().UnregisterReceiver(control.TickReceiverLocal)
	e.local.HandleTick()
	assert.Len(t, e.records, 2)
}

func TestExplicitZeroJitter(t *testing.T) {
	zero := uint8(0)
	e := newEnvWithSettings(t, control.Settings{RegistrationJitter: &zero})
	e.enable(t)

	// A zero jitter bound means a deterministic one-tick countdown even for
	// a non-coordinating router.
	e.mesh.EXPECT().IsCoordinatingRouter().Return(false)
	e.rand.EXPECT().Uint16InRange(uint16(0), uint16(1)).Return(uint16(0))
	e.ticks.EXPECT().RegisterReceiver(control.TickReceiverLocal)
	e.local.HandleLeaderRoleUpdate(control.LeaderUpdate{Holder: addr.ShortAddrInvalid})

	e.mesh.EXPECT().PendingRoleSelectionJitter().Return(uint16(0))
	e.ticks.EXPECT().UnregisterReceiver(control.TickReceiverLocal)
	e.local.HandleTick()
	assert.Len(t, e.records, 2)
}

func TestReArmOverwritesCountdown(t *testing.T) {
	e := newEnv(t)
	e.enable(t)

	e.mesh.EXPECT().IsCoordinatingRouter().Return(false).Times(2)
	e.rand.EXPECT().Uint16InRange(uint16(0), uint16(6)).Return(uint16(4))
	e.ticks.EXPECT().RegisterReceiver(control.TickReceiverLocal).Times(2)
	e.local.HandleLeaderRoleUpdate(control.LeaderUpdate{Holder: addr.ShortAddrInvalid})

	// A second vacancy replaces the five-tick countdown with a one-tick one.
	e.rand.EXPECT().Uint16InRange(uint16(0), uint16(6)).Return(uint16(0))
	e.local.HandleLeaderRoleUpdate(control.LeaderUpdate{Holder: addr.ShortAddrInvalid})

	e.mesh.EXPECT().PendingRoleSelectionJitter().Return(uint16(0))
	e.ticks.EXPECT().UnregisterReceiver(control.TickReceiverLocal)
	e.local.HandleTick()
	assert.Len(t, e.records, 2)
}
