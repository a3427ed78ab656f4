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
	"github.com/openbackbone/backbone/pkg/serrors"
)

// AddService publishes the gateway service record to the network-data store.
// In DecideBasedOnState mode the record is only published if no other node
// is the confirmed primary; ForceRegistration skips that check. Returns
// ErrInvalidState if the controller is disabled, the node is detached, or
// the role is held elsewhere.
func (l *Local) AddService(mode RegisterMode) error {
	err := l.addService(mode)
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.CounterInc(metrics.CounterWith(l.metrics.RegistrationAttempts,
		"mode", mode.String(), "result", result))
	l.logService("Add", err)
	return err
}

func (l *Local) addService(mode RegisterMode) error {
	if l.state == RoleDisabled {
		return serrors.Join(ErrInvalidState, nil, "reason", "disabled")
	}
	if !l.mesh.IsAttached() {
		return serrors.Join(ErrInvalidState, nil, "reason", "not attached")
	}
	switch mode {
	case DecideBasedOnState:
		if l.leader.HasConfirmedHolder() &&
			l.leader.HolderShortAddr() != l.mesh.ShortAddr() {

			return serrors.Join(ErrInvalidState, nil,
				"reason", "another primary is registered",
				"holder", l.leader.HolderShortAddr())
		}
	case ForceRegistration:
	}

	record := ServiceRecord{
		SequenceNumber:      l.cfg.SequenceNumber,
		ReregistrationDelay: l.cfg.ReregistrationDelay,
		MLRTimeout:          l.cfg.MLRTimeout,
	}
	if err := l.networkData.PublishService(record); err != nil {
		return serrors.Wrap("publishing service record", err)
	}
	l.networkData.NotifyServerDataChanged()
	l.isServiceAdded = true
	return nil
}

// RemoveService withdraws the gateway service record. Withdrawing while no
// record is published is not an error, it is logged and ignored. The
// published flag only clears on an actual successful withdrawal.
func (l *Local) RemoveService() {
	if !l.isServiceAdded {
		l.logService("Remove", serrors.Join(ErrNotFound, nil, "reason", "service not published"))
		return
	}
	if err := l.networkData.WithdrawService(); err != nil {
		l.logService("Remove", serrors.Wrap("withdrawing service record", err))
		return
	}
	l.networkData.NotifyServerDataChanged()
	l.isServiceAdded = false
	l.logService("Remove", nil)
}
