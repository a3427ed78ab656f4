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
	"net/netip"
	"sync"

	"github.com/openbackbone/backbone/bbr/control"
	"github.com/openbackbone/backbone/pkg/addr"
	"github.com/openbackbone/backbone/pkg/log"
)

// Loopback implements all controller collaborators against in-process state.
// It stands in for a real mesh stack: the node is always attached, it is its
// own leader, and a published service record is immediately the confirmed one.
// Useful for the daemon without an attached mesh, and for tests.
type Loopback struct {
	logger    log.Logger
	shortAddr addr.ShortAddr

	mtx       sync.Mutex
	meshLocal netip.Prefix
	record    *control.ServiceRecord
	prefixes  map[netip.Prefix]control.PrefixConfig
	groups    map[netip.Addr]struct{}
	unicasts  map[netip.Addr]struct{}
}

// NewLoopback creates a loopback mesh stack for the given identity.
func NewLoopback(logger log.Logger, shortAddr addr.ShortAddr, meshLocal netip.Prefix) *Loopback {
	return &Loopback{
		logger:    log.SafeLogger(logger),
		shortAddr: shortAddr,
		meshLocal: meshLocal,
		prefixes:  make(map[netip.Prefix]control.PrefixConfig),
		groups:    make(map[netip.Addr]struct{}),
		unicasts:  make(map[netip.Addr]struct{}),
	}
}

// IsAttached implements control.Mesh.
func (lo *Loopback) IsAttached() bool { return true }

// IsLeader implements control.Mesh.
func (lo *Loopback) IsLeader() bool { return true }

// IsCoordinatingRouter implements control.Mesh.
func (lo *Loopback) IsCoordinatingRouter() bool { return true }

// MeshLocalPrefix implements control.Mesh.
func (lo *Loopback) MeshLocalPrefix() netip.Prefix {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	return lo.meshLocal
}

// SetMeshLocalPrefix changes the reported mesh-local prefix. The caller is
// responsible for feeding the change into the controller.
func (lo *Loopback) SetMeshLocalPrefix(prefix netip.Prefix) {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	lo.meshLocal = prefix
}

// ShortAddr implements control.Mesh.
func (lo *Loopback) ShortAddr() addr.ShortAddr { return lo.shortAddr }

// PendingRoleSelectionJitter implements control.Mesh.
func (lo *Loopback) PendingRoleSelectionJitter() uint16 { return 0 }

// HasConfirmedHolder implements control.LeaderTracker. A published record is
// immediately confirmed.
func (lo *Loopback) HasConfirmedHolder() bool {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	return lo.record != nil
}

// HolderShortAddr implements control.LeaderTracker.
func (lo *Loopback) HolderShortAddr() addr.ShortAddr {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	if lo.record == nil {
		return addr.ShortAddrInvalid
	}
	return lo.shortAddr
}

// DomainPrefix implements control.LeaderTracker. It returns the first
// mirrored on-mesh prefix, if any.
func (lo *Loopback) DomainPrefix() (netip.Prefix, bool) {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	for prefix := range lo.prefixes {
		return prefix, true
	}
	return netip.Prefix{}, false
}

// CurrentLeaderUpdate returns the leader notification a real mesh would send
// for the current recorded state.
func (lo *Loopback) CurrentLeaderUpdate() control.LeaderUpdate {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	if lo.record == nil {
		return control.LeaderUpdate{Holder: addr.ShortAddrInvalid}
	}
	return control.LeaderUpdate{
		Holder: lo.shortAddr,
		Config: control.Config{
			SequenceNumber:      lo.record.SequenceNumber,
			ReregistrationDelay: lo.record.ReregistrationDelay,
			MLRTimeout:          lo.record.MLRTimeout,
		},
	}
}

// PublishService implements control.NetworkData.
func (lo *Loopback) PublishService(record control.ServiceRecord) error {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	lo.record = &record
	lo.logger.Debug("Loopback: service published", "seqno", record.SequenceNumber)
	return nil
}

// WithdrawService implements control.NetworkData.
func (lo *Loopback) WithdrawService() error {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	lo.record = nil
	lo.logger.Debug("Loopback: service withdrawn")
	return nil
}

// AddOnMeshPrefix implements control.NetworkData.
func (lo *Loopback) AddOnMeshPrefix(cfg control.PrefixConfig) error {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	lo.prefixes[cfg.Prefix] = cfg
	lo.logger.Debug("Loopback: on-mesh prefix added", "prefix", cfg.Prefix)
	return nil
}

// RemoveOnMeshPrefix implements control.NetworkData.
func (lo *Loopback) RemoveOnMeshPrefix(prefix netip.Prefix) error {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	delete(lo.prefixes, prefix)
	lo.logger.Debug("Loopback: on-mesh prefix removed", "prefix", prefix)
	return nil
}

// NotifyServerDataChanged implements control.NetworkData.
func (lo *Loopback) NotifyServerDataChanged() {
	lo.logger.Debug("Loopback: server data changed")
}

// Subscribe implements control.MulticastTransport.
func (lo *Loopback) Subscribe(group netip.Addr) {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	lo.groups[group] = struct{}{}
	lo.logger.Debug("Loopback: group joined", "group", group)
}

// Unsubscribe implements control.MulticastTransport.
func (lo *Loopback) Unsubscribe(group netip.Addr) {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	delete(lo.groups, group)
	lo.logger.Debug("Loopback: group left", "group", group)
}

// Groups returns the current group memberships.
func (lo *Loopback) Groups() []netip.Addr {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	groups := make([]netip.Addr, 0, len(lo.groups))
	for group := range lo.groups {
		groups = append(groups, group)
	}
	return groups
}

// AddUnicast implements control.AddressRegistry.
func (lo *Loopback) AddUnicast(address netip.Addr) {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	lo.unicasts[address] = struct{}{}
	lo.logger.Debug("Loopback: unicast address added", "address", address)
}

// RemoveUnicast implements control.AddressRegistry.
func (lo *Loopback) RemoveUnicast(address netip.Addr) {
	lo.mtx.Lock()
	defer lo.mtx.Unlock()
	delete(lo.unicasts, address)
	lo.logger.Debug("Loopback: unicast address removed", "address", address)
}

// Signal implements control.Notifier.
func (lo *Loopback) Signal(event control.Event) {
	lo.logger.Debug("Loopback: event", "event", event)
}
