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
	"net/netip"

	"github.com/openbackbone/backbone/pkg/addr"
)

// Mesh exposes the attachment and routing state of the local node. It is
// implemented by the mesh routing engine.
type Mesh interface {
	// IsAttached reports whether the node is attached to the mesh.
	IsAttached() bool
	// IsLeader reports whether the node is the mesh leader.
	IsLeader() bool
	// IsCoordinatingRouter reports whether the node is the mesh's designated
	// coordinating router. A coordinating router claims a vacant gateway
	// role without random jitter.
	IsCoordinatingRouter() bool
	// MeshLocalPrefix returns the current mesh-local prefix.
	MeshLocalPrefix() netip.Prefix
	// ShortAddr returns the node's own short address.
	ShortAddr() addr.ShortAddr
	// PendingRoleSelectionJitter returns the remaining jitter of a pending
	// mesh role selection, or 0 if none is pending. Tick handling is
	// suppressed while this is nonzero.
	PendingRoleSelectionJitter() uint16
}

// LeaderTracker exposes the network's recorded view of the gateway role, as
// replicated by the leader.
type LeaderTracker interface {
	// HasConfirmedHolder reports whether the network data records a
	// confirmed primary gateway.
	HasConfirmedHolder() bool
	// HolderShortAddr returns the short address of the recorded holder.
	HolderShortAddr() addr.ShortAddr
	// DomainPrefix returns the domain prefix currently recorded in the
	// network data, if any.
	DomainPrefix() (netip.Prefix, bool)
}

// NetworkData mediates access to the distributed network-data store.
type NetworkData interface {
	// PublishService submits the local gateway service record.
	PublishService(record ServiceRecord) error
	// WithdrawService removes the local gateway service record.
	WithdrawService() error
	// AddOnMeshPrefix mirrors an on-mesh prefix into the store.
	AddOnMeshPrefix(cfg PrefixConfig) error
	// RemoveOnMeshPrefix removes the mirror of an on-mesh prefix.
	RemoveOnMeshPrefix(prefix netip.Prefix) error
	// NotifyServerDataChanged signals that local server data changed and
	// must be propagated.
	NotifyServerDataChanged()
}

// MulticastTransport manages multicast group memberships on the backbone
// link.
type MulticastTransport interface {
	Subscribe(group netip.Addr)
	Unsubscribe(group netip.Addr)
}

// AddressRegistry manages the unicast addresses of the local interface.
type AddressRegistry interface {
	AddUnicast(address netip.Addr)
	RemoveUnicast(address netip.Addr)
}

// ReceiverID identifies a tick receiver at the tick source.
type ReceiverID string

// TickReceiverLocal is the receiver ID the controller registers with.
const TickReceiverLocal ReceiverID = "bbr_local"

// TickSource delivers one tick per fixed interval to registered receivers.
type TickSource interface {
	RegisterReceiver(id ReceiverID)
	UnregisterReceiver(id ReceiverID)
}

// Event is a notification kind emitted by the controller.
type Event string

const (
	// EventRoleChanged is signaled on every role transition.
	EventRoleChanged Event = "role_changed"
	// EventLocalConfigChanged is signaled when the locally published
	// configuration (sequence number, delays) changed.
	EventLocalConfigChanged Event = "local_config_changed"
)

// Notifier receives controller events. Signal is invoked synchronously from
// controller operations and must be re-entrant safe.
type Notifier interface {
	Signal(event Event)
}

// RandSource provides non-cryptographic randomness for jitter and the
// initial sequence number.
type RandSource interface {
	// Uint8 returns a uniformly random byte.
	Uint8() uint8
	// Uint16InRange returns a uniformly random value in [lo, hi).
	Uint16InRange(lo, hi uint16) uint16
}

// DomainPrefixEvent describes a change of the domain prefix recorded in the
// network data.
type DomainPrefixEvent string

const (
	DomainPrefixAdded     DomainPrefixEvent = "added"
	DomainPrefixRemoved   DomainPrefixEvent = "removed"
	DomainPrefixRefreshed DomainPrefixEvent = "refreshed"
)

// DomainPrefixCallback is invoked after the controller processed a domain
// prefix update. The prefix is a snapshot of the currently recorded domain
// prefix, or nil if there is none.
type DomainPrefixCallback func(event DomainPrefixEvent, prefix *netip.Prefix)
