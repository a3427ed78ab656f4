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

// Package control implements the role arbitration core of a backbone router:
// the local node decides whether it acts as the network's single authoritative
// gateway (primary) or a standby candidate (secondary), publishes that claim
// as a service record into the distributed network data, and keeps the
// role-derived multicast memberships and addresses in sync.
//
// All operations are synchronous and must be serialized by the host; the
// controller performs no I/O besides calls into the injected collaborators.
package control

import (
	"net/netip"

	"github.com/openbackbone/backbone/pkg/addr"
	"github.com/openbackbone/backbone/pkg/log"
	"github.com/openbackbone/backbone/pkg/metrics"
	"github.com/openbackbone/backbone/pkg/serrors"
)

// RoleState is the gateway role of the local node.
type RoleState string

const (
	// RoleDisabled indicates the backbone router function is off.
	RoleDisabled RoleState = "Disabled"
	// RoleSecondary indicates the node is a standby gateway candidate.
	RoleSecondary RoleState = "Secondary"
	// RolePrimary indicates the node is the authoritative gateway.
	RolePrimary RoleState = "Primary"
)

// Collaborators are the external interfaces the controller acts through.
// All fields are mandatory.
type Collaborators struct {
	Mesh        Mesh
	Leader      LeaderTracker
	NetworkData NetworkData
	Multicast   MulticastTransport
	Addresses   AddressRegistry
	Ticks       TickSource
	Notifier    Notifier
	Rand        RandSource
}

// Settings tune the controller. The zero value is valid.
type Settings struct {
	// RegistrationJitter is the upper bound of the random registration
	// delay in ticks. If nil, DefaultRegistrationJitter is used; a pointer
	// to zero disables the jitter.
	RegistrationJitter *uint8
	// MinMLRTimeout and MaxMLRTimeout bound the accepted MLR timeout.
	// Default to DefaultMinMLRTimeout and DefaultMaxMLRTimeout.
	MinMLRTimeout uint32
	MaxMLRTimeout uint32
	// AllowAnyMLRTimeout disables the [MinMLRTimeout, MaxMLRTimeout] check.
	// Reserved for reference-device and test setups.
	AllowAnyMLRTimeout bool
	// Metrics are the metrics modified by the controller. If empty, no
	// metrics are reported.
	Metrics Metrics
	// Logger is used for logging. If nil, logging is disabled.
	Logger log.Logger
}

// Local is the role arbitration state machine of the local backbone router.
// It owns the role state, the published configuration, and the sequence
// number, and it mediates all access to the domain prefix and the derived
// multicast groups.
//
// Local is not safe for concurrent use. The host must serialize all calls,
// including tick delivery.
type Local struct {
	mesh        Mesh
	leader      LeaderTracker
	networkData NetworkData
	multicast   MulticastTransport
	addresses   AddressRegistry
	ticks       TickSource
	notifier    Notifier
	rand        RandSource

	registrationJitter uint8
	minMLRTimeout      uint32
	maxMLRTimeout      uint32
	allowAnyMLRTimeout bool
	metrics            Metrics
	logger             log.Logger

	state               RoleState
	cfg                 Config
	registrationTimeout uint16
	isServiceAdded      bool

	domainPrefix   PrefixConfig
	networkGroup   netip.Addr
	domainGroup    netip.Addr
	primaryAnycast netip.Addr

	domainPrefixCb DomainPrefixCallback
}

// New constructs a disabled controller. The initial sequence number is drawn
// randomly from the lower half-range.
func New(c Collaborators, s Settings) (*Local, error) {
	if err := validateCollaborators(c); err != nil {
		return nil, err
	}
	if s.RegistrationJitter == nil {
		jitter := DefaultRegistrationJitter
		s.RegistrationJitter = &jitter
	}
	if s.MinMLRTimeout == 0 {
		s.MinMLRTimeout = DefaultMinMLRTimeout
	}
	if s.MaxMLRTimeout == 0 {
		s.MaxMLRTimeout = DefaultMaxMLRTimeout
	}
	l := &Local{
		mesh:        c.Mesh,
		leader:      c.Leader,
		networkData: c.NetworkData,
		multicast:   c.Multicast,
		addresses:   c.Addresses,
		ticks:       c.Ticks,
		notifier:    c.Notifier,
		rand:        c.Rand,

		registrationJitter: *s.RegistrationJitter,
		minMLRTimeout:      s.MinMLRTimeout,
		maxMLRTimeout:      s.MaxMLRTimeout,
		allowAnyMLRTimeout: s.AllowAnyMLRTimeout,
		metrics:            s.Metrics,
		logger:             log.SafeLogger(s.Logger),

		state: RoleDisabled,
		cfg: Config{
			SequenceNumber:      c.Rand.Uint8() % 127,
			ReregistrationDelay: DefaultReregistrationDelay,
			MLRTimeout:          DefaultMLRTimeout,
		},
	}
	l.setRoleGauge()
	return l, nil
}

func validateCollaborators(c Collaborators) error {
	switch {
	case c.Mesh == nil:
		return serrors.New("mesh collaborator must not be nil")
	case c.Leader == nil:
		return serrors.New("leader tracker must not be nil")
	case c.NetworkData == nil:
		return serrors.New("network data store must not be nil")
	case c.Multicast == nil:
		return serrors.New("multicast transport must not be nil")
	case c.Addresses == nil:
		return serrors.New("address registry must not be nil")
	case c.Ticks == nil:
		return serrors.New("tick source must not be nil")
	case c.Notifier == nil:
		return serrors.New("notifier must not be nil")
	case c.Rand == nil:
		return serrors.New("random source must not be nil")
	}
	return nil
}

// State returns the current role.
func (l *Local) State() RoleState {
	return l.state
}

// IsEnabled reports whether the backbone router function is on.
func (l *Local) IsEnabled() bool {
	return l.state != RoleDisabled
}

// IsPrimary reports whether the node currently holds the primary role.
func (l *Local) IsPrimary() bool {
	return l.state == RolePrimary
}

// Enable turns the backbone router function on or off. It is idempotent with
// respect to the current enabled state.
//
// Enabling transitions to secondary, mirrors the stored domain prefix into
// the network data, and attempts a state-based registration. Disabling
// withdraws both and transitions to disabled.
func (l *Local) Enable(enable bool) {
	if enable == l.IsEnabled() {
		return
	}
	if enable {
		l.setState(RoleSecondary)
		l.addDomainPrefixToNetworkData()
		_ = l.AddService(DecideBasedOnState)
	} else {
		l.removeDomainPrefixFromNetworkData()
		l.RemoveService()
		l.setState(RoleDisabled)
	}
}

// Reset withdraws the service registration. A primary node additionally
// bumps the sequence number, marking the outgoing claim as superseded, and
// demotes itself to secondary. No-op while disabled.
func (l *Local) Reset() {
	if l.state == RoleDisabled {
		return
	}
	l.RemoveService()
	if l.state == RolePrimary {
		l.increaseSequenceNumber()
		l.notifier.Signal(EventLocalConfigChanged)
		l.setState(RoleSecondary)
	}
}

// GetConfig returns the current configuration.
func (l *Local) GetConfig() Config {
	return l.cfg
}

// SetConfig validates and applies a new configuration. On any accepted field
// change it signals EventLocalConfigChanged and re-attempts a state-based
// registration. On validation failure nothing is applied.
func (l *Local) SetConfig(cfg Config) error {
	err := l.setConfig(cfg)
	l.logService("Set", err)
	return err
}

func (l *Local) setConfig(cfg Config) error {
	if !l.allowAnyMLRTimeout &&
		(cfg.MLRTimeout < l.minMLRTimeout || cfg.MLRTimeout > l.maxMLRTimeout) {

		return serrors.Join(ErrInvalidArgument, nil,
			"reason", "MLR timeout out of range",
			"timeout", cfg.MLRTimeout, "min", l.minMLRTimeout, "max", l.maxMLRTimeout)
	}
	if cfg.ReregistrationDelay < 1 {
		return serrors.Join(ErrInvalidArgument, nil,
			"reason", "reregistration delay must be at least 1")
	}
	// The delay must stay below half the timeout. Widened to uint32, the
	// doubling cannot overflow.
	if 2*uint32(cfg.ReregistrationDelay) >= cfg.MLRTimeout {
		return serrors.Join(ErrInvalidArgument, nil,
			"reason", "reregistration delay must be below half the MLR timeout",
			"delay", cfg.ReregistrationDelay, "timeout", cfg.MLRTimeout)
	}
	if cfg == l.cfg {
		return nil
	}
	l.cfg = cfg
	l.notifier.Signal(EventLocalConfigChanged)
	_ = l.AddService(DecideBasedOnState)
	return nil
}

// HandleLeaderRoleUpdate processes a notification that the network's
// recorded primary gateway changed. A vacancy arms the jittered retry; a
// foreign holder resets the local claim; the own address restores or
// confirms the local registration.
func (l *Local) HandleLeaderRoleUpdate(update LeaderUpdate) {
	if !l.IsEnabled() || !l.mesh.IsAttached() {
		return
	}
	switch {
	case update.Holder == addr.ShortAddrInvalid:
		// Role vacancy. Wait some jitter before trying to register.
		l.armRegistrationRetry()
	case update.Holder != l.mesh.ShortAddr():
		l.Reset()
	case !l.isServiceAdded:
		// The network records this node as primary but the local service was
		// never confirmed: restore the configuration from the network and
		// refresh the registration. The role transition follows with the
		// next leader update, so no role event is emitted here.
		l.cfg = update.Config
		l.increaseSequenceNumber()
		l.notifier.Signal(EventLocalConfigChanged)
		_ = l.AddService(ForceRegistration)
	default:
		l.setState(RolePrimary)
	}
}

// ApplyMeshLocalPrefixChange re-derives all state that embeds the mesh-local
// prefix: the network-scope group membership and, for a primary node, the
// gateway anycast address. No-op while disabled.
func (l *Local) ApplyMeshLocalPrefixChange() {
	if !l.IsEnabled() {
		return
	}
	l.resubscribeNetworkGroup()
	if l.IsPrimary() {
		l.addresses.RemoveUnicast(l.primaryAnycast)
		l.primaryAnycast = addr.PrimaryAnycast(l.mesh.MeshLocalPrefix())
		l.addresses.AddUnicast(l.primaryAnycast)
	}
}

// SetDomainPrefixCallback registers the callback invoked after domain prefix
// updates. Passing nil clears it.
func (l *Local) SetDomainPrefixCallback(cb DomainPrefixCallback) {
	l.domainPrefixCb = cb
}

func (l *Local) setState(next RoleState) {
	if l.state == next {
		return
	}
	if l.state == RoleDisabled {
		// The network-scope group tracks the mesh-local prefix for both the
		// secondary and the primary role.
		l.resubscribeNetworkGroup()
	}
	if l.state == RolePrimary {
		l.addresses.RemoveUnicast(l.primaryAnycast)
	} else if next == RolePrimary {
		l.primaryAnycast = addr.PrimaryAnycast(l.mesh.MeshLocalPrefix())
		l.addresses.AddUnicast(l.primaryAnycast)
	}
	if next == RoleDisabled {
		l.unsubscribeNetworkGroup()
		l.unsubscribeDomainGroup()
	}

	prev := l.state
	l.state = next

	metrics.CounterInc(metrics.CounterWith(l.metrics.RoleTransitions,
		"from", string(prev), "to", string(next)))
	l.setRoleGauge()
	l.notifier.Signal(EventRoleChanged)
	l.logger.Info("Role changed", "from", prev, "to", next)
}

func (l *Local) setRoleGauge() {
	var v float64
	switch l.state {
	case RoleSecondary:
		v = 1
	case RolePrimary:
		v = 2
	}
	metrics.GaugeSet(l.metrics.CurrentRole, v)
}

func (l *Local) logService(action string, err error) {
	l.logger.Info(action+" backbone service",
		"seqno", l.cfg.SequenceNumber,
		"delay", l.cfg.ReregistrationDelay,
		"timeout", l.cfg.MLRTimeout,
		"err", err,
	)
}
