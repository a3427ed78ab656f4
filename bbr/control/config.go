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
	"github.com/openbackbone/backbone/pkg/serrors"
)

// Defaults for the published configuration.
const (
	// DefaultMLRTimeout is the default multicast listener registration
	// timeout in seconds.
	DefaultMLRTimeout uint32 = 3600
	// DefaultReregistrationDelay is the default reregistration delay in
	// seconds.
	DefaultReregistrationDelay uint8 = 5
	// DefaultRegistrationJitter is the default upper bound of the random
	// registration delay, in ticks.
	DefaultRegistrationJitter uint8 = 5
	// DefaultMinMLRTimeout is the default lower bound an operator accepts
	// for the MLR timeout.
	DefaultMinMLRTimeout uint32 = 300
	// DefaultMaxMLRTimeout is the default upper bound an operator accepts
	// for the MLR timeout. Bounded so that the timeout converted to
	// milliseconds fits in 32 bits.
	DefaultMaxMLRTimeout uint32 = 4294967
)

// Config is the gateway configuration published in the service record.
type Config struct {
	// SequenceNumber tags the freshness of the registration.
	SequenceNumber uint8
	// ReregistrationDelay is the delay in seconds listeners wait before
	// re-registering. Must be at least 1 and lower than half of MLRTimeout.
	ReregistrationDelay uint8
	// MLRTimeout is the multicast listener registration timeout in seconds.
	MLRTimeout uint32
}

// ServiceRecord is the gateway claim submitted to the network-data store.
type ServiceRecord struct {
	SequenceNumber      uint8
	ReregistrationDelay uint8
	MLRTimeout          uint32
}

// LeaderUpdate is the payload of a leader notification about the recorded
// role holder.
type LeaderUpdate struct {
	// Holder is the short address of the recorded primary gateway, or
	// addr.ShortAddrInvalid if the role is vacant.
	Holder addr.ShortAddr
	// Config is the configuration recorded for the holder.
	Config Config
}

// RegisterMode selects how AddService decides whether to register.
type RegisterMode int

const (
	// DecideBasedOnState registers only if no other node is the confirmed
	// primary gateway.
	DecideBasedOnState RegisterMode = iota
	// ForceRegistration always attempts to register. Used when restoring
	// the local registration from network state.
	ForceRegistration
)

func (m RegisterMode) String() string {
	switch m {
	case DecideBasedOnState:
		return "decide"
	case ForceRegistration:
		return "force"
	default:
		return "unknown"
	}
}

// PrefixConfig describes an on-mesh prefix and its route metadata. The zero
// value means "no prefix".
type PrefixConfig struct {
	// Prefix is the externally routable on-mesh prefix.
	Prefix netip.Prefix
	// Preference is the route preference, one of -1, 0, 1.
	Preference int8
	// Stable marks the prefix as part of the stable network data.
	Stable bool
	// OnMesh marks the prefix as on-mesh.
	OnMesh bool
	// DefaultRoute advertises this node as default route for the prefix.
	DefaultRoute bool
}

// Validate checks the prefix configuration against mesh addressing rules.
func (cfg PrefixConfig) Validate() error {
	p := cfg.Prefix
	if !p.IsValid() || p.Bits() == 0 {
		return serrors.Join(ErrInvalidArgument, nil, "reason", "prefix must be non-empty")
	}
	if !p.Addr().Is6() || p.Addr().Is4In6() {
		return serrors.Join(ErrInvalidArgument, nil,
			"reason", "prefix must be IPv6", "prefix", p)
	}
	if p.Addr().IsMulticast() || p.Addr().IsLinkLocalUnicast() {
		return serrors.Join(ErrInvalidArgument, nil,
			"reason", "prefix must be a routable unicast prefix", "prefix", p)
	}
	if cfg.Preference < -1 || cfg.Preference > 1 {
		return serrors.Join(ErrInvalidArgument, nil,
			"reason", "preference out of range", "preference", cfg.Preference)
	}
	return nil
}
