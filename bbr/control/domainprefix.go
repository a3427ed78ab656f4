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

	"github.com/openbackbone/backbone/pkg/serrors"
)

// GetDomainPrefix returns a copy of the stored domain prefix configuration,
// or ErrNotFound if none is stored.
func (l *Local) GetDomainPrefix() (PrefixConfig, error) {
	if !l.hasDomainPrefix() {
		return PrefixConfig{}, serrors.Join(ErrNotFound, nil, "reason", "no domain prefix stored")
	}
	return l.domainPrefix, nil
}

// SetDomainPrefix validates and stores a new domain prefix configuration.
// While enabled, a previously mirrored prefix is withdrawn from the network
// data first and the new one mirrored afterwards.
func (l *Local) SetDomainPrefix(cfg PrefixConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if l.IsEnabled() {
		l.removeDomainPrefixFromNetworkData()
	}
	l.domainPrefix = cfg
	l.logDomainPrefix("Set", nil)
	if l.IsEnabled() {
		l.addDomainPrefixToNetworkData()
	}
	return nil
}

// RemoveDomainPrefix clears the stored domain prefix. The given prefix must
// match the stored one exactly; otherwise ErrNotFound is returned and the
// stored prefix is left unchanged. A zero-length prefix is rejected with
// ErrInvalidArgument.
func (l *Local) RemoveDomainPrefix(prefix netip.Prefix) error {
	if !prefix.IsValid() || prefix.Bits() == 0 {
		return serrors.Join(ErrInvalidArgument, nil, "reason", "prefix must be non-empty")
	}
	if l.domainPrefix.Prefix != prefix {
		return serrors.Join(ErrNotFound, nil,
			"reason", "prefix does not match stored domain prefix", "prefix", prefix)
	}
	if l.IsEnabled() {
		l.removeDomainPrefixFromNetworkData()
	}
	l.domainPrefix = PrefixConfig{}
	return nil
}

// HandleDomainPrefixUpdate processes a change of the domain prefix recorded
// in the network data. The domain-scope group membership follows the
// recorded prefix; afterwards the registered callback, if any, is invoked
// with a snapshot of the current prefix. No-op while disabled.
func (l *Local) HandleDomainPrefixUpdate(event DomainPrefixEvent) {
	if !l.IsEnabled() {
		return
	}
	if event == DomainPrefixRemoved || event == DomainPrefixRefreshed {
		l.unsubscribeDomainGroup()
	}
	if event == DomainPrefixAdded || event == DomainPrefixRefreshed {
		if prefix, ok := l.leader.DomainPrefix(); ok {
			l.subscribeDomainGroup(prefix)
		}
	}
	if l.domainPrefixCb != nil {
		var snapshot *netip.Prefix
		if prefix, ok := l.leader.DomainPrefix(); ok {
			snapshot = &prefix
		}
		l.domainPrefixCb(event, snapshot)
	}
}

func (l *Local) hasDomainPrefix() bool {
	return l.domainPrefix.Prefix.IsValid() && l.domainPrefix.Prefix.Bits() > 0
}

// addDomainPrefixToNetworkData mirrors the stored domain prefix into the
// network data. Nothing stored is not an error, only logged.
func (l *Local) addDomainPrefixToNetworkData() {
	var err error = serrors.Join(ErrNotFound, nil, "reason", "no domain prefix stored")
	if l.hasDomainPrefix() {
		err = l.networkData.AddOnMeshPrefix(l.domainPrefix)
	}
	l.logDomainPrefix("Add", err)
}

// removeDomainPrefixFromNetworkData withdraws the network-data mirror of the
// stored domain prefix. The local copy is kept.
func (l *Local) removeDomainPrefixFromNetworkData() {
	var err error = serrors.Join(ErrNotFound, nil, "reason", "no domain prefix stored")
	if l.hasDomainPrefix() {
		err = l.networkData.RemoveOnMeshPrefix(l.domainPrefix.Prefix)
	}
	l.logDomainPrefix("Remove", err)
}

func (l *Local) logDomainPrefix(action string, err error) {
	l.logger.Info(action+" domain prefix",
		"prefix", l.domainPrefix.Prefix,
		"err", err,
	)
}
