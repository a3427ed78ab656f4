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

// The two backbone-router groups are views over the mesh-local prefix
// (network scope) and the recorded domain prefix (domain scope). They are
// never cached as authoritative subscription state: every change re-derives
// the address and re-issues the subscribe or unsubscribe.

func (l *Local) resubscribeNetworkGroup() {
	l.unsubscribeNetworkGroup()
	l.networkGroup = addr.BackboneRouterGroup(l.mesh.MeshLocalPrefix())
	if l.networkGroup.IsValid() {
		l.multicast.Subscribe(l.networkGroup)
	}
}

func (l *Local) unsubscribeNetworkGroup() {
	if l.networkGroup.IsValid() {
		l.multicast.Unsubscribe(l.networkGroup)
		l.networkGroup = netip.Addr{}
	}
}

func (l *Local) subscribeDomainGroup(domainPrefix netip.Prefix) {
	l.domainGroup = addr.BackboneRouterGroup(domainPrefix)
	if l.domainGroup.IsValid() {
		l.multicast.Subscribe(l.domainGroup)
	}
}

func (l *Local) unsubscribeDomainGroup() {
	if l.domainGroup.IsValid() {
		l.multicast.Unsubscribe(l.domainGroup)
		l.domainGroup = netip.Addr{}
	}
}
