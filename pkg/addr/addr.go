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

// Package addr contains the mesh addressing leaf types shared by the backbone
// router packages: short router addresses and the derivation rules for the
// backbone-router multicast groups and the primary-gateway anycast locator.
package addr

import (
	"fmt"
	"net/netip"
)

// ShortAddr is the 16-bit short address of a node on the mesh.
type ShortAddr uint16

// ShortAddrInvalid is the reserved short address indicating "no node". A
// leader update carrying this value as the role holder reports a vacancy.
const ShortAddrInvalid ShortAddr = 0xfffe

func (a ShortAddr) String() string {
	return fmt.Sprintf("0x%04x", uint16(a))
}

// backboneRouterGroupID is the group identifier of the "all backbone routers"
// multicast groups.
const backboneRouterGroupID = 3

// primaryAnycastLocator is the well-known locator of the primary backbone
// router anycast address.
const primaryAnycastLocator = 0xfc38

// BackboneRouterGroup derives the unicast-prefix-based "all backbone routers"
// multicast group for the given /64 prefix, in the RFC 3306 layout:
//
//	ff32:40:<prefix bits>::<group ID>
//
// Applied to the mesh-local prefix this yields the network-scope group, and
// applied to the domain prefix the domain-scope group. The zero Addr is
// returned if the prefix is not a valid IPv6 prefix.
func BackboneRouterGroup(prefix netip.Prefix) netip.Addr {
	if !prefix.IsValid() || !prefix.Addr().Is6() {
		return netip.Addr{}
	}
	var b [16]byte
	b[0] = 0xff // multicast
	b[1] = 0x32 // flags = 3, scope = 2
	b[3] = byte(prefix.Bits())
	raw := prefix.Addr().As16()
	copy(b[4:12], raw[:8])
	b[15] = backboneRouterGroupID
	return netip.AddrFrom16(b)
}

// PrimaryAnycast derives the primary backbone router anycast locator address
// from the mesh-local prefix. The zero Addr is returned if the prefix is not
// a valid IPv6 prefix.
func PrimaryAnycast(meshLocal netip.Prefix) netip.Addr {
	if !meshLocal.IsValid() || !meshLocal.Addr().Is6() {
		return netip.Addr{}
	}
	var b [16]byte
	raw := meshLocal.Addr().As16()
	copy(b[:8], raw[:8])
	// Locator interface identifier: 0000:00ff:fe00:xxxx.
	b[11] = 0xff
	b[12] = 0xfe
	b[14] = byte(primaryAnycastLocator >> 8)
	b[15] = byte(primaryAnycastLocator & 0xff)
	return netip.AddrFrom16(b)
}
