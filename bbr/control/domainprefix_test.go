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
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbackbone/backbone/bbr/control"
	"github.com/openbackbone/backbone/pkg/addr"
)

func domainPrefixConfig(prefix string) control.PrefixConfig {
	return control.PrefixConfig{
		Prefix:       netip.MustParsePrefix(prefix),
		Preference:   0,
		Stable:       true,
		OnMesh:       true,
		DefaultRoute: true,
	}
}

func TestGetDomainPrefixNotFound(t *testing.T) {
	e := newEnv(t)
	_, err := e.local.GetDomainPrefix()
	assert.ErrorIs(t, err, control.ErrNotFound)
}

func TestSetDomainPrefixRejects(t *testing.T) {
	testCases := map[string]control.PrefixConfig{
		"zero prefix": {},
		"ipv4 prefix": {
			Prefix: netip.MustParsePrefix("10.0.0.0/8"),
		},
		"multicast prefix": {
			Prefix: netip.MustParsePrefix("ff05::/16"),
		},
		"link-local prefix": {
			Prefix: netip.MustParsePrefix("fe80::/64"),
		},
		"preference out of range": {
			Prefix:     netip.MustParsePrefix("fd00:beef::/64"),
			Preference: 2,
		},
	}
	for name, cfg := range testCases {
		t.Run(name, func(t *testing.T) {
			e := newEnv(t)
			err := e.local.SetDomainPrefix(cfg)
			assert.ErrorIs(t, err, control.ErrInvalidArgument)
			_, err = e.local.GetDomainPrefix()
			assert.ErrorIs(t, err, control.ErrNotFound)
		})
	}
}

func TestSetDomainPrefixDisabled(t *testing.T) {
	e := newEnv(t)
	cfg := domainPrefixConfig("fd00:beef::/64")
	require.NoError(t, e.local.SetDomainPrefix(cfg))

	got, err := e.local.GetDomainPrefix()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSetDomainPrefixEnabled(t *testing.T) {
	e := newEnv(t)
	e.enable(t)

	first := domainPrefixConfig("fd00:beef::/64")
	e.networkData.EXPECT().AddOnMeshPrefix(first).Return(nil)
	require.NoError(t, e.local.SetDomainPrefix(first))

	// Replacing the prefix withdraws the old mirror before adding the new.
	second := domainPrefixConfig("fd00:f00d::/64")
	e.networkData.EXPECT().RemoveOnMeshPrefix(first.Prefix).Return(nil)
	e.networkData.EXPECT().AddOnMeshPrefix(second).Return(nil)
	require.NoError(t, e.local.SetDomainPrefix(second))
}

func TestRemoveDomainPrefix(t *testing.T) {
	e := newEnv(t)
	cfg := domainPrefixConfig("fd00:beef::/64")
	require.NoError(t, e.local.SetDomainPrefix(cfg))

	err := e.local.RemoveDomainPrefix(netip.Prefix{})
	assert.ErrorIs(t, err, control.ErrInvalidArgument)

	err = e.local.RemoveDomainPrefix(netip.MustParsePrefix("fd00:f00d::/64"))
	assert.ErrorIs(t, err, control.ErrNotFound)
	_, err = e.local.GetDomainPrefix()
	require.NoError(t, err)

	require.NoError(t, e.local.RemoveDomainPrefix(cfg.Prefix))
	_, err = e.local.GetDomainPrefix()
	assert.ErrorIs(t, err, control.ErrNotFound)
}

func TestRemoveDomainPrefixEnabled(t *testing.T) {
	e := newEnv(t)
	e.enable(t)

	cfg := domainPrefixConfig("fd00:beef::/64")
	e.networkData.EXPECT().AddOnMeshPrefix(cfg).Return(nil)
	require.NoError(t, e.local.SetDomainPrefix(cfg))

	e.networkData.EXPECT().RemoveOnMeshPrefix(cfg.Prefix).Return(nil)
	require.NoError(t, e.local.RemoveDomainPrefix(cfg.Prefix))
}

func TestEnableMirrorsStoredDomainPrefix(t *testing.T) {
	e := newEnv(t)
	cfg := domainPrefixConfig("fd00:beef::/64")
	require.NoError(t, e.local.SetDomainPrefix(cfg))

	e.networkData.EXPECT().AddOnMeshPrefix(cfg).Return(nil)
	e.enable(t)

	e.networkData.EXPECT().RemoveOnMeshPrefix(cfg.Prefix).Return(nil)
	e.networkData.EXPECT().WithdrawService().Return(nil)
	e.multicast.EXPECT().Unsubscribe(addr.BackboneRouterGroup(meshLocal))
	e.local.Enable(false)

	// The stored prefix survives the disable.
	got, err := e.local.GetDomainPrefix()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestHandleDomainPrefixUpdateDisabled(t *testing.T) {
	e := newEnv(t)
	invoked := false
	e.local.SetDomainPrefixCallback(func(control.DomainPrefixEvent, *netip.Prefix) {
		invoked = true
	})
	e.local.HandleDomainPrefixUpdate(control.DomainPrefixAdded)
	assert.False(t, invoked)
}

func TestHandleDomainPrefixUpdate(t *testing.T) {
	e := newEnv(t)
	e.enable(t)

	first := netip.MustParsePrefix("fd00:beef::/64")
	second := netip.MustParsePrefix("fd00:f00d::/64")

	var gotEvents []control.DomainPrefixEvent
	var gotPrefixes []*netip.Prefix
	e.local.SetDomainPrefixCallback(func(ev control.DomainPrefixEvent, p *netip.Prefix) {
		gotEvents = append(gotEvents, ev)
		gotPrefixes = append(gotPrefixes, p)
	})

	// Added: join the domain-scope group of the recorded prefix.
	e.leader.EXPECT().DomainPrefix().Return(first, true).Times(2)
	e.multicast.EXPECT().Subscribe(addr.BackboneRouterGroup(first))
	e.local.HandleDomainPrefixUpdate(control.DomainPrefixAdded)

	// Refreshed with a new prefix: leave the old group, join the new one.
	e.leader.EXPECT().DomainPrefix().Return(second, true).Times(2)
	e.multicast.EXPECT().Unsubscribe(addr.BackboneRouterGroup(first))
	e.multicast.EXPECT().Subscribe(addr.BackboneRouterGroup(second))
	e.local.HandleDomainPrefixUpdate(control.DomainPrefixRefreshed)

	// Removed: leave the group, callback sees no prefix.
	e.leader.EXPECT().DomainPrefix().Return(netip.Prefix{}, false)
	e.multicast.EXPECT().Unsubscribe(addr.BackboneRouterGroup(second))
	e.local.HandleDomainPrefixUpdate(control.DomainPrefixRemoved)

	require.Equal(t, []control.DomainPrefixEvent{
		control.DomainPrefixAdded,
		control.DomainPrefixRefreshed,
		control.DomainPrefixRemoved,
	}, gotEvents)
	require.Len(t, gotPrefixes, 3)
	require.NotNil(t, gotPrefixes[0])
	assert.Equal(t, first, *gotPrefixes[0])
	require.NotNil(t, gotPrefixes[1])
	assert.Equal(t, second, *gotPrefixes[1])
	assert.Nil(t, gotPrefixes[2])
}
