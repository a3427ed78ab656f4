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

package bbr_test

import (
	"bytes"
	"context"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/openbackbone/backbone/bbr"
	"github.com/openbackbone/backbone/bbr/config"
	"github.com/openbackbone/backbone/bbr/control"
	"github.com/openbackbone/backbone/pkg/addr"
	"github.com/openbackbone/backbone/pkg/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGatewayLifecycle(t *testing.T) {
	meshLocal := netip.MustParsePrefix("fd00:db8::/64")
	lo := bbr.NewLoopback(nil, 0x1800, meshLocal)
	roleGauge := metrics.NewTestGauge()
	g := &bbr.Gateway{
		Mesh:        lo,
		Leader:      lo,
		NetworkData: lo,
		Multicast:   lo,
		Addresses:   lo,
		Notifier:    lo,
		Config: config.Gateway{
			Enable:          true,
			ShortAddr:       0x1800,
			MeshLocalPrefix: meshLocal.String(),
			DomainPrefix:    "fd00:beef::/64",
			TickInterval:    config.Duration{Duration: 10 * time.Millisecond},
		},
		Metrics: control.Metrics{CurrentRole: roleGauge},
	}
	require.NoError(t, g.Run(context.Background()))
	defer g.Close(context.Background())

	assert.Equal(t, control.RoleSecondary, g.State())
	assert.Contains(t, lo.Groups(), addr.BackboneRouterGroup(meshLocal))

	// The loopback leader immediately confirms the published record.
	g.HandleLeaderRoleUpdate(lo.CurrentLeaderUpdate())
	assert.Equal(t, control.RolePrimary, g.State())
	assert.Equal(t, float64(2), metrics.GaugeValue(roleGauge))

	var buf bytes.Buffer
	g.Status(&buf)
	assert.Contains(t, buf.String(), "Primary")

	require.NoError(t, g.Close(context.Background()))
}

func TestGatewayNotRunning(t *testing.T) {
	g := &bbr.Gateway{}
	assert.Equal(t, control.RoleDisabled, g.State())
	assert.Error(t, g.Enable(true))
	_, err := g.GetConfig()
	assert.Error(t, err)
}

func TestGatewayBadTickInterval(t *testing.T) {
	meshLocal := netip.MustParsePrefix("fd00:db8::/64")
	lo := bbr.NewLoopback(nil, 0x1800, meshLocal)
	g := &bbr.Gateway{
		Mesh:        lo,
		Leader:      lo,
		NetworkData: lo,
		Multicast:   lo,
		Addresses:   lo,
		Notifier:    lo,
		Config: config.Gateway{
			MeshLocalPrefix: meshLocal.String(),
		},
	}
	assert.Error(t, g.Run(context.Background()))
}

func TestSystemRand(t *testing.T) {
	r := bbr.NewSystemRand()
	for i := 0; i < 100; i++ {
		v := r.Uint16InRange(3, 9)
		assert.GreaterOrEqual(t, v, uint16(3))
		assert.Less(t, v, uint16(9))
	}
	assert.Equal(t, uint16(5), r.Uint16InRange(5, 5))
}
