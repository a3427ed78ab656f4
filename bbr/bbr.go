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

// Package bbr wires the backbone router controller to a tick service and the
// host's collaborator implementations, and serializes all access to it.
package bbr

import (
	"context"
	"io"
	"math/rand"
	"net/netip"
	"sync"
	"time"

	"github.com/openbackbone/backbone/bbr/config"
	"github.com/openbackbone/backbone/bbr/control"
	"github.com/openbackbone/backbone/pkg/log"
	"github.com/openbackbone/backbone/pkg/serrors"
	"github.com/openbackbone/backbone/private/timeticker"
	"github.com/openbackbone/backbone/private/worker"
)

// Gateway runs a backbone router controller on top of a periodic tick
// service. All collaborator fields must be set before Run. The Gateway
// serializes every call into the controller, including tick delivery, so the
// collaborators may call back concurrently.
type Gateway struct {
	// Mesh is the routing state of the local node.
	Mesh control.Mesh
	// Leader is the replicated view of the gateway role.
	Leader control.LeaderTracker
	// NetworkData is the distributed network-data store.
	NetworkData control.NetworkData
	// Multicast manages backbone-link group memberships.
	Multicast control.MulticastTransport
	// Addresses manages the unicast addresses of the local interface.
	Addresses control.AddressRegistry
	// Notifier receives controller events.
	Notifier control.Notifier

	// Config is the gateway section of the daemon configuration.
	Config config.Gateway
	// Logger is used for logging. If nil, logging is disabled.
	Logger log.Logger
	// Metrics are the controller metrics. If empty, no metrics are reported.
	Metrics control.Metrics

	mtx        sync.Mutex
	controller *control.Local
	ticker     *timeticker.Ticker

	workerBase worker.Base
}

// Run constructs the controller and starts the tick service. It returns once
// the setup is done.
func (g *Gateway) Run(ctx context.Context) error {
	return g.workerBase.RunWrapper(ctx, g.setup, nil)
}

func (g *Gateway) setup(ctx context.Context) error {
	g.ticker = &timeticker.Ticker{
		Interval: g.Config.TickInterval.Duration,
		Logger:   g.Logger,
	}
	controller, err := control.New(
		control.Collaborators{
			Mesh:        g.Mesh,
			Leader:      g.Leader,
			NetworkData: g.NetworkData,
			Multicast:   g.Multicast,
			Addresses:   g.Addresses,
			Ticks:       tickSource{ticker: g.ticker},
			Notifier:    g.Notifier,
			Rand:        NewSystemRand(),
		},
		control.Settings{
			RegistrationJitter: registrationJitter(g.Config.RegistrationJitter),
			MinMLRTimeout:      g.Config.MinMLRTimeout,
			MaxMLRTimeout:      g.Config.MaxMLRTimeout,
			AllowAnyMLRTimeout: g.Config.ReferenceDevice,
			Metrics:            g.Metrics,
			Logger:             g.Logger,
		},
	)
	if err != nil {
		return serrors.Wrap("constructing controller", err)
	}
	g.mtx.Lock()
	defer g.mtx.Unlock()
	g.controller = controller
	g.ticker.SetHandler(timeticker.ReceiverID(control.TickReceiverLocal), g.handleTick)
	if err := g.applyInitialConfig(); err != nil {
		return err
	}
	if err := g.ticker.Run(ctx); err != nil {
		return serrors.Wrap("starting tick service", err)
	}
	return nil
}

// applyInitialConfig pushes the configured registration parameters and domain
// prefix into the controller and brings it up if requested. Called with the
// mutex held.
func (g *Gateway) applyInitialConfig() error {
	cfg := g.controller.GetConfig()
	if g.Config.ReregistrationDelay != 0 {
		cfg.ReregistrationDelay = g.Config.ReregistrationDelay
	}
	if g.Config.MLRTimeout != 0 {
		cfg.MLRTimeout = g.Config.MLRTimeout
	}
	if err := g.controller.SetConfig(cfg); err != nil {
		return serrors.Wrap("applying configured registration parameters", err)
	}
	if g.Config.DomainPrefix != "" {
		prefix, err := netip.ParsePrefix(g.Config.DomainPrefix)
		if err != nil {
			return serrors.Wrap("parsing configured domain prefix", err)
		}
		err = g.controller.SetDomainPrefix(control.PrefixConfig{
			Prefix:       prefix,
			Stable:       true,
			OnMesh:       true,
			DefaultRoute: true,
		})
		if err != nil {
			return serrors.Wrap("applying configured domain prefix", err)
		}
	}
	g.controller.Enable(g.Config.Enable)
	return nil
}

// Close stops the tick service.
func (g *Gateway) Close(ctx context.Context) error {
	return g.workerBase.CloseWrapper(ctx, g.close)
}

func (g *Gateway) close(ctx context.Context) error {
	if g.ticker != nil {
		return g.ticker.Close(ctx)
	}
	return nil
}

func (g *Gateway) handleTick() {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	g.controller.HandleTick()
}

// errNotRunning is returned by operations invoked before Run.
var errNotRunning = serrors.New("gateway is not running")

// State returns the current role, or RoleDisabled before Run.
func (g *Gateway) State() control.RoleState {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	if g.controller == nil {
		return control.RoleDisabled
	}
	return g.controller.State()
}

// Enable turns the backbone router function on or off.
func (g *Gateway) Enable(enable bool) error {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	if g.controller == nil {
		return errNotRunning
	}
	g.controller.Enable(enable)
	return nil
}

// GetConfig returns the current registration configuration.
func (g *Gateway) GetConfig() (control.Config, error) {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	if g.controller == nil {
		return control.Config{}, errNotRunning
	}
	return g.controller.GetConfig(), nil
}

// SetConfig validates and applies a new registration configuration.
func (g *Gateway) SetConfig(cfg control.Config) error {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	if g.controller == nil {
		return errNotRunning
	}
	return g.controller.SetConfig(cfg)
}

// SetDomainPrefix validates and stores a new domain prefix configuration.
func (g *Gateway) SetDomainPrefix(cfg control.PrefixConfig) error {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	if g.controller == nil {
		return errNotRunning
	}
	return g.controller.SetDomainPrefix(cfg)
}

// RemoveDomainPrefix clears the stored domain prefix.
func (g *Gateway) RemoveDomainPrefix(prefix netip.Prefix) error {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	if g.controller == nil {
		return errNotRunning
	}
	return g.controller.RemoveDomainPrefix(prefix)
}

// GetDomainPrefix returns the stored domain prefix configuration.
func (g *Gateway) GetDomainPrefix() (control.PrefixConfig, error) {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	if g.controller == nil {
		return control.PrefixConfig{}, errNotRunning
	}
	return g.controller.GetDomainPrefix()
}

// HandleLeaderRoleUpdate feeds a leader notification into the controller.
func (g *Gateway) HandleLeaderRoleUpdate(update control.LeaderUpdate) {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	if g.controller == nil {
		return
	}
	g.controller.HandleLeaderRoleUpdate(update)
}

// HandleDomainPrefixUpdate feeds a domain prefix change into the controller.
func (g *Gateway) HandleDomainPrefixUpdate(event control.DomainPrefixEvent) {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	if g.controller == nil {
		return
	}
	g.controller.HandleDomainPrefixUpdate(event)
}

// ApplyMeshLocalPrefixChange re-derives prefix-dependent controller state.
func (g *Gateway) ApplyMeshLocalPrefixChange() {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	if g.controller == nil {
		return
	}
	g.controller.ApplyMeshLocalPrefixChange()
}

// Status prints the controller status page to the writer.
func (g *Gateway) Status(w io.Writer) {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	if g.controller == nil {
		return
	}
	g.controller.Status(w)
}

// registrationJitter maps the configured jitter bound to controller settings.
// The config zero value means "use the default".
func registrationJitter(v uint8) *uint8 {
	if v == 0 {
		return nil
	}
	return &v
}

// tickSource adapts the shared ticker to the controller's tick registration
// interface.
type tickSource struct {
	ticker *timeticker.Ticker
}

func (t tickSource) RegisterReceiver(id control.ReceiverID) {
	t.ticker.RegisterReceiver(timeticker.ReceiverID(id))
}

func (t tickSource) UnregisterReceiver(id control.ReceiverID) {
	t.ticker.UnregisterReceiver(timeticker.ReceiverID(id))
}

// SystemRand is a RandSource backed by math/rand. Registration jitter is not
// security relevant, it only spreads concurrent registrations.
type SystemRand struct {
	mtx sync.Mutex
	rng *rand.Rand
}

// NewSystemRand returns a time-seeded random source.
func NewSystemRand() *SystemRand {
	return &SystemRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Uint8 returns a uniformly random byte.
func (r *SystemRand) Uint8() uint8 {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return uint8(r.rng.Intn(256))
}

// Uint16InRange returns a uniformly random value in [lo, hi).
func (r *SystemRand) Uint16InRange(lo, hi uint16) uint16 {
	if hi <= lo {
		return lo
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return lo + uint16(r.rng.Intn(int(hi-lo)))
}
