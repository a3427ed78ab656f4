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

// Package config describes the backbone router daemon configuration.
package config

import (
	"bytes"
	"net/netip"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/openbackbone/backbone/bbr/control"
	"github.com/openbackbone/backbone/pkg/log"
	"github.com/openbackbone/backbone/pkg/serrors"
)

// Duration is a time.Duration that (un)marshals as a string like "500ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the top-level daemon configuration.
type Config struct {
	Logging log.Config `toml:"log,omitempty"`
	Metrics Metrics    `toml:"metrics,omitempty"`
	Gateway Gateway    `toml:"gateway,omitempty"`
}

// Metrics configures the observability endpoint.
type Metrics struct {
	// Prometheus is the address the HTTP endpoint serving metrics and the
	// status page listens on. If empty, the endpoint is disabled.
	Prometheus string `toml:"prometheus,omitempty"`
}

// Gateway configures the backbone router controller.
type Gateway struct {
	// Enable brings the gateway up in the secondary role at start.
	Enable bool `toml:"enable,omitempty"`
	// ShortAddr is the mesh short address of this node.
	ShortAddr uint16 `toml:"short_addr,omitempty"`
	// MeshLocalPrefix is the mesh-local prefix of the attached network.
	MeshLocalPrefix string `toml:"mesh_local_prefix,omitempty"`
	// DomainPrefix is the domain prefix advertised into the network data.
	// Optional.
	DomainPrefix string `toml:"domain_prefix,omitempty"`
	// TickInterval is the time between two controller ticks. Defaults to 1s.
	TickInterval Duration `toml:"tick_interval,omitempty"`
	// RegistrationJitter is the upper bound of the random registration delay
	// in ticks. Defaults to 5.
	RegistrationJitter uint8 `toml:"registration_jitter,omitempty"`
	// ReregistrationDelay is the published reregistration delay in seconds.
	// Defaults to 5.
	ReregistrationDelay uint8 `toml:"reregistration_delay,omitempty"`
	// MLRTimeout is the published multicast listener registration timeout in
	// seconds. Defaults to 3600.
	MLRTimeout uint32 `toml:"mlr_timeout,omitempty"`
	// MinMLRTimeout and MaxMLRTimeout bound the accepted MLR timeout.
	MinMLRTimeout uint32 `toml:"min_mlr_timeout,omitempty"`
	MaxMLRTimeout uint32 `toml:"max_mlr_timeout,omitempty"`
	// ReferenceDevice lifts the [MinMLRTimeout, MaxMLRTimeout] check. Only
	// for reference-device and test setups.
	ReferenceDevice bool `toml:"reference_device,omitempty"`
}

// InitDefaults populates unset fields with default values.
func (cfg *Config) InitDefaults() {
	cfg.Logging.InitDefaults()
	if cfg.Gateway.TickInterval.Duration == 0 {
		cfg.Gateway.TickInterval.Duration = time.Second
	}
	if cfg.Gateway.RegistrationJitter == 0 {
		cfg.Gateway.RegistrationJitter = control.DefaultRegistrationJitter
	}
	if cfg.Gateway.ReregistrationDelay == 0 {
		cfg.Gateway.ReregistrationDelay = control.DefaultReregistrationDelay
	}
	if cfg.Gateway.MLRTimeout == 0 {
		cfg.Gateway.MLRTimeout = control.DefaultMLRTimeout
	}
	if cfg.Gateway.MinMLRTimeout == 0 {
		cfg.Gateway.MinMLRTimeout = control.DefaultMinMLRTimeout
	}
	if cfg.Gateway.MaxMLRTimeout == 0 {
		cfg.Gateway.MaxMLRTimeout = control.DefaultMaxMLRTimeout
	}
}

// Validate validates the configuration. It applies defaults first.
func (cfg *Config) Validate() error {
	cfg.InitDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return serrors.Wrap("validating log config", err)
	}
	g := &cfg.Gateway
	if g.TickInterval.Duration <= 0 {
		return serrors.New("tick interval must be positive", "interval", g.TickInterval)
	}
	if g.MinMLRTimeout > g.MaxMLRTimeout {
		return serrors.New("MLR timeout window is empty",
			"min", g.MinMLRTimeout, "max", g.MaxMLRTimeout)
	}
	if g.MeshLocalPrefix == "" {
		return serrors.New("mesh-local prefix must be set")
	}
	if _, err := netip.ParsePrefix(g.MeshLocalPrefix); err != nil {
		return serrors.Wrap("parsing mesh-local prefix", err, "prefix", g.MeshLocalPrefix)
	}
	if g.DomainPrefix != "" {
		prefix, err := netip.ParsePrefix(g.DomainPrefix)
		if err != nil {
			return serrors.Wrap("parsing domain prefix", err, "prefix", g.DomainPrefix)
		}
		pc := control.PrefixConfig{Prefix: prefix}
		if err := pc.Validate(); err != nil {
			return serrors.Wrap("validating domain prefix", err)
		}
	}
	return nil
}

// Load reads, parses, and validates the configuration file at path. Unknown
// fields are rejected.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.Wrap("reading config file", err, "file", path)
	}
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, serrors.Wrap("parsing config file", err, "file", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, serrors.Wrap("validating config file", err, "file", path)
	}
	return &cfg, nil
}

// Sample returns a commented sample configuration.
func Sample() string {
	return `[log]
# Log level (debug, info, error).
level = "info"
# Use the plain console encoder instead of JSON.
console = true

[metrics]
# Address the metrics and status endpoint listens on. Empty disables it.
prometheus = "127.0.0.1:30452"

[gateway]
# Bring the gateway up in the secondary role at start.
enable = true
# Mesh short address of this node.
short_addr = 0x1800
# Mesh-local prefix of the attached network.
mesh_local_prefix = "fd00:db8::/64"
# Domain prefix advertised into the network data. Optional.
domain_prefix = "fd00:beef::/64"
# Time between two controller ticks.
tick_interval = "1s"
# Upper bound of the random registration delay in ticks.
registration_jitter = 5
# Published reregistration delay in seconds.
reregistration_delay = 5
# Published multicast listener registration timeout in seconds.
mlr_timeout = 3600
# Accepted MLR timeout window in seconds.
min_mlr_timeout = 300
max_mlr_timeout = 4294967
`
}
