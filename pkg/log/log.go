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

// Package log provides structured logging on top of zap. Loggers carry
// key-value context, can be embedded in a context.Context, and are safe for
// concurrent use.
package log

import (
	"os"
	"runtime/debug"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger describes the logger interface.
type Logger interface {
	// New creates a Logger with the given context attached to every entry.
	New(ctx ...interface{}) Logger
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
}

// Config configures the logger.
type Config struct {
	// Level of logging (debug, info, error). Defaults to info.
	Level string `toml:"level,omitempty"`
	// Console forces the plain console encoder instead of JSON.
	Console bool `toml:"console,omitempty"`
}

// InitDefaults populates unset fields with default values.
func (cfg *Config) InitDefaults() {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
}

// Validate validates the logging config.
func (cfg *Config) Validate() error {
	cfg.InitDefaults()
	_, err := zapcore.ParseLevel(cfg.Level)
	return err
}

var root atomic.Value

func init() {
	l, _ := zap.NewProduction(zap.AddCallerSkip(1))
	root.Store(&logger{logger: l.Sugar()})
}

// Setup configures the root logger. Must be called before the first use of
// the root logger to have any effect on entries already emitted.
func Setup(cfg Config) error {
	cfg.InitDefaults()
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	zCfg := zap.NewProductionConfig()
	zCfg.Level = zap.NewAtomicLevelAt(level)
	zCfg.DisableStacktrace = true
	if cfg.Console {
		zCfg.Encoding = "console"
		zCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	l, err := zCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	root.Store(&logger{logger: l.Sugar()})
	return nil
}

// Root returns the root logger. It never returns nil.
func Root() Logger {
	return root.Load().(*logger)
}

// New creates a logger with the given context attached to the root logger.
func New(ctx ...interface{}) Logger {
	return Root().New(ctx...)
}

// Discard returns a logger that drops all entries.
func Discard() Logger {
	return &logger{logger: zap.NewNop().Sugar()}
}

// SafeLogger returns the given logger, or the discard logger if l is nil.
// Useful for optional logger fields.
func SafeLogger(l Logger) Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// HandlePanic catches and logs panics. It should be deferred at the start of
// every goroutine. The process exits after logging, a partially crashed
// process is of no use.
func HandlePanic() {
	if msg := recover(); msg != nil {
		Root().Error("Panic", "msg", msg, "stack", string(debug.Stack()))
		flush()
		os.Exit(255)
	}
}

func flush() {
	if l, ok := root.Load().(*logger); ok {
		// Syncing stderr is not supported on all platforms.
		_ = l.logger.Sync()
	}
}

type logger struct {
	logger *zap.SugaredLogger
}

func (l *logger) New(ctx ...interface{}) Logger {
	return &logger{logger: l.logger.With(ctx...)}
}

func (l *logger) Debug(msg string, ctx ...interface{}) {
	l.logger.Debugw(msg, ctx...)
}

func (l *logger) Info(msg string, ctx ...interface{}) {
	l.logger.Infow(msg, ctx...)
}

func (l *logger) Error(msg string, ctx ...interface{}) {
	l.logger.Errorw(msg, ctx...)
}
