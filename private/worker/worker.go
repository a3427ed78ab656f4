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

// Package worker contains helpers for working with long-running goroutines
// that need to be stopped from the outside.
package worker

import (
	"context"
	"sync"

	"github.com/openbackbone/backbone/pkg/serrors"
)

// Base provides basic operations for objects designed to run as goroutines.
// It enforces the following lifecycle semantics: Run can be called at most
// once; Close can be called multiple times; Close before Run turns Run into
// a no-op.
//
// The zero value is a valid Base. Users should embed Base and wrap their
// setup, run, and teardown logic via RunWrapper and CloseWrapper.
type Base struct {
	mtx         sync.Mutex
	runCalled   bool
	closeCalled bool

	// WG can be used to track additional goroutines an object spawns during
	// setup. CloseWrapper does not wait on it, teardown callbacks should.
	WG sync.WaitGroup
}

// RunWrapper runs setup and then run. An error is returned if RunWrapper is
// called a second time. If Close was called before Run, neither callback
// executes and nil is returned.
func (b *Base) RunWrapper(ctx context.Context, setup, run func(context.Context) error) error {
	b.mtx.Lock()
	if b.runCalled {
		b.mtx.Unlock()
		return serrors.New("run can be called at most once")
	}
	b.runCalled = true
	if b.closeCalled {
		b.mtx.Unlock()
		return nil
	}
	b.mtx.Unlock()

	if setup != nil {
		if err := setup(ctx); err != nil {
			return err
		}
	}
	if run != nil {
		return run(ctx)
	}
	return nil
}

// CloseWrapper runs closeF exactly once, on the first call. Later calls
// return nil without invoking closeF again.
func (b *Base) CloseWrapper(ctx context.Context, closeF func(context.Context) error) error {
	b.mtx.Lock()
	alreadyClosed := b.closeCalled
	b.closeCalled = true
	b.mtx.Unlock()
	if alreadyClosed {
		return nil
	}
	if closeF != nil {
		return closeF(ctx)
	}
	return nil
}
