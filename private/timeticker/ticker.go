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

// Package timeticker implements a shared periodic tick source. Receivers are
// wired up with a handler once, and then activate or deactivate themselves
// as they need time to pass. Handlers for one tick run sequentially on a
// single goroutine, so tick processing is serialized by construction.
package timeticker

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/openbackbone/backbone/pkg/log"
	"github.com/openbackbone/backbone/pkg/metrics"
	"github.com/openbackbone/backbone/pkg/serrors"
	"github.com/openbackbone/backbone/private/worker"
)

// ReceiverID identifies a tick receiver.
type ReceiverID string

// Ticker delivers one tick per interval to all registered receivers.
type Ticker struct {
	// Interval is the time between two ticks. Run returns an error if it is
	// not positive.
	Interval time.Duration

	// Logger is used for logging. If nil, logging is disabled.
	Logger log.Logger

	// Ticks counts delivered ticks per receiver. If nil, no metrics are
	// reported.
	Ticks metrics.Counter

	mtx      sync.Mutex
	handlers map[ReceiverID]func()
	active   map[ReceiverID]bool
	stop     chan struct{}

	workerBase worker.Base
}

// SetHandler wires the handler for the given receiver. Must be called before
// Run; registration has no effect for a receiver without a handler.
func (t *Ticker) SetHandler(id ReceiverID, handler func()) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if t.handlers == nil {
		t.handlers = make(map[ReceiverID]func())
	}
	t.handlers[id] = handler
}

// RegisterReceiver activates tick delivery for the given receiver.
// Registering an already registered receiver is a no-op.
func (t *Ticker) RegisterReceiver(id ReceiverID) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if t.active == nil {
		t.active = make(map[ReceiverID]bool)
	}
	t.active[id] = true
}

// UnregisterReceiver deactivates tick delivery for the given receiver.
// Unregistering a receiver that is not registered is a no-op.
func (t *Ticker) UnregisterReceiver(id ReceiverID) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	delete(t.active, id)
}

// Run starts the tick loop goroutine. It returns when the setup is done.
func (t *Ticker) Run(ctx context.Context) error {
	return t.workerBase.RunWrapper(ctx, t.setup, nil)
}

func (t *Ticker) setup(ctx context.Context) error {
	if t.Interval <= 0 {
		return serrors.New("tick interval must be positive", "interval", t.Interval)
	}
	t.stop = make(chan struct{})
	t.workerBase.WG.Add(1)
	go func() {
		defer log.HandlePanic()
		defer t.workerBase.WG.Done()
		t.run()
	}()
	return nil
}

func (t *Ticker) run() {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			t.tick()
		case <-t.stop:
			return
		}
	}
}

func (t *Ticker) tick() {
	type delivery struct {
		id      ReceiverID
		handler func()
	}
	t.mtx.Lock()
	deliveries := make([]delivery, 0, len(t.active))
	for id := range t.active {
		if handler, ok := t.handlers[id]; ok {
			deliveries = append(deliveries, delivery{id: id, handler: handler})
		}
	}
	t.mtx.Unlock()
	// Deterministic delivery order across receivers.
	sort.Slice(deliveries, func(i, j int) bool { return deliveries[i].id < deliveries[j].id })
	for _, d := range deliveries {
		metrics.CounterInc(metrics.CounterWith(t.Ticks, "receiver", string(d.id)))
		d.handler()
	}
}

// Close stops the tick loop and waits for it to finish.
func (t *Ticker) Close(ctx context.Context) error {
	return t.workerBase.CloseWrapper(ctx, t.close)
}

func (t *Ticker) close(ctx context.Context) error {
	if t.stop != nil {
		close(t.stop)
	}
	t.workerBase.WG.Wait()
	return nil
}
