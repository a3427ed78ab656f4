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

package timeticker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/openbackbone/backbone/private/timeticker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTickerDelivers(t *testing.T) {
	var ticks int32
	ticker := &timeticker.Ticker{Interval: 10 * time.Millisecond}
	ticker.SetHandler("test", func() {
		atomic.AddInt32(&ticks, 1)
	})
	ticker.RegisterReceiver("test")

	require.NoError(t, ticker.Run(context.Background()))
	defer ticker.Close(context.Background())

	// Give some leeway for slow environments, e.g., CI.
	assert.Eventually(
		t,
		func() bool { return atomic.LoadInt32(&ticks) >= 3 },
		time.Second,
		5*time.Millisecond,
	)
}

func TestTickerUnregisterStopsDelivery(t *testing.T) {
	var ticks int32
	ticker := &timeticker.Ticker{Interval: 10 * time.Millisecond}
	ticker.SetHandler("test", func() {
		atomic.AddInt32(&ticks, 1)
	})

	require.NoError(t, ticker.Run(context.Background()))
	defer ticker.Close(context.Background())

	// Not registered, no delivery.
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&ticks))

	ticker.RegisterReceiver("test")
	assert.Eventually(
		t,
		func() bool { return atomic.LoadInt32(&ticks) >= 1 },
		time.Second,
		5*time.Millisecond,
	)

	ticker.UnregisterReceiver("test")
	time.Sleep(30 * time.Millisecond)
	seen := atomic.LoadInt32(&ticks)
	time.Sleep(50 * time.Millisecond)
	// At most one tick can have been in flight during unregistration.
	assert.LessOrEqual(t, atomic.LoadInt32(&ticks), seen+1)
}

func TestTickerInvalidInterval(t *testing.T) {
	ticker := &timeticker.Ticker{}
	assert.Error(t, ticker.Run(context.Background()))
	assert.NoError(t, ticker.Close(context.Background()))
}

func TestTickerDoubleRun(t *testing.T) {
	ticker := &timeticker.Ticker{Interval: time.Hour}
	require.NoError(t, ticker.Run(context.Background()))
	assert.Error(t, ticker.Run(context.Background()))
	assert.NoError(t, ticker.Close(context.Background()))
}
