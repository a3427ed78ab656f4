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

package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/openbackbone/backbone/private/worker"
)

// testWorker runs until its stop channel is closed.
type testWorker struct {
	workerBase worker.Base
	stop       chan struct{}
}

func (w *testWorker) Run(ctx context.Context) error {
	return w.workerBase.RunWrapper(ctx, w.setup, w.run)
}

func (w *testWorker) setup(ctx context.Context) error {
	w.stop = make(chan struct{})
	return nil
}

func (w *testWorker) run(ctx context.Context) error {
	<-w.stop
	return nil
}

func (w *testWorker) Close(ctx context.Context) error {
	return w.workerBase.CloseWrapper(ctx, func(ctx context.Context) error {
		if w.stop != nil {
			close(w.stop)
		}
		return nil
	})
}

func TestWorker(t *testing.T) {
	t.Run("double run", func(t *testing.T) {
		t.Parallel()
		w := &testWorker{}

		var bg errgroup.Group
		bg.Go(func() error { return w.Run(context.Background()) })
		time.Sleep(50 * time.Millisecond)
		err := w.Run(context.Background())
		assert.Error(t, err)
		assert.NoError(t, w.Close(context.Background()))
		assert.NoError(t, bg.Wait())
	})

	t.Run("close before run", func(t *testing.T) {
		t.Parallel()
		w := &testWorker{}

		err := w.Close(context.Background())
		require.NoError(t, err)

		// Run is a no-op after close, so it must return immediately.
		err = w.Run(context.Background())
		assert.NoError(t, err)
	})

	t.Run("double close", func(t *testing.T) {
		t.Parallel()
		w := &testWorker{}

		err := w.Close(context.Background())
		require.NoError(t, err)

		err = w.Close(context.Background())
		require.NoError(t, err)
	})

	t.Run("close after run", func(t *testing.T) {
		t.Parallel()
		w := &testWorker{}

		var bg errgroup.Group
		bg.Go(func() error { return w.Run(context.Background()) })
		time.Sleep(50 * time.Millisecond)
		assert.NoError(t, w.Close(context.Background()))
		assert.NoError(t, bg.Wait())
	})
}
