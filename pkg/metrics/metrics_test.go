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

package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbackbone/backbone/pkg/metrics"
)

func TestTestCounter(t *testing.T) {
	c := metrics.NewTestCounter()
	a := c.With("result", "ok")
	b := c.With("result", "error")
	a.Add(1)
	a.Add(2)
	b.Add(5)
	assert.Equal(t, float64(3), metrics.CounterValue(a))
	assert.Equal(t, float64(5), metrics.CounterValue(b))
	assert.Equal(t, float64(0), metrics.CounterValue(c))
}

func TestTestGauge(t *testing.T) {
	g := metrics.NewTestGauge()
	v := g.With("role", "primary")
	v.Set(1)
	v.Add(1)
	assert.Equal(t, float64(2), metrics.GaugeValue(v))
}

func TestNilSafety(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.CounterInc(nil)
		metrics.CounterAdd(nil, 2)
		metrics.GaugeSet(nil, 1)
		assert.Nil(t, metrics.CounterWith(nil, "a", "b"))
		assert.Nil(t, metrics.GaugeWith(nil, "a", "b"))
	})
}
