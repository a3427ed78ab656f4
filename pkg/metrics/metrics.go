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

// Package metrics defines minimal metric primitives. Components hold the
// interfaces in this package instead of a concrete implementation; a nil
// metric is valid and discards all updates, so instrumentation is optional
// by construction.
package metrics

import (
	"sync"
)

// Counter describes a metric that accumulates values monotonically.
type Counter interface {
	With(labelValues ...string) Counter
	Add(delta float64)
}

// Gauge describes a metric that takes arbitrary values.
type Gauge interface {
	With(labelValues ...string) Gauge
	Set(value float64)
	Add(delta float64)
}

// CounterWith returns a counter with the labels applied, or nil if c is nil.
func CounterWith(c Counter, labelValues ...string) Counter {
	if c == nil {
		return nil
	}
	return c.With(labelValues...)
}

// CounterAdd increases the passed counter by the amount, if the counter is
// not nil.
func CounterAdd(c Counter, delta float64) {
	if c != nil {
		c.Add(delta)
	}
}

// CounterInc increases the passed counter by 1, if the counter is not nil.
func CounterInc(c Counter) {
	CounterAdd(c, 1)
}

// GaugeWith returns a gauge with the labels applied, or nil if g is nil.
func GaugeWith(g Gauge, labelValues ...string) Gauge {
	if g == nil {
		return nil
	}
	return g.With(labelValues...)
}

// GaugeSet sets the passed gauge to the value, if the gauge is not nil.
func GaugeSet(g Gauge, value float64) {
	if g != nil {
		g.Set(value)
	}
}

// testStore is the label-to-value store shared by all views of a test metric.
type testStore struct {
	mtx    sync.Mutex
	values map[string]float64
}

func (s *testStore) add(labels []string, delta float64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.values[labelKey(labels)] += delta
}

func (s *testStore) set(labels []string, value float64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.values[labelKey(labels)] = value
}

func (s *testStore) get(labels []string) float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.values[labelKey(labels)]
}

// TestCounter implements a counter for use in tests.
type TestCounter struct {
	store  *testStore
	labels []string
}

// NewTestCounter creates a new counter for use in tests.
func NewTestCounter() *TestCounter {
	return &TestCounter{store: &testStore{values: map[string]float64{}}}
}

// With implements Counter.
func (c *TestCounter) With(labelValues ...string) Counter {
	return &TestCounter{
		store:  c.store,
		labels: append(append([]string{}, c.labels...), labelValues...),
	}
}

// Add implements Counter.
func (c *TestCounter) Add(delta float64) {
	c.store.add(c.labels, delta)
}

// CounterValue extracts the value out of a test counter. Returns 0 for other
// counters.
func CounterValue(c Counter) float64 {
	tc, ok := c.(*TestCounter)
	if !ok {
		return 0
	}
	return tc.store.get(tc.labels)
}

// TestGauge implements a gauge for use in tests.
type TestGauge struct {
	store  *testStore
	labels []string
}

// NewTestGauge creates a new gauge for use in tests.
func NewTestGauge() *TestGauge {
	return &TestGauge{store: &testStore{values: map[string]float64{}}}
}

// With implements Gauge.
func (g *TestGauge) With(labelValues ...string) Gauge {
	return &TestGauge{
		store:  g.store,
		labels: append(append([]string{}, g.labels...), labelValues...),
	}
}

// Set implements Gauge.
func (g *TestGauge) Set(value float64) {
	g.store.set(g.labels, value)
}

// Add implements Gauge.
func (g *TestGauge) Add(delta float64) {
	g.store.add(g.labels, delta)
}

// GaugeValue extracts the value out of a test gauge. Returns 0 for other
// gauges.
func GaugeValue(g Gauge) float64 {
	tg, ok := g.(*TestGauge)
	if !ok {
		return 0
	}
	return tg.store.get(tg.labels)
}

func labelKey(labels []string) string {
	key := ""
	for _, l := range labels {
		key += l + "\x00"
	}
	return key
}
