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

package control_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbackbone/backbone/bbr/control"
)

func TestIncrementSequence(t *testing.T) {
	testCases := []struct {
		in, want uint8
	}{
		{0, 1},
		{1, 2},
		{125, 126},
		{126, 0},
		{127, 0},
		{128, 129},
		{200, 201},
		{253, 254},
		{254, 128},
		{255, 128},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d", tc.in), func(t *testing.T) {
			assert.Equal(t, tc.want, control.IncrementSequence(tc.in))
		})
	}
}

// TestIncrementSequenceStaysInBand checks that the counter never crosses from
// one half-range into the other.
func TestIncrementSequenceStaysInBand(t *testing.T) {
	lower := uint8(0)
	upper := uint8(128)
	for i := 0; i < 300; i++ {
		lower = control.IncrementSequence(lower)
		upper = control.IncrementSequence(upper)
		assert.Less(t, lower, uint8(127))
		assert.GreaterOrEqual(t, upper, uint8(128))
	}
}
