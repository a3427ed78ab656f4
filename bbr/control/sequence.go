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

package control

// increaseSequenceNumber advances the sequence number by one, observing the
// two reserved flip bands.
func (l *Local) increaseSequenceNumber() {
	l.cfg.SequenceNumber = incrementSequence(l.cfg.SequenceNumber)
}

// incrementSequence implements the banded 8-bit increment: the counter
// cycles through two interleaved half-ranges instead of wrapping uniformly.
// Downstream freshness comparisons depend on the exact band boundaries, so
// this must not be replaced by a plain modular increment.
func incrementSequence(n uint8) uint8 {
	switch n {
	case 126, 127:
		return 0
	case 254, 255:
		return 128
	default:
		return n + 1
	}
}
