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

package serrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbackbone/backbone/pkg/serrors"
)

var errSentinel = errors.New("sentinel")

func TestJoinSupportsIs(t *testing.T) {
	cause := errors.New("cause")
	err := serrors.Join(errSentinel, cause, "key", "value")
	assert.ErrorIs(t, err, errSentinel)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "sentinel")
	assert.Contains(t, err.Error(), "key=value")
}

func TestJoinNil(t *testing.T) {
	assert.NoError(t, serrors.Join(nil, nil, "key", "value"))
}

func TestWrapSupportsIs(t *testing.T) {
	err := serrors.Wrap("publishing failed", errSentinel, "attempt", 1)
	assert.ErrorIs(t, err, errSentinel)
	assert.Contains(t, err.Error(), "publishing failed")
	assert.Contains(t, err.Error(), "attempt=1")
}

func TestNewContextSorted(t *testing.T) {
	err := serrors.New("oops", "b", 2, "a", 1)
	assert.Equal(t, "oops {a=1; b=2}", err.Error())
}
