// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderLoopCloses(t *testing.T) {
	polls := 0
	renders := 0
	err := RenderLoop(func() bool {
		polls++
		return polls < 4
	}, func() error {
		renders++
		return nil
	}, time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, 4, polls)
	assert.Equal(t, 3, renders)
}

func TestRenderLoopImmediateClose(t *testing.T) {
	renders := 0
	err := RenderLoop(func() bool { return false }, func() error {
		renders++
		return nil
	}, time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, 0, renders)
}

func TestRenderLoopError(t *testing.T) {
	boom := errors.New("surface lost")
	renders := 0
	err := RenderLoop(func() bool { return true }, func() error {
		renders++
		return boom
	}, time.Millisecond)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, renders)
}

func TestRenderLoopDefaultInterval(t *testing.T) {
	start := time.Now()
	err := RenderLoop(func() bool { return false }, func() error { return nil }, 0)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), DefaultFrameInterval)
}
