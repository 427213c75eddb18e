// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGPU(t *testing.T) {
	if os.Getenv("TEST_GPU") == "" {
		t.Skip("Need software GPU on CI; set TEST_GPU=1 to run")
	}
	gp, err := NewGPU("test", nil)
	assert.NoError(t, err)
	assert.NotNil(t, gp.GPU)
	assert.NotNil(t, gp.Device.Device)
	assert.NotNil(t, gp.Device.Queue)
	gp.Release()
}
