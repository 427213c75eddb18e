// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image/color"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestClearRenderPass(t *testing.T) {
	rd := &Render{ClearColor: color.RGBA{B: 255, A: 255}}
	desc := rd.ClearRenderPass(nil)
	assert.Len(t, desc.ColorAttachments, 1)

	ca := desc.ColorAttachments[0]
	assert.Equal(t, wgpu.LoadOpClear, ca.LoadOp)
	assert.Equal(t, wgpu.StoreOpStore, ca.StoreOp)
	assert.Equal(t, wgpu.Color{R: 0, G: 0, B: 1, A: 1}, ca.ClearValue)
	assert.Nil(t, desc.DepthStencilAttachment)
}

func TestLoadRenderPass(t *testing.T) {
	rd := &Render{}
	desc := rd.LoadRenderPass(nil)
	assert.Equal(t, wgpu.LoadOpLoad, desc.ColorAttachments[0].LoadOp)
	assert.Equal(t, wgpu.StoreOpStore, desc.ColorAttachments[0].StoreOp)
}

func TestColorToWGPU(t *testing.T) {
	assert.Equal(t, wgpu.Color{A: 1}, colorToWGPU(nil))
	assert.Equal(t, wgpu.Color{R: 1, G: 1, B: 1, A: 1}, colorToWGPU(color.White))

	c := colorToWGPU(color.RGBA{R: 255, G: 102, B: 26, A: 255})
	assert.InDelta(t, 1.0, c.R, 0.001)
	assert.InDelta(t, 0.4, c.G, 0.001)
	assert.InDelta(t, 0.102, c.B, 0.001)
	assert.InDelta(t, 1.0, c.A, 0.001)
}
