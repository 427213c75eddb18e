// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image/color"

	"github.com/cogentcore/webgpu/wgpu"
)

// Render manages the render pass parameters for a render target:
// its format and the color the target is cleared to at the start of
// each pass. There is no depth / stencil attachment in this design.
type Render struct {
	// Format of the target framebuffer we render to.
	Format TextureFormat

	// ClearColor is the color set when starting a new render pass.
	ClearColor color.Color
}

// ClearRenderPass returns a render pass descriptor that clears the
// framebuffer to ClearColor and stores the result: one color
// attachment, no depth / stencil, no resolve target.
func (rd *Render) ClearRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			ClearValue: colorToWGPU(rd.ClearColor),
			StoreOp:    wgpu.StoreOpStore,
		}},
	}
}

// LoadRenderPass returns a render pass descriptor that loads the
// previous framebuffer contents instead of clearing.
func (rd *Render) LoadRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpLoad,
			StoreOp: wgpu.StoreOpStore,
		}},
	}
}

// BeginRenderPass adds commands to the given command encoder to
// start a render pass on the given view, clearing it first.
func (rd *Render) BeginRenderPass(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.ClearRenderPass(view))
}

// BeginRenderPassNoClear is a version of [Render.BeginRenderPass]
// that loads the prior framebuffer contents instead of clearing.
func (rd *Render) BeginRenderPassNoClear(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.LoadRenderPass(view))
}

// colorToWGPU converts a Go color to the float64 channel values
// used in render pass clear operations.
func colorToWGPU(c color.Color) wgpu.Color {
	if c == nil {
		return wgpu.Color{A: 1}
	}
	r, g, b, a := c.RGBA()
	return wgpu.Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}
}
