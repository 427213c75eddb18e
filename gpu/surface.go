// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogfx/tridraw/base/errors"
)

// Surface manages the presentable drawing target bound to an OS
// window. Its configuration is derived exactly once, from the
// adapter capabilities and the window's pixel size at construction
// time; there is no reconfiguration path, so window resizing and
// surface loss are unhandled and the per-frame acquire simply
// returns an error in those cases.
type Surface struct {
	// GPU is the GPU this surface renders through.
	GPU *GPU

	// Device is the shared logical device, from the GPU.
	Device Device

	// Format has the surface pixel format and size, as configured.
	Format TextureFormat

	// surface is the WebGPU handle for the window surface.
	surface *wgpu.Surface

	// texture currently acquired for rendering, released on Present.
	curTexture *wgpu.Texture

	// view of the current texture.
	curView *wgpu.TextureView
}

// NewSurface configures the given WebGPU surface for presentation at
// the given pixel size, using the first format and alpha mode the
// adapter reports for it, FIFO presentation, and render-attachment
// usage. The surface handle must come from the same Instance the
// GPU's adapter was requested against.
func NewSurface(gp *GPU, sp *wgpu.Surface, size image.Point) *Surface {
	sf := &Surface{GPU: gp, Device: gp.Device, surface: sp}

	caps := sp.GetCapabilities(gp.GPU)
	sf.Format = *NewTextureFormat(caps.Formats[0], size)

	sp.Configure(gp.GPU, gp.Device.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format.Format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	})
	if Debug {
		slog.Info("gpu: surface configured", "format", sf.Format.String())
	}
	return sf
}

// AcquireNextTexture gets the next available surface texture for
// rendering, returning a view of it. Present must be called after
// rendering to show the frame and release the texture. An error
// here means the surface is unavailable (e.g., lost or zero-sized);
// there is no recovery path in this layer.
func (sf *Surface) AcquireNextTexture() (*wgpu.TextureView, error) {
	tex, err := sf.surface.GetCurrentTexture()
	if errors.Log(err) != nil {
		return nil, err
	}
	view, err := tex.CreateView(nil)
	if errors.Log(err) != nil {
		tex.Release()
		return nil, err
	}
	sf.curTexture = tex
	sf.curView = view
	return view, nil
}

// Present presents the texture acquired by [Surface.AcquireNextTexture]
// to the window, after rendering commands have been submitted,
// and releases the per-frame handles.
func (sf *Surface) Present() {
	if sf.curTexture == nil {
		return
	}
	sf.surface.Present()
	sf.curView.Release()
	sf.curView = nil
	sf.curTexture.Release()
	sf.curTexture = nil
}

// Release releases the surface handle. The GPU is not released;
// it may be shared.
func (sf *Surface) Release() {
	if sf.curView != nil {
		sf.curView.Release()
		sf.curView = nil
	}
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
}
