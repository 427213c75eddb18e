// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image/color"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogfx/tridraw/base/errors"
)

// GraphicsSystem manages a system of [GraphicsPipeline]s sharing a
// common set of [Vars] and rendering to one [Surface]. It provides
// the top-level API for the whole render process: begin a clearing
// render pass, encode draws through the pipelines, submit, present.
type GraphicsSystem struct {
	// Name is the optional name of this system.
	Name string

	// GraphicsPipelines by name.
	GraphicsPipelines map[string]*GraphicsPipeline

	// Surface is the render target for this system.
	Surface *Surface

	// render has the clear color and target format.
	render Render

	// CommandEncoder is the encoder created in
	// [GraphicsSystem.BeginRenderPass] and submitted in
	// [GraphicsSystem.SubmitRender].
	CommandEncoder *wgpu.CommandEncoder

	vars   Vars
	device Device
	gpu    *GPU
}

// NewGraphicsSystem returns a new GraphicsSystem rendering to the
// given surface. The default clear color is opaque black; set with
// [GraphicsSystem.SetClearColor].
func NewGraphicsSystem(gp *GPU, name string, sf *Surface) *GraphicsSystem {
	sy := &GraphicsSystem{Name: name}
	sy.gpu = gp
	sy.Surface = sf
	sy.device = gp.Device
	sy.vars.device = gp.Device
	sy.render.Format = sf.Format
	sy.render.ClearColor = color.Black
	sy.GraphicsPipelines = make(map[string]*GraphicsPipeline)
	return sy
}

// Vars returns the variables for this system.
func (sy *GraphicsSystem) Vars() *Vars { return &sy.vars }

// Device returns the logical device for this system.
func (sy *GraphicsSystem) Device() *Device { return &sy.device }

// GPU returns the GPU for this system.
func (sy *GraphicsSystem) GPU() *GPU { return sy.gpu }

// Render returns the render pass parameters for this system.
func (sy *GraphicsSystem) Render() *Render { return &sy.render }

// AddGraphicsPipeline adds a new GraphicsPipeline to the system.
func (sy *GraphicsSystem) AddGraphicsPipeline(name string) *GraphicsPipeline {
	pl := NewGraphicsPipeline(name, sy)
	sy.GraphicsPipelines[pl.Name] = pl
	return pl
}

// SetClearColor sets the color the target is cleared to when
// starting each render pass.
func (sy *GraphicsSystem) SetClearColor(c color.Color) *GraphicsSystem {
	sy.render.ClearColor = c
	return sy
}

// Config configures the entire system after the pipelines and vars
// have been set up: creates the variable values and builds each
// pipeline. After this, just set variable values and render.
// Should not need to be called more than once.
func (sy *GraphicsSystem) Config() error {
	sy.vars.Config(&sy.device)
	var errs []error
	for _, pl := range sy.GraphicsPipelines {
		if err := pl.Config(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewCommandEncoder returns a new command encoder for recording
// rendering commands.
func (sy *GraphicsSystem) NewCommandEncoder() (*wgpu.CommandEncoder, error) {
	cmd, err := sy.device.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return nil, err
	}
	return cmd, nil
}

// BeginRenderPass acquires the next surface texture, creates a
// command encoder, and starts a render pass that clears the target
// to the clear color, returning the encoder for adding rendering
// commands. Call rp.End() and then [GraphicsSystem.EndRenderPass]
// when done. An error means the surface is unavailable; this layer
// has no recovery path for that.
func (sy *GraphicsSystem) BeginRenderPass() (*wgpu.RenderPassEncoder, error) {
	view, err := sy.Surface.AcquireNextTexture()
	if err != nil {
		return nil, err
	}
	cmd, err := sy.NewCommandEncoder()
	if err != nil {
		return nil, err
	}
	sy.CommandEncoder = cmd
	return sy.render.BeginRenderPass(cmd, view), nil
}

// SubmitRender submits the recorded render commands to the device
// queue, releasing the pass encoder and command encoder.
// rp.End must have been called first.
func (sy *GraphicsSystem) SubmitRender(rp *wgpu.RenderPassEncoder) error {
	cmd := sy.CommandEncoder
	sy.CommandEncoder = nil
	rp.Release() // must happen before Finish
	cmdBuffer, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		cmd.Release()
		return err
	}
	sy.device.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	cmd.Release()
	return nil
}

// EndRenderPass ends the render pass started by
// [GraphicsSystem.BeginRenderPass]: submits the commands to the
// queue and presents the surface texture.
func (sy *GraphicsSystem) EndRenderPass(rp *wgpu.RenderPassEncoder) error {
	if err := sy.SubmitRender(rp); err != nil {
		return err
	}
	sy.Surface.Present()
	return nil
}

// RenderFrame does one complete frame: clears the target, binds
// each pipeline with its vertex and index buffers, issues the
// indexed draws, submits, and presents. Every call records the
// same command sequence for the same configured state. A pipeline
// that fails to bind aborts the frame and returns its error;
// there is no partial-frame recovery.
func (sy *GraphicsSystem) RenderFrame() error {
	rp, err := sy.BeginRenderPass()
	if err != nil {
		return err
	}
	for _, pl := range sy.GraphicsPipelines {
		if err := pl.BindPipeline(rp); err != nil {
			rp.End()
			return errors.Join(err, sy.SubmitRender(rp))
		}
		pl.BindDrawIndexed(rp)
	}
	rp.End()
	return sy.EndRenderPass(rp)
}

// WaitDone waits until the device is done with all current work.
func (sy *GraphicsSystem) WaitDone() {
	sy.device.WaitDone()
}

// Release releases the pipelines and variable buffers.
// The Surface and GPU are released separately by their owner.
func (sy *GraphicsSystem) Release() {
	sy.WaitDone()
	for _, pl := range sy.GraphicsPipelines {
		pl.Release()
	}
	sy.GraphicsPipelines = nil
	sy.vars.Release()
	sy.gpu = nil
}
