// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogfx/tridraw/base/errors"
)

// This file contains the glfw dependencies, for desktop platforms.

// Init initializes the windowing system.
// IMPORTANT: must be called on the main initial thread,
// which must be locked with runtime.LockOSThread.
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down the windowing system.
// Call as the last thing before quitting.
// IMPORTANT: must be called on the main initial thread.
func Terminate() {
	glfw.Terminate()
}

// GLFWCreateWindow makes a new glfw window of the given size,
// with no client graphics API (WebGPU renders to it through the
// surface), returning the WebGPU surface for the window, a
// terminate function to call after the event loop exits, and a
// pollEvents function that pumps pending window events and reports
// false once the window's close control has been activated.
// The returned size is the actual framebuffer pixel size, which can
// differ from the requested size on high-DPI displays.
func GLFWCreateWindow(size image.Point, title string) (sp *wgpu.Surface, terminate func(), pollEvents func() bool, actualSize image.Point, err error) {
	if err = Init(); err != nil {
		return
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if errors.Log(err) != nil {
		Terminate()
		return
	}
	sp = Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	terminate = func() {
		window.Destroy()
		Terminate()
	}
	pollEvents = func() bool {
		if window.ShouldClose() {
			return false
		}
		glfw.PollEvents()
		return true
	}
	actualSize.X, actualSize.Y = window.GetFramebufferSize()
	return
}
