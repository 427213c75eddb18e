// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu is a thin WebGPU device layer for rendering static
// geometry to an OS window surface. It owns the adapter / device
// negotiation, the presentable surface configuration, write-once
// vertex and index buffers, and a fixed graphics pipeline built from
// precompiled SPIR-V shader stages.
//
// The top-level object is [GraphicsSystem], which ties a [Surface] to
// one or more [GraphicsPipeline]s and drives the per-frame render
// pass. Everything is created once at startup and released at process
// exit; there is no dynamic resource management.
package gpu
