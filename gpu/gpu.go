// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogfx/tridraw/base/errors"
)

// Debug enables informational logging about the selected adapter,
// surface format, and pipeline configuration.
var Debug = false

// FeatureNameSpirvShaderPassthrough is the wgpu-native extension
// feature that allows CreateShaderModule to consume SPIR-V bytecode
// directly, bypassing WGSL translation. The value mirrors
// WGPUNativeFeature_SpirvShaderPassthrough in wgpu.h.
const FeatureNameSpirvShaderPassthrough = wgpu.FeatureName(0x00030017)

// instance is the shared WebGPU instance, created on demand.
var instance *wgpu.Instance

// Instance returns the shared WebGPU instance handle,
// creating it if needed.
func Instance() *wgpu.Instance {
	if instance == nil {
		instance = wgpu.CreateInstance(nil)
	}
	return instance
}

// GPU represents the physical GPU selected by the WebGPU backend,
// along with the logical Device and Queue created from it.
// One GPU is created at startup and owns its handles exclusively
// for the lifetime of the process.
type GPU struct {
	// Name is an optional name used to label GPU objects.
	Name string

	// GPU is the adapter: the physical / logical GPU chosen
	// by the backend as compatible with the target surface.
	GPU *wgpu.Adapter

	// Device is the logical device and command queue shared by
	// everything rendering through this GPU.
	Device Device
}

// NewGPU returns a new GPU configured against the given surface:
// it requests an adapter compatible with the surface using default
// selection criteria, then a logical device with the SPIR-V
// passthrough feature enabled. Both requests suspend until the
// backend responds. There is no fallback: an error from either
// request means the process cannot render and should exit.
func NewGPU(name string, sp *wgpu.Surface) (*GPU, error) {
	gp := &GPU{Name: name}

	adapter, err := Instance().RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: sp,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	gp.GPU = adapter

	dev, err := NewDevice(name, adapter, FeatureNameSpirvShaderPassthrough)
	if errors.Log(err) != nil {
		adapter.Release()
		return nil, err
	}
	gp.Device = *dev
	if Debug {
		slog.Info("gpu: device ready", "name", name)
	}
	return gp, nil
}

// Release releases the device and adapter.
// Call as the last step of teardown, after all surfaces and
// systems using this GPU have been released.
func (gp *GPU) Release() {
	gp.Device.Release()
	if gp.GPU != nil {
		gp.GPU.Release()
		gp.GPU = nil
	}
}
