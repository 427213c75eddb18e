// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds the logical Device and its command Queue.
type Device struct {
	// Device is the logical GPU context.
	Device *wgpu.Device

	// Queue is the command-submission channel for the device.
	Queue *wgpu.Queue
}

// NewDevice requests a logical device from the given adapter,
// with the given required features. The request suspends until
// the driver responds; failure is unrecoverable for the caller.
func NewDevice(label string, adapter *wgpu.Adapter, features ...wgpu.FeatureName) (*Device, error) {
	dev, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            label,
		RequiredFeatures: features,
	})
	if err != nil {
		return nil, err
	}
	return &Device{Device: dev, Queue: dev.GetQueue()}, nil
}

// WaitDone blocks until the device has finished all submitted work.
func (dv *Device) WaitDone() {
	if dv.Device == nil {
		return
	}
	dv.Device.Poll(true, nil)
}

// Release waits for the device to go idle and then releases it.
func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.WaitDone()
	dv.Device.Release()
	dv.Device = nil
	dv.Queue = nil
}
