// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogfx/tridraw/base/errors"
)

// Value holds the GPU buffer for one [Var]. The buffer is created on
// the first upload and sized to the data; in this design every value
// is written exactly once, before any render pass uses it.
type Value struct {
	// Name of this value, from the variable name.
	Name string

	// N is the number of elements currently in the buffer,
	// e.g., the number of vertices or indexes.
	N int

	// VarSize is the size of one element in bytes, from the Var type.
	VarSize int

	// AllocSize is the total allocated buffer size in bytes.
	AllocSize int

	role   VarRoles
	device Device

	// buffer makes the value accessible to the GPU.
	buffer *wgpu.Buffer
}

// NewValue returns a new Value for the given variable.
func NewValue(vr *Var, dev *Device) *Value {
	return &Value{
		Name:    vr.Name,
		VarSize: vr.Type.Bytes(),
		role:    vr.Role,
		device:  *dev,
	}
}

// SetValueFrom copies the given values into the value's buffer,
// creating the buffer if it has not yet been constructed.
func SetValueFrom[E any](vl *Value, from []E) error {
	return vl.SetFromBytes(wgpu.ToBytes(from))
}

// SetFromBytes copies the given bytes into the value's buffer,
// creating the buffer if it has not yet been constructed or if the
// size changed. The byte length must be a whole number of elements.
func (vl *Value) SetFromBytes(from []byte) error {
	if vl.VarSize <= 0 {
		err := fmt.Errorf("gpu.Value SetFromBytes %s: element size is not set", vl.Name)
		return errors.Log(err)
	}
	nb := len(from)
	if nb%vl.VarSize != 0 {
		err := fmt.Errorf("gpu.Value SetFromBytes %s: size passed: %d is not a multiple of element size %d", vl.Name, nb, vl.VarSize)
		return errors.Log(err)
	}
	vl.N = nb / vl.VarSize
	if vl.buffer == nil || vl.AllocSize != nb {
		vl.Release()
		buf, err := vl.device.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    vl.Name,
			Contents: from,
			Usage:    vl.role.BufferUsages(),
		})
		if errors.Log(err) != nil {
			return err
		}
		vl.buffer = buf
		vl.AllocSize = nb
		return nil
	}
	return errors.Log(vl.device.Queue.WriteBuffer(vl.buffer, 0, from))
}

// Release releases the buffer for this value.
func (vl *Value) Release() {
	if vl.buffer != nil {
		vl.buffer.Release()
		vl.buffer = nil
	}
	vl.AllocSize = 0
}
