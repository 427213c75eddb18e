// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogfx/tridraw/base/errors"
)

// VarRoles are the functional roles of variables.
type VarRoles int32

const (
	UndefinedRole VarRoles = iota

	// Vertex is per-vertex input data fed to the vertex shader
	// through a vertex buffer slot.
	Vertex

	// Index is the index sequence for indexed drawing, bound as the
	// index buffer. At most one Index var can exist per group, and
	// its element count is the draw count.
	Index
)

// BufferUsages returns the BufferUsage flags for buffers
// of values in this role.
func (rl VarRoles) BufferUsages() wgpu.BufferUsage {
	switch rl {
	case Vertex:
		return wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst
	case Index:
		return wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst
	}
	return wgpu.BufferUsageNone
}

// Var specifies a variable used in a pipeline: its name, data type,
// and role. Each Var has one [Value] holding the actual GPU buffer.
// Vertex vars are assigned sequential Binding numbers, which are the
// @location attribute indexes in the shader.
type Var struct {
	// Name of the variable.
	Name string

	// Type of data in the variable.
	Type Types

	// Role: Vertex or Index.
	Role VarRoles

	// Binding is the vertex buffer slot and shader location,
	// assigned sequentially within the group. Not used for Index.
	Binding int

	// Value holds the GPU buffer for this variable.
	Value *Value
}

func (vr *Var) String() string {
	return fmt.Sprintf("%d:\t%s\t%s", vr.Binding, vr.Name, vr.Type)
}

// VarGroup holds the vertex-stage input variables: Vertex vars plus
// at most one Index var. This design has no uniform, texture, or
// storage groups: the shader input surface beyond vertex data is
// genuinely empty, and the pipeline layout is built with a
// zero-length bind group list accordingly (see [Vars]).
type VarGroup struct {
	// Vars in order added. Vertex vars get sequential bindings;
	// the Index var, if any, is conventionally added last.
	Vars []*Var

	device Device
}

// Add adds a new variable of the given type and role,
// returning it for any further configuration.
func (vg *VarGroup) Add(name string, typ Types, role VarRoles) *Var {
	vr := &Var{Name: name, Type: typ, Role: role}
	if role == Vertex {
		nb := 0
		for _, ev := range vg.Vars {
			if ev.Role == Vertex {
				nb++
			}
		}
		vr.Binding = nb
	}
	vg.Vars = append(vg.Vars, vr)
	return vr
}

// VarByName returns the variable with the given name,
// returning nil and an error if not found.
func (vg *VarGroup) VarByName(name string) (*Var, error) {
	for _, vr := range vg.Vars {
		if vr.Name == name {
			return vr, nil
		}
	}
	return nil, errors.Log(fmt.Errorf("gpu.VarGroup: variable %q not found", name))
}

// IndexVar returns the Index role variable in this group,
// or nil if there is none.
func (vg *VarGroup) IndexVar() *Var {
	for _, vr := range vg.Vars {
		if vr.Role == Index {
			return vr
		}
	}
	return nil
}

// vertexLayout returns the WebGPU vertex buffer layouts for the
// Vertex role vars, one buffer per var, with the var's binding as
// both the buffer slot and the shader location.
func (vg *VarGroup) vertexLayout() []wgpu.VertexBufferLayout {
	var lays []wgpu.VertexBufferLayout
	for _, vr := range vg.Vars {
		if vr.Role != Vertex {
			continue
		}
		lays = append(lays, wgpu.VertexBufferLayout{
			ArrayStride: uint64(vr.Type.Bytes()),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{
					Format:         vr.Type.VertexFormat(),
					Offset:         0,
					ShaderLocation: uint32(vr.Binding),
				},
			},
		})
	}
	return lays
}

// Config creates the [Value] for each variable on the given device.
// Call after all variables have been added and before setting
// values. Buffers themselves are created on first upload.
func (vg *VarGroup) Config(dev *Device) {
	vg.device = *dev
	for _, vr := range vg.Vars {
		if vr.Value == nil {
			vr.Value = NewValue(vr, dev)
		}
	}
}

// Release releases the buffers for all variables.
func (vg *VarGroup) Release() {
	for _, vr := range vg.Vars {
		if vr.Value != nil {
			vr.Value.Release()
		}
	}
}

// Vars represents all the data variables used by a system.
// Only the vertex group exists in this design; the bind group
// layout list is correspondingly zero-length.
type Vars struct {
	// Vertex is the group of vertex-stage inputs, nil until added.
	Vertex *VarGroup

	device Device
}

// AddVertexGroup adds the vertex group, returning it for adding
// variables. There can be only one.
func (vs *Vars) AddVertexGroup() *VarGroup {
	vs.Vertex = &VarGroup{}
	return vs.Vertex
}

// VertexGroup returns the vertex group, nil if none.
func (vs *Vars) VertexGroup() *VarGroup {
	return vs.Vertex
}

// VertexLayout returns the WebGPU vertex layout for the vertex group.
func (vs *Vars) VertexLayout() []wgpu.VertexBufferLayout {
	if vs.Vertex == nil {
		return nil
	}
	return vs.Vertex.vertexLayout()
}

// bindLayouts returns the bind group layouts for the pipeline layout.
// There are no bound resource groups in this design, so this is
// always an empty list, not an unused abstraction.
func (vs *Vars) bindLayouts() []*wgpu.BindGroupLayout {
	return nil
}

// Config configures values for all groups on the given device.
func (vs *Vars) Config(dev *Device) {
	vs.device = *dev
	if vs.Vertex != nil {
		vs.Vertex.Config(dev)
	}
}

// Release releases all variable buffers.
func (vs *Vars) Release() {
	if vs.Vertex != nil {
		vs.Vertex.Release()
	}
}
