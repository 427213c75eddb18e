// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestVarGroupBindings(t *testing.T) {
	vg := &VarGroup{}
	pos := vg.Add("Pos", Float32Vector3, Vertex)
	col := vg.Add("Color", Float32Vector4, Vertex)
	idx := vg.Add("Index", Uint32, Index)

	assert.Equal(t, 0, pos.Binding)
	assert.Equal(t, 1, col.Binding)
	assert.Equal(t, 0, idx.Binding) // index vars do not consume slots

	assert.Equal(t, idx, vg.IndexVar())

	vr, err := vg.VarByName("Color")
	assert.NoError(t, err)
	assert.Equal(t, col, vr)

	_, err = vg.VarByName("Normal")
	assert.Error(t, err)
}

func TestVertexLayout(t *testing.T) {
	vs := &Vars{}
	vg := vs.AddVertexGroup()
	vg.Add("Pos", Float32Vector3, Vertex)
	vg.Add("Index", Uint32, Index)

	lays := vs.VertexLayout()
	assert.Len(t, lays, 1) // index var contributes no vertex buffer

	lay := lays[0]
	assert.Equal(t, uint64(12), lay.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, lay.StepMode)
	assert.Len(t, lay.Attributes, 1)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, lay.Attributes[0].Format)
	assert.Equal(t, uint64(0), lay.Attributes[0].Offset)
	assert.Equal(t, uint32(0), lay.Attributes[0].ShaderLocation)
}

func TestVertexLayoutEmpty(t *testing.T) {
	vs := &Vars{}
	assert.Nil(t, vs.VertexLayout())
	assert.Nil(t, vs.VertexGroup())
	assert.Nil(t, vs.bindLayouts())
}

func TestVarRoleUsages(t *testing.T) {
	assert.Equal(t, wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst, Vertex.BufferUsages())
	assert.Equal(t, wgpu.BufferUsageIndex|wgpu.BufferUsageCopyDst, Index.BufferUsages())
	assert.Equal(t, wgpu.BufferUsageNone, UndefinedRole.BufferUsages())
}
