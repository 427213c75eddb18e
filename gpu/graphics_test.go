// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestGraphicsDefaults(t *testing.T) {
	pl := NewGraphicsPipeline("test", nil)
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, pl.Primitive.Topology)
	assert.Equal(t, wgpu.FrontFaceCCW, pl.Primitive.FrontFace)
	assert.Equal(t, wgpu.CullModeBack, pl.Primitive.CullMode)
	assert.False(t, pl.AlphaBlend)
	assert.Equal(t, uint32(1), pl.Multisample.Count)
	assert.Equal(t, uint32(0xFFFFFFFF), pl.Multisample.Mask)
	assert.False(t, pl.Multisample.AlphaToCoverageEnabled)
}

func TestBlendState(t *testing.T) {
	pl := NewGraphicsPipeline("test", nil)
	assert.Equal(t, &wgpu.BlendStateReplace, pl.blendState())

	pl.SetAlphaBlend(true)
	bs := pl.blendState()
	assert.Equal(t, wgpu.BlendOperationAdd, bs.Color.Operation)
	assert.Equal(t, wgpu.BlendFactorOne, bs.Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorOneMinusSrcAlpha, bs.Color.DstFactor)
}

func TestSetMultisampleClamps(t *testing.T) {
	pl := NewGraphicsPipeline("test", nil)
	pl.SetMultisample(0)
	assert.Equal(t, uint32(1), pl.Multisample.Count)
	pl.SetMultisample(4)
	assert.Equal(t, uint32(4), pl.Multisample.Count)
}

func TestIndexCountEmpty(t *testing.T) {
	sy := &GraphicsSystem{}
	pl := NewGraphicsPipeline("test", sy)
	assert.Equal(t, 0, pl.IndexCount()) // no vertex group

	vg := sy.Vars().AddVertexGroup()
	vg.Add("Pos", Float32Vector3, Vertex)
	assert.Equal(t, 0, pl.IndexCount()) // no index var

	idx := vg.Add("Index", Uint32, Index)
	assert.Equal(t, 0, pl.IndexCount()) // no value yet

	idx.Value = &Value{Name: idx.Name, VarSize: idx.Type.Bytes()}
	assert.Equal(t, 0, pl.IndexCount()) // nothing uploaded
}

func TestDrawIndexedEmpty(t *testing.T) {
	sy := &GraphicsSystem{}
	pl := NewGraphicsPipeline("test", sy)
	vg := sy.Vars().AddVertexGroup()
	idx := vg.Add("Index", Uint32, Index)
	idx.Value = &Value{Name: idx.Name, VarSize: idx.Type.Bytes()}

	// zero draw count leaves a clear-only frame: nothing is
	// encoded, so a nil pass encoder must not be touched
	assert.NotPanics(t, func() { pl.DrawIndexed(nil) })
	assert.NotPanics(t, func() { pl.BindDrawIndexed(nil) })
}

func TestConfigNoVertexEntry(t *testing.T) {
	sy := &GraphicsSystem{}
	pl := NewGraphicsPipeline("test", sy)
	err := pl.Config()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no vertex shader entry")

	// BindPipeline propagates the configuration error
	assert.Error(t, pl.BindPipeline(nil))
}

func TestShaderEntries(t *testing.T) {
	pl := NewGraphicsPipeline("test", nil)
	vsh := &Shader{Name: "vert"}
	fsh := &Shader{Name: "frag"}
	pl.AddEntry(vsh, VertexShader, "main")
	pl.AddEntry(fsh, FragmentShader, "main")

	ve := pl.VertexEntry()
	assert.NotNil(t, ve)
	assert.Equal(t, vsh, ve.Shader)
	assert.Equal(t, "main", ve.Entry)

	fe := pl.FragmentEntry()
	assert.NotNil(t, fe)
	assert.Equal(t, fsh, fe.Shader)

	assert.Nil(t, pl.EntryByType(UnknownShader))
}
