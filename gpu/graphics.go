// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogfx/tridraw/base/errors"
)

// GraphicsPipeline is the fixed configuration of shader stages and
// fixed-function GPU state used for draw calls. The vertex stage
// consumes the system's vertex variables; the fragment stage outputs
// one color target matching the surface format.
type GraphicsPipeline struct {
	Pipeline

	// Primitive has the topology, winding and culling settings.
	Primitive wgpu.PrimitiveState

	// Multisample state; default is single-sample.
	Multisample wgpu.MultisampleState

	// AlphaBlend enables 1-source-alpha blending of the color output;
	// false = blend mode replace: new color overwrites old.
	AlphaBlend bool

	layout         *wgpu.PipelineLayout
	renderPipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline returns a new GraphicsPipeline with default
// graphics settings, as part of the given system.
func NewGraphicsPipeline(name string, sy *GraphicsSystem) *GraphicsPipeline {
	pl := &GraphicsPipeline{}
	pl.Name = name
	pl.System = sy
	pl.SetGraphicsDefaults()
	return pl
}

// SetGraphicsDefaults configures the default settings: triangle
// list topology, counter-clockwise front faces, back-face culling,
// replace blending, single-sample.
func (pl *GraphicsPipeline) SetGraphicsDefaults() *GraphicsPipeline {
	pl.SetTopology(wgpu.PrimitiveTopologyTriangleList)
	pl.SetFrontFace(wgpu.FrontFaceCCW)
	pl.SetCullMode(wgpu.CullModeBack)
	pl.SetAlphaBlend(false)
	pl.SetMultisample(1)
	return pl
}

// SetTopology sets the topology of vertex position data.
// TriangleList is the default.
func (pl *GraphicsPipeline) SetTopology(topo wgpu.PrimitiveTopology) *GraphicsPipeline {
	pl.Primitive.Topology = topo
	return pl
}

// SetFrontFace sets the winding order that counts as a front face.
// CCW is the default.
func (pl *GraphicsPipeline) SetFrontFace(face wgpu.FrontFace) *GraphicsPipeline {
	pl.Primitive.FrontFace = face
	return pl
}

// SetCullMode sets the face culling mode. Back is the default.
func (pl *GraphicsPipeline) SetCullMode(mode wgpu.CullMode) *GraphicsPipeline {
	pl.Primitive.CullMode = mode
	return pl
}

// SetAlphaBlend sets the color blending function: either
// 1-source-alpha blending or no blending, where the new color
// replaces the old. Replace is the default.
func (pl *GraphicsPipeline) SetAlphaBlend(alphaBlend bool) *GraphicsPipeline {
	pl.AlphaBlend = alphaBlend
	return pl
}

// SetMultisample sets the number of samples; 1 disables multisampling.
func (pl *GraphicsPipeline) SetMultisample(ms int) *GraphicsPipeline {
	pl.Multisample.Count = uint32(max(1, ms))
	pl.Multisample.Mask = 0xFFFFFFFF
	pl.Multisample.AlphaToCoverageEnabled = false
	return pl
}

// blendState returns the color target blend state per AlphaBlend.
func (pl *GraphicsPipeline) blendState() *wgpu.BlendState {
	if pl.AlphaBlend {
		return &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				Operation: wgpu.BlendOperationAdd,
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			},
			Alpha: wgpu.BlendComponent{
				Operation: wgpu.BlendOperationAdd,
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			},
		}
	}
	return &wgpu.BlendStateReplace
}

// Config builds the pipeline layout and render pipeline, after the
// shaders have been loaded and the system vars configured. The
// fixed-function state is fully determined at this point: no
// depth / stencil, one color target in the render format with all
// channels writable. A vertex stage entry is required.
func (pl *GraphicsPipeline) Config() error {
	if pl.renderPipeline != nil {
		return nil
	}
	ve := pl.VertexEntry()
	if ve == nil {
		err := fmt.Errorf("gpu.GraphicsPipeline %s: no vertex shader entry", pl.Name)
		return errors.Log(err)
	}
	lay, err := pl.bindLayout()
	if err != nil {
		return err
	}
	pl.layout = lay

	pd := &wgpu.RenderPipelineDescriptor{
		Label:       pl.Name,
		Layout:      pl.layout,
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
		Vertex: wgpu.VertexState{
			Module:     ve.Shader.Module(),
			EntryPoint: ve.Entry,
			Buffers:    pl.System.Vars().VertexLayout(),
		},
	}
	fe := pl.FragmentEntry()
	if fe != nil {
		pd.Fragment = &wgpu.FragmentState{
			Module:     fe.Shader.Module(),
			EntryPoint: fe.Entry,
			Targets: []wgpu.ColorTargetState{{
				Format:    pl.System.Render().Format.Format,
				Blend:     pl.blendState(),
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		}
	}
	rp, err := pl.System.Device().Device.CreateRenderPipeline(pd)
	if errors.Log(err) != nil {
		pl.releasePipeline()
		return err
	}
	pl.renderPipeline = rp
	return nil
}

// BindPipeline binds this pipeline as the one to use for the next
// commands in the given render pass, configuring it first if needed.
func (pl *GraphicsPipeline) BindPipeline(rp *wgpu.RenderPassEncoder) error {
	if pl.renderPipeline == nil {
		if err := pl.Config(); err != nil {
			return err
		}
	}
	rp.SetPipeline(pl.renderPipeline)
	return nil
}

// BindVertex binds the vertex variable buffers at their slots, and
// the index buffer if present, for the next DrawIndexed call.
func (pl *GraphicsPipeline) BindVertex(rp *wgpu.RenderPassEncoder) {
	vg := pl.Vars().VertexGroup()
	if vg == nil {
		return
	}
	for _, vr := range vg.Vars {
		vl := vr.Value
		if vl == nil || vl.buffer == nil {
			continue
		}
		if vr.Role == Index {
			rp.SetIndexBuffer(vl.buffer, vr.Type.IndexType(), 0, wgpu.WholeSize)
		} else {
			rp.SetVertexBuffer(uint32(vr.Binding), vl.buffer, 0, wgpu.WholeSize)
		}
	}
}

// DrawIndexed issues one indexed draw covering the full index range
// with one instance. An empty index sequence draws nothing, leaving
// a clear-only frame.
func (pl *GraphicsPipeline) DrawIndexed(rp *wgpu.RenderPassEncoder) {
	n := pl.IndexCount()
	if n == 0 {
		return
	}
	rp.DrawIndexed(uint32(n), 1, 0, 0, 0)
}

// BindDrawIndexed binds the vertex and index buffers and then does
// the DrawIndexed call; everything needed after BindPipeline for
// standard rendering.
func (pl *GraphicsPipeline) BindDrawIndexed(rp *wgpu.RenderPassEncoder) {
	pl.BindVertex(rp)
	pl.DrawIndexed(rp)
}

// IndexCount returns the number of elements in the index variable's
// current value, which is the per-frame draw count. 0 if there is
// no index variable or nothing has been uploaded.
func (pl *GraphicsPipeline) IndexCount() int {
	vg := pl.Vars().VertexGroup()
	if vg == nil {
		return 0
	}
	ix := vg.IndexVar()
	if ix == nil || ix.Value == nil {
		return 0
	}
	return ix.Value.N
}

// Vars returns the system's variables.
func (pl *GraphicsPipeline) Vars() *Vars {
	return pl.System.Vars()
}

// Release releases the shaders and pipeline resources.
func (pl *GraphicsPipeline) Release() {
	pl.releaseShaders()
	pl.releasePipeline()
}

func (pl *GraphicsPipeline) releasePipeline() {
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
}
