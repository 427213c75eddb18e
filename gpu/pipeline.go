// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogfx/tridraw/base/errors"
)

// Pipeline manages the shader program(s) for a rendering function:
// the shader modules and their entry points, and the pipeline layout
// binding them to the system's variables.
type Pipeline struct {
	// Name is the unique name of this pipeline.
	Name string

	// System that this pipeline belongs to, managing the shared
	// variables and render target.
	System *GraphicsSystem

	// Shaders contains the shader code modules loaded for this
	// pipeline, by name.
	Shaders map[string]*Shader

	// Entries contains the entry points into the shader code,
	// which are what actually gets called, by "Shader:Entry" name.
	Entries map[string]*ShaderEntry
}

// AddShader adds a Shader with the given name to the pipeline.
func (pl *Pipeline) AddShader(name string) *Shader {
	if pl.Shaders == nil {
		pl.Shaders = make(map[string]*Shader)
	}
	if sh, has := pl.Shaders[name]; has {
		slog.Error("gpu.Pipeline AddShader", "shader", name, "already exists in pipeline", pl.Name)
		return sh
	}
	sh := NewShader(name, pl.System.Device())
	pl.Shaders[name] = sh
	return sh
}

// AddEntry adds a [ShaderEntry] for the given shader, stage type,
// and entry function name.
func (pl *Pipeline) AddEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	if pl.Entries == nil {
		pl.Entries = make(map[string]*ShaderEntry)
	}
	name := sh.Name + ":" + entry
	if se, has := pl.Entries[name]; has {
		slog.Error("gpu.Pipeline AddEntry", "entry", name, "already exists in pipeline", pl.Name)
		return se
	}
	se := NewShaderEntry(sh, typ, entry)
	pl.Entries[name] = se
	return se
}

// EntryByType returns the ShaderEntry for the given stage type.
// Returns nil if none is defined.
func (pl *Pipeline) EntryByType(typ ShaderTypes) *ShaderEntry {
	for _, se := range pl.Entries {
		if se.Type == typ {
			return se
		}
	}
	return nil
}

// VertexEntry returns the [ShaderEntry] for the vertex stage.
func (pl *Pipeline) VertexEntry() *ShaderEntry {
	return pl.EntryByType(VertexShader)
}

// FragmentEntry returns the [ShaderEntry] for the fragment stage.
func (pl *Pipeline) FragmentEntry() *ShaderEntry {
	return pl.EntryByType(FragmentShader)
}

// bindLayout returns a PipelineLayout for the system's variables.
// With no bound resource groups, this is a layout over a zero-length
// bind group list and no push constants.
func (pl *Pipeline) bindLayout() (*wgpu.PipelineLayout, error) {
	rpl, err := pl.System.Device().Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            pl.Name,
		BindGroupLayouts: pl.System.Vars().bindLayouts(),
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return rpl, nil
}

// releaseShaders releases the shader modules.
func (pl *Pipeline) releaseShaders() {
	for _, sh := range pl.Shaders {
		sh.Release()
	}
	pl.Shaders = nil
	pl.Entries = nil
}
