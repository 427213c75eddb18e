// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogfx/tridraw/base/errors"
)

// Shader manages a single shader module, which can contain multiple
// entry points (see [ShaderEntry]). Modules are constructed either
// from precompiled SPIR-V bytecode ([Shader.OpenSPIRV]) or from WGSL
// source ([Shader.OpenCode]).
type Shader struct {
	// Name is used for labeling and error messages.
	Name string

	module *wgpu.ShaderModule
	device Device
}

// NewShader returns a new Shader with the given name,
// which should have no spaces.
func NewShader(name string, dev *Device) *Shader {
	return &Shader{Name: name, device: *dev}
}

// Module returns the WebGPU shader module handle.
// It is nil until one of the Open methods has succeeded.
func (sh *Shader) Module() *wgpu.ShaderModule {
	return sh.module
}

// OpenSPIRV constructs the shader module directly from precompiled
// SPIR-V bytecode, bypassing source-level compilation. The driver
// performs no validation of the bytecode in this mode, so the binary
// header is checked here first: malformed input is rejected with an
// [*InvalidSPIRVError] instead of being handed to the driver. The
// device must have been created with [FeatureNameSpirvShaderPassthrough].
func (sh *Shader) OpenSPIRV(code []byte) error {
	if err := ValidateSPIRV(sh.Name, code); err != nil {
		return errors.Log(err)
	}
	module, err := sh.device.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:           sh.Name,
		SPIRVDescriptor: &wgpu.ShaderModuleSPIRVDescriptor{Code: code},
	})
	if errors.Log(err) != nil {
		return err
	}
	sh.module = module
	return nil
}

// OpenCode compiles the shader module from WGSL source code.
func (sh *Shader) OpenCode(code string) error {
	module, err := sh.device.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          sh.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if errors.Log(err) != nil {
		return err
	}
	sh.module = module
	return nil
}

// Release releases the shader module.
func (sh *Shader) Release() {
	if sh.module == nil {
		return
	}
	sh.module.Release()
	sh.module = nil
}

// spirvMagic is the SPIR-V magic number in the host (little-endian)
// word order that the driver consumes.
const spirvMagic = 0x07230203

// InvalidSPIRVError is returned when bytes passed to
// [Shader.OpenSPIRV] are not a well-formed SPIR-V module.
type InvalidSPIRVError struct {
	// Name of the shader the bytes were given for.
	Name string

	// Reason the bytes were rejected.
	Reason string
}

func (e *InvalidSPIRVError) Error() string {
	return fmt.Sprintf("gpu.Shader %s: invalid SPIR-V binary: %s", e.Name, e.Reason)
}

// ValidateSPIRV checks that the given bytes carry a well-formed
// SPIR-V module header: word-aligned length, the standard magic
// number in little-endian order, a version 1.x word, and a nonzero
// ID bound. It does not validate the instruction stream; the header
// check is the trust boundary before the bytecode is handed to the
// driver unvalidated.
func ValidateSPIRV(name string, code []byte) error {
	fail := func(reason string) error {
		return &InvalidSPIRVError{Name: name, Reason: reason}
	}
	if len(code) < 20 {
		return fail("shorter than the 5-word header")
	}
	if len(code)%4 != 0 {
		return fail("length is not a multiple of 4 bytes")
	}
	if magic := binary.LittleEndian.Uint32(code[0:4]); magic != spirvMagic {
		return fail(fmt.Sprintf("magic word is %#08x, not %#08x (byte order?)", magic, uint32(spirvMagic)))
	}
	version := binary.LittleEndian.Uint32(code[4:8])
	if major := (version >> 16) & 0xff; major != 1 {
		return fail(fmt.Sprintf("unsupported version word %#08x", version))
	}
	if bound := binary.LittleEndian.Uint32(code[12:16]); bound == 0 {
		return fail("zero ID bound")
	}
	return nil
}

// ShaderTypes are the different types of shader stages.
type ShaderTypes int32

const (
	UnknownShader ShaderTypes = iota
	VertexShader
	FragmentShader
)

// ShaderEntry is an entry point into a [Shader]: the function that a
// pipeline stage of the given type calls.
type ShaderEntry struct {
	// Shader holding the code.
	Shader *Shader

	// Type is the stage this entry is used for.
	Type ShaderTypes

	// Entry is the function name within the shader. SPIR-V binaries
	// compiled from GLSL name it main.
	Entry string
}

// NewShaderEntry returns a new ShaderEntry with the given values.
func NewShaderEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	return &ShaderEntry{Shader: sh, Type: typ, Entry: entry}
}
