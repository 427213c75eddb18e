// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Types is the set of GPU data types supported for vertex and index
// variables, which can be stored in device buffers and consumed by
// shader code.
type Types int32

const (
	UndefinedType Types = iota

	// Uint16 and Uint32 are the two valid index types.
	Uint16
	Uint32

	Float32
	Float32Vector2
	// Float32Vector3 is the standard position type for vertex data.
	Float32Vector3
	Float32Vector4
)

// TypeSizes gives the size of each type in bytes.
var TypeSizes = map[Types]int{
	UndefinedType:  0,
	Uint16:         2,
	Uint32:         4,
	Float32:        4,
	Float32Vector2: 8,
	Float32Vector3: 12,
	Float32Vector4: 16,
}

// TypeToVertexFormat maps Types to the WebGPU VertexFormat
// used in vertex buffer layouts.
var TypeToVertexFormat = map[Types]wgpu.VertexFormat{
	UndefinedType:  wgpu.VertexFormatUndefined,
	Uint32:         wgpu.VertexFormatUint32,
	Float32:        wgpu.VertexFormatFloat32,
	Float32Vector2: wgpu.VertexFormatFloat32x2,
	Float32Vector3: wgpu.VertexFormatFloat32x3,
	Float32Vector4: wgpu.VertexFormatFloat32x4,
}

var typeNames = map[Types]string{
	UndefinedType:  "UndefinedType",
	Uint16:         "Uint16",
	Uint32:         "Uint32",
	Float32:        "Float32",
	Float32Vector2: "Float32Vector2",
	Float32Vector3: "Float32Vector3",
	Float32Vector4: "Float32Vector4",
}

// Bytes returns the number of bytes for one element of this type.
func (tp Types) Bytes() int {
	return TypeSizes[tp]
}

// VertexFormat returns the WebGPU VertexFormat for this type.
func (tp Types) VertexFormat() wgpu.VertexFormat {
	return TypeToVertexFormat[tp]
}

// IndexType returns the WebGPU IndexFormat for an Index variable of
// this type, which must be either Uint16 or Uint32.
func (tp Types) IndexType() wgpu.IndexFormat {
	if tp == Uint16 {
		return wgpu.IndexFormatUint16
	}
	return wgpu.IndexFormatUint32
}

func (tp Types) String() string {
	if nm, ok := typeNames[tp]; ok {
		return nm
	}
	return "Types(?)"
}
