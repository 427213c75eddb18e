// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestTypeBytes(t *testing.T) {
	assert.Equal(t, 0, UndefinedType.Bytes())
	assert.Equal(t, 2, Uint16.Bytes())
	assert.Equal(t, 4, Uint32.Bytes())
	assert.Equal(t, 4, Float32.Bytes())
	assert.Equal(t, 8, Float32Vector2.Bytes())
	assert.Equal(t, 12, Float32Vector3.Bytes())
	assert.Equal(t, 16, Float32Vector4.Bytes())
}

func TestTypeVertexFormat(t *testing.T) {
	assert.Equal(t, wgpu.VertexFormatFloat32x3, Float32Vector3.VertexFormat())
	assert.Equal(t, wgpu.VertexFormatFloat32x4, Float32Vector4.VertexFormat())
	assert.Equal(t, wgpu.VertexFormatUint32, Uint32.VertexFormat())
	assert.Equal(t, wgpu.VertexFormatUndefined, UndefinedType.VertexFormat())
}

func TestTypeIndexType(t *testing.T) {
	assert.Equal(t, wgpu.IndexFormatUint16, Uint16.IndexType())
	assert.Equal(t, wgpu.IndexFormatUint32, Uint32.IndexType())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Float32Vector3", Float32Vector3.String())
	assert.Equal(t, "Types(?)", Types(99).String())
}
