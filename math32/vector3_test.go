// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestVector3Ops(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 5, 6)

	assert.Equal(t, Vec3(5, 7, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, Vec3(-3, 6, -3), a.Cross(b))
}

func TestVector3Length(t *testing.T) {
	v := Vec3(3, 4, 0)
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, float32(25), v.LengthSquared())

	n := v.Normal()
	assert.InDelta(t, 1, n.Length(), 1e-6)
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
}

func TestVector3Layout(t *testing.T) {
	// vertex buffers rely on Vector3 packing to 3 float32 words
	assert.Equal(t, uintptr(12), unsafe.Sizeof(Vector3{}))
}
