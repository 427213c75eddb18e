// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the pixel size and WebGPU format of a
// render target, such as the Surface framebuffer.
type TextureFormat struct {
	// Size of the target in pixels.
	Size image.Point

	// Format is the texture pixel format.
	Format wgpu.TextureFormat

	// Samples is the multisample count; 1 = no multisampling.
	Samples int
}

// NewTextureFormat returns a new TextureFormat with the given size,
// format, and a sample count of 1.
func NewTextureFormat(format wgpu.TextureFormat, size image.Point) *TextureFormat {
	return &TextureFormat{Size: size, Format: format, Samples: 1}
}

// String returns a human-readable description of the format.
func (tf *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %v  Samples: %d", tf.Size, tf.Format, tf.Samples)
}

// Size32 returns the size as uint32 width, height values.
func (tf *TextureFormat) Size32() (width, height uint32) {
	return uint32(tf.Size.X), uint32(tf.Size.Y)
}
