// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides float32 vector math for geometry fed to
// the GPU. The scalar functions are wrappers around chewxy/math32,
// which has optimized float32 implementations.
package math32

import (
	"github.com/chewxy/math32"
)

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Hypot returns Sqrt(p*p + q*q), avoiding unnecessary overflow and underflow.
func Hypot(p, q float32) float32 {
	return math32.Hypot(p, q)
}

// IsNaN reports whether f is a "not-a-number" value.
func IsNaN(f float32) bool {
	return math32.IsNaN(f)
}
