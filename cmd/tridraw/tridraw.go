// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tridraw opens a window and draws a single indexed triangle
// over an opaque blue background, every frame, until the window
// is closed.
package main

import (
	_ "embed"
	"image"
	"image/color"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogfx/tridraw/gpu"
	"github.com/gogfx/tridraw/math32"
)

//go:generate glslangValidator -V -o shaders/vs.spv shaders/shader.vert
//go:generate glslangValidator -V -o shaders/fs.spv shaders/shader.frag

//go:embed shaders/vs.spv
var vertexSPV []byte

//go:embed shaders/fs.spv
var fragmentSPV []byte

// triangleVertex is the static mesh: three vertices, counter-clockwise.
var triangleVertex = []math32.Vector3{
	math32.Vec3(0, 0.5, 0),
	math32.Vec3(-0.5, -0.5, 0),
	math32.Vec3(0.5, -0.5, 0),
}

// triangleIndex indexes the vertices; its length is the draw count.
var triangleIndex = []uint32{0, 1, 2}

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("tridraw failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	sp, terminate, pollEvents, size, err := gpu.GLFWCreateWindow(image.Point{1024, 768}, "tridraw")
	if err != nil {
		return err
	}
	defer terminate()

	gp, err := gpu.NewGPU("tridraw", sp)
	if err != nil {
		return err
	}
	sf := gpu.NewSurface(gp, sp, size)
	sy := gpu.NewGraphicsSystem(gp, "tridraw", sf)
	sy.SetClearColor(color.RGBA{B: 255, A: 255})
	destroy := func() {
		sy.Release()
		sf.Release()
		gp.Release()
	}
	defer destroy()

	pl := sy.AddGraphicsPipeline("triangle")

	vsh := pl.AddShader("vert")
	if err := vsh.OpenSPIRV(vertexSPV); err != nil {
		return err
	}
	pl.AddEntry(vsh, gpu.VertexShader, "main")

	fsh := pl.AddShader("frag")
	if err := fsh.OpenSPIRV(fragmentSPV); err != nil {
		return err
	}
	pl.AddEntry(fsh, gpu.FragmentShader, "main")

	vgp := sy.Vars().AddVertexGroup()
	posv := vgp.Add("Pos", gpu.Float32Vector3, gpu.Vertex)
	idxv := vgp.Add("Index", gpu.Uint32, gpu.Index)

	if err := sy.Config(); err != nil {
		return err
	}
	if err := gpu.SetValueFrom(posv.Value, triangleVertex); err != nil {
		return err
	}
	if err := gpu.SetValueFrom(idxv.Value, triangleIndex); err != nil {
		return err
	}

	err = gpu.RenderLoop(pollEvents, sy.RenderFrame, gpu.DefaultFrameInterval)
	sy.WaitDone()
	return err
}
