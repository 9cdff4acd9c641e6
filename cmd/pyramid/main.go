package main

import (
	"fmt"
	stdmath "math"
	"os"

	"shader-demos/app"
	"shader-demos/core"
	"shader-demos/scene"
)

func main() {
	fmt.Println("Starting pyramid demo...")

	demo, err := newPyramidDemo()
	if err != nil {
		fmt.Printf("Failed to build scene: %v\n", err)
		os.Exit(1)
	}

	config := core.DefaultWindowConfig()
	config.Title = "Pyramid"

	camera := scene.NewOrbitCamera(
		demo.node.Position,
		4,
		float32(stdmath.Pi)/3,
		float32(config.Width)/float32(config.Height),
	)

	ctx, err := app.NewContext(config, demo.scene, camera)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer ctx.Destroy()

	for _, mat := range demo.materials {
		if err := ctx.Renderer.CompileMaterial(mat); err != nil {
			fmt.Printf("Shader compile failed: %v\n", err)
			os.Exit(1)
		}
	}

	clock := core.NewClock()
	loop := &app.Loop{}
	loop.Update = func(dt float32) {
		if ctx.Window.IsKeyPressed(core.KeyEscape) {
			loop.Stop()
			return
		}
		ctx.ApplyResize()

		demo.update()
		camera.Update(dt)
	}
	loop.Render = func() {
		ctx.Renderer.Clear(demo.scene.Background.Color)

		view := camera.ViewMatrix()
		proj := camera.ProjectionMatrix()
		for _, node := range demo.scene.MeshNodes() {
			mvp := proj.Mul4(view).Mul4(node.WorldMatrix())
			if err := ctx.Renderer.DrawMesh(node.Mesh, mvp); err != nil {
				fmt.Printf("Draw failed: %v\n", err)
				loop.Stop()
				return
			}
		}
	}

	loop.Run(ctx.Window, clock)
	fmt.Println("Pyramid demo stopped")
}
