package main

import (
	"flag"
	"fmt"
	stdmath "math"
	"os"
	"strings"

	"shader-demos/app"
	"shader-demos/core"
	"shader-demos/scene"
)

func main() {
	sky := flag.String("sky", "", "comma-separated paths of six cube-map faces (+x,-x,+y,-y,+z,-z); empty for a solid background")
	flag.Parse()

	var skyPaths [6]string
	if *sky != "" {
		parts := strings.Split(*sky, ",")
		if len(parts) != 6 {
			fmt.Printf("expected 6 cube-map faces, got %d\n", len(parts))
			os.Exit(1)
		}
		copy(skyPaths[:], parts)
	}

	fmt.Println("Starting sun demo...")

	demo, err := newSunDemo(skyPaths)
	if err != nil {
		fmt.Printf("Failed to build scene: %v\n", err)
		os.Exit(1)
	}

	config := core.DefaultWindowConfig()
	config.Title = "Sun"

	camera := scene.NewOrbitCamera(
		demo.node.Position,
		3,
		float32(stdmath.Pi)/3,
		float32(config.Width)/float32(config.Height),
	)

	ctx, err := app.NewContext(config, demo.scene, camera)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer ctx.Destroy()

	// Compile up front so shader errors kill the process at startup, not
	// on the first frame.
	if err := ctx.Renderer.CompileMaterial(demo.material); err != nil {
		fmt.Printf("Shader compile failed: %v\n", err)
		os.Exit(1)
	}
	if demo.cubeMap != nil {
		if err := ctx.Renderer.EnableSkybox(); err != nil {
			fmt.Printf("Skybox init failed (continuing with solid background): %v\n", err)
			demo.cubeMap = nil
			demo.scene.Background.Kind = scene.BackgroundSolid
			demo.scene.Background.CubeMap = nil
		}
	}

	ctrl, err := newControls(ctx.Window, camera, demo.material)
	if err != nil {
		fmt.Printf("Failed to wire controls: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("[Panel] Tab/arrows select, Left/Right adjust (Shift = x10), drag to orbit, scroll to zoom")

	clock := core.NewClock()
	loop := &app.Loop{}
	loop.Update = func(dt float32) {
		if ctx.Window.IsKeyPressed(core.KeyEscape) {
			loop.Stop()
			return
		}
		ctx.ApplyResize()

		demo.update(clock.Elapsed())
		ctrl.update()
		camera.Update(dt)
		demo.syncCubeMap()
	}
	loop.Render = func() {
		ctx.Renderer.Clear(demo.scene.Background.Color)

		view := camera.ViewMatrix()
		proj := camera.ProjectionMatrix()
		if demo.scene.Background.Kind == scene.BackgroundCubeMap {
			ctx.Renderer.DrawSkybox(demo.scene.Background.CubeMap, view, proj)
		}

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
	fmt.Println("Sun demo stopped")
}
