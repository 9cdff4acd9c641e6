// Package app ties the window, renderer, scene and camera together and
// drives the frame loop.
package app

import (
	"fmt"

	"shader-demos/core"
	"shader-demos/internal/opengl"
	"shader-demos/scene"
)

// Context holds the live objects of one running demo.
type Context struct {
	Window   *core.Window
	Renderer *opengl.Renderer
	Scene    *scene.Scene
	Camera   *scene.OrbitCamera
}

// NewContext creates the window and renderer from the config and wires in
// the given scene and camera.
func NewContext(config core.WindowConfig, sc *scene.Scene, cam *scene.OrbitCamera) (*Context, error) {
	window, err := core.NewWindow(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := opengl.NewRenderer()
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	cam.SetAspect(float32(config.Width), float32(config.Height))
	vw, vh := core.ScaledViewport(config.Width, config.Height, window.ContentScale())
	renderer.SetViewport(vw, vh)

	return &Context{
		Window:   window,
		Renderer: renderer,
		Scene:    sc,
		Camera:   cam,
	}, nil
}

// ApplyResize consumes a pending window resize, updating the camera aspect
// and the viewport. The content scale is capped so oversized framebuffers
// on high-DPI displays do not balloon the fill cost.
func (c *Context) ApplyResize() {
	width, height, ok := c.Window.TakeResize()
	if !ok {
		return
	}
	c.Camera.SetAspect(float32(width), float32(height))
	vw, vh := core.ScaledViewport(width, height, c.Window.ContentScale())
	c.Renderer.SetViewport(vw, vh)
}

// Destroy releases the renderer and window.
func (c *Context) Destroy() {
	c.Renderer.Destroy()
	c.Window.Destroy()
}

// Loop drives per-frame updates. Run executes the real windowed loop;
// Advance runs a fixed number of ticks without a window, so demo logic can
// be exercised deterministically.
type Loop struct {
	Update  func(dt float32)
	Render  func()
	stopped bool
}

// Stop makes the current Run or Advance call return after the active tick.
func (l *Loop) Stop() {
	l.stopped = true
}

// Run polls events, updates and renders until the window closes or Stop is
// called. Must run on the main thread.
func (l *Loop) Run(window *core.Window, clock *core.Clock) {
	l.stopped = false
	last := clock.Elapsed()
	for !window.ShouldClose() && !l.stopped {
		window.PollEvents()

		now := clock.Elapsed()
		dt := now - last
		last = now

		if l.Update != nil {
			l.Update(dt)
		}
		if l.Render != nil {
			l.Render()
		}
		window.SwapBuffers()
	}
}

// Advance runs exactly n update ticks of the given timestep, or fewer when
// Stop is called mid-run. Render is not invoked.
func (l *Loop) Advance(n int, dt float32) int {
	l.stopped = false
	for i := 0; i < n; i++ {
		if l.stopped {
			return i
		}
		if l.Update != nil {
			l.Update(dt)
		}
	}
	return n
}
