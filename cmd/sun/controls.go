package main

import (
	"fmt"

	"shader-demos/core"
	"shader-demos/panel"
	"shader-demos/scene"
)

const (
	orbitSpeed = 0.005
	zoomSpeed  = 0.3
)

// controls wires the debug panel and camera input. Panel edits write
// straight into the material's uniform slots; the next draw reads them.
type controls struct {
	panel  *panel.Panel
	window *core.Window
	camera *scene.OrbitCamera

	lastMouseX float64
	lastMouseY float64
	dragging   bool

	scrollDelta float32

	nextWasDown bool
	prevWasDown bool
	lessWasDown bool
	moreWasDown bool
}

func newControls(window *core.Window, camera *scene.OrbitCamera, mat *scene.Material) (*controls, error) {
	p := panel.New("sun")

	for _, def := range []struct {
		name     string
		min, max float32
		step     float32
	}{
		{"uWaveSpeed", 0, 5, 0.01},
		{"uSmallWaveFrequency", 0, 30, 0.1},
		{"uSmallWaveSpeed", 0, 10, 0.01},
		{"uWaveHeight", 0, 1, 0.01},
		{"uColorMultiplier", 0, 5, 0.01},
	} {
		slot, err := mat.FloatSlot(def.name)
		if err != nil {
			return nil, err
		}
		p.AddFloat(def.name, slot, def.min, def.max, def.step)
	}

	for _, name := range []string{"uSurfaceColor", "uDepthColor"} {
		c, err := mat.ColorSlot(name)
		if err != nil {
			return nil, err
		}
		p.AddColor(name, &c.R, &c.G, &c.B, 0.01)
	}

	c := &controls{panel: p, window: window, camera: camera}
	window.SetScrollCallback(func(xoff, yoff float64) {
		c.scrollDelta += float32(yoff)
	})
	return c, nil
}

// update polls keyboard and mouse once per tick. Selection keys are
// debounced so one press moves one entry; adjustment keys repeat.
func (c *controls) update() {
	shift := c.window.IsKeyPressed(core.KeyLeftShift) || c.window.IsKeyPressed(core.KeyRightShift)

	nextDown := c.window.IsKeyPressed(core.KeyDown) ||
		(c.window.IsKeyPressed(core.KeyTab) && !shift)
	if nextDown && !c.nextWasDown {
		c.panel.Next()
		c.echo()
	}
	c.nextWasDown = nextDown

	prevDown := c.window.IsKeyPressed(core.KeyUp) ||
		(c.window.IsKeyPressed(core.KeyTab) && shift)
	if prevDown && !c.prevWasDown {
		c.panel.Prev()
		c.echo()
	}
	c.prevWasDown = prevDown

	steps := 1
	if shift {
		steps = 10
	}

	lessDown := c.window.IsKeyPressed(core.KeyLeft)
	if lessDown && !c.lessWasDown {
		c.panel.Adjust(-steps)
		c.echo()
	}
	c.lessWasDown = lessDown

	moreDown := c.window.IsKeyPressed(core.KeyRight)
	if moreDown && !c.moreWasDown {
		c.panel.Adjust(steps)
		c.echo()
	}
	c.moreWasDown = moreDown

	c.updateOrbit()
}

// updateOrbit feeds mouse drag and accumulated scroll into the orbit
// camera's target values; damping lands them over following ticks.
func (c *controls) updateOrbit() {
	if c.window.IsMouseButtonPressed(0) {
		x, y := c.window.GetCursorPos()
		if c.dragging {
			c.camera.Orbit(
				float32(x-c.lastMouseX)*orbitSpeed,
				float32(y-c.lastMouseY)*orbitSpeed,
			)
		}
		c.lastMouseX = x
		c.lastMouseY = y
		c.dragging = true
	} else {
		c.dragging = false
	}

	if c.scrollDelta != 0 {
		c.camera.Zoom(-c.scrollDelta * zoomSpeed)
		c.scrollDelta = 0
	}
}

// echo mirrors the selected panel entry to stdout and the window title.
func (c *controls) echo() {
	line := c.panel.Describe()
	fmt.Printf("[Panel] %s\n", line)
	c.window.SetTitle(line)
}
