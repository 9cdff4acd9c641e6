package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	resizePending bool
	resizeWidth   int
	resizeHeight  int
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     960,
		Height:    640,
		Title:     "Shader Demo",
		Resizable: true,
		VSync:     true,
	}
}

// NewWindow creates a GLFW window with an OpenGL 4.1 core context and makes
// the context current on the calling goroutine.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()

	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		window.resizePending = true
		window.resizeWidth = width
		window.resizeHeight = height
	})

	return window, nil
}

// TakeResize returns the most recent pending resize dimensions and clears the
// pending flag. Every size change is applied; there is no debouncing.
func (w *Window) TakeResize() (width, height int, ok bool) {
	if !w.resizePending {
		return 0, 0, false
	}
	w.resizePending = false
	return w.resizeWidth, w.resizeHeight, true
}

// ContentScale returns the window's device pixel scale (1.0 on standard
// displays, 2.0 on most high-DPI displays).
func (w *Window) ContentScale() float32 {
	sx, _ := w.Handle.GetContentScale()
	return sx
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) IsMouseButtonPressed(button int) bool {
	return w.Handle.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

// ScrollCallback is the type for scroll event handlers
type ScrollCallback func(xoff, yoff float64)

func (w *Window) SetScrollCallback(cb ScrollCallback) {
	w.Handle.SetScrollCallback(func(win *glfw.Window, xoff, yoff float64) {
		cb(xoff, yoff)
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const (
	KeyEscape     = int(glfw.KeyEscape)
	KeyTab        = int(glfw.KeyTab)
	KeyLeft       = int(glfw.KeyLeft)
	KeyRight      = int(glfw.KeyRight)
	KeyUp         = int(glfw.KeyUp)
	KeyDown       = int(glfw.KeyDown)
	KeyLeftShift  = int(glfw.KeyLeftShift)
	KeyRightShift = int(glfw.KeyRightShift)
)
