package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"shader-demos/core"
	"shader-demos/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// program is a linked shader pair with its uniform locations resolved once
// at compile time.
type program struct {
	id       uint32
	mvpLoc   int32
	uniforms map[string]int32
}

// Renderer is the OpenGL rendering backend. Meshes and material programs
// are uploaded lazily on first draw and cached by pointer.
type Renderer struct {
	gpuMeshes map[*scene.Mesh]*GPUMesh
	programs  map[*scene.Material]*program
	skybox    *Skybox

	viewportW int32
	viewportH int32
}

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return &Renderer{
		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
		programs:  make(map[*scene.Material]*program),
	}, nil
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the framebuffer to the given color.
func (r *Renderer) Clear(c core.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// CompileMaterial compiles and caches the material's program ahead of the
// first draw, so shader errors surface during setup rather than mid-frame.
func (r *Renderer) CompileMaterial(mat *scene.Material) error {
	_, err := r.ensureProgram(mat)
	return err
}

// EnableSkybox compiles the cube-map sky shader and uploads the cube
// geometry. Call once after NewRenderer.
func (r *Renderer) EnableSkybox() error {
	if r.skybox != nil {
		r.skybox.Destroy()
	}
	sb, err := NewSkybox()
	if err != nil {
		return err
	}
	r.skybox = sb
	return nil
}

// DrawSkybox renders the cube-map background. The translation column is
// stripped from view so the sky appears infinitely far away; draw before
// scene geometry. No-op when the skybox or cube map is not ready.
func (r *Renderer) DrawSkybox(cm *scene.CubeMap, view, proj mgl32.Mat4) {
	if r.skybox == nil || cm == nil || !cm.Uploaded() {
		return
	}
	skyView := view
	skyView.SetCol(3, mgl32.Vec4{0, 0, 0, 1})
	r.skybox.Draw(cm.GLID, proj.Mul4(skyView))
}

// DrawMesh draws every face group of a mesh with its bound material.
// mvp is the combined model-view-projection matrix.
func (r *Renderer) DrawMesh(mesh *scene.Mesh, mvp mgl32.Mat4) error {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return nil
	}

	gl.BindVertexArray(gpu.VAO)
	for i, group := range mesh.Groups {
		mat := mesh.Materials[i]
		prog, err := r.ensureProgram(mat)
		if err != nil {
			return fmt.Errorf("material %q: %w", mat.Name, err)
		}

		gl.UseProgram(prog.id)
		gl.UniformMatrix4fv(prog.mvpLoc, 1, false, &mvp[0])
		applyUniforms(prog, mat)

		gl.DrawElements(gl.TRIANGLES, int32(group.Count), gl.UNSIGNED_INT,
			gl.PtrOffset(group.Offset*4))
	}
	gl.BindVertexArray(0)
	return nil
}

// applyUniforms writes the material's uniform slots to the active program.
// Uniforms absent from the shader source resolve to location -1 and the
// writes are silently ignored by GL.
func applyUniforms(prog *program, mat *scene.Material) {
	for name, u := range mat.Uniforms {
		loc, ok := prog.uniforms[name]
		if !ok {
			continue
		}
		switch u.Kind {
		case scene.UniformFloat:
			gl.Uniform1f(loc, u.Value)
		case scene.UniformColor:
			rgb := u.Color.Vec3()
			gl.Uniform3fv(loc, 1, &rgb[0])
		}
	}
}

// ReleaseMesh frees GPU buffers for the given mesh.
func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		delete(r.gpuMeshes, mesh)
		mesh.GPUData = nil
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	for mat, prog := range r.programs {
		gl.DeleteProgram(prog.id)
		delete(r.programs, mat)
	}
	if r.skybox != nil {
		r.skybox.Destroy()
	}
}

// ensureProgram compiles and links the material's shaders if not already
// done, resolving the MVP and declared uniform locations.
func (r *Renderer) ensureProgram(mat *scene.Material) (*program, error) {
	if prog, ok := r.programs[mat]; ok {
		return prog, nil
	}

	id, err := newProgram(mat.VertexSrc, mat.FragmentSrc)
	if err != nil {
		return nil, err
	}

	prog := &program{
		id:       id,
		mvpLoc:   gl.GetUniformLocation(id, gl.Str("uMVP\x00")),
		uniforms: make(map[string]int32, len(mat.Uniforms)),
	}
	for name := range mat.Uniforms {
		prog.uniforms[name] = gl.GetUniformLocation(id, gl.Str(name+"\x00"))
	}

	r.programs[mat] = prog
	return prog, nil
}

// ensureUploaded uploads vertex/index data if not already done.
func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{IndexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	mesh.GPUData = gpu
	return gpu
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
