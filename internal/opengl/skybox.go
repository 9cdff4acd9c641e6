package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Skybox renders a cube-mapped sky using an inverted unit cube. The cube
// vertex shader uses the xyww trick (gl_Position.z = gl_Position.w) so
// every fragment lands at NDC depth 1.0, always behind scene geometry.
type Skybox struct {
	vao  uint32
	vbo  uint32
	prog uint32

	vpLoc  int32
	texLoc int32
}

// skyVertSrc transforms cube vertices with a view matrix that has its
// translation stripped, then forces depth = 1.0 via the xyww trick.
const skyVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;

uniform mat4 skyVP;

out vec3 fragDir;

void main() {
    fragDir = inPosition;
    vec4 pos = skyVP * vec4(inPosition, 1.0);
    gl_Position = pos.xyww;
}
` + "\x00"

const skyFragSrc = `
#version 410 core
in vec3 fragDir;
out vec4 outColor;

uniform samplerCube skyTex;

void main() {
    outColor = texture(skyTex, fragDir);
}
` + "\x00"

// 36 positions (xyz) for a unit cube. Face culling is disabled in the
// default GL state so the inside faces are visible.
var skyboxVerts = []float32{
	// -Z face
	-1, -1, -1, 1, 1, -1, 1, -1, -1,
	1, 1, -1, -1, -1, -1, -1, 1, -1,
	// +Z face
	-1, -1, 1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, -1, 1,
	// -X face
	-1, 1, 1, -1, 1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, 1, -1, 1, 1,
	// +X face
	1, 1, 1, 1, -1, -1, 1, 1, -1,
	1, -1, -1, 1, 1, 1, 1, -1, 1,
	// -Y face
	-1, -1, -1, 1, -1, -1, 1, -1, 1,
	1, -1, 1, -1, -1, 1, -1, -1, -1,
	// +Y face
	-1, 1, -1, 1, 1, 1, 1, 1, -1,
	1, 1, 1, -1, 1, -1, -1, 1, 1,
}

// NewSkybox compiles the cube-map sky shader and uploads the cube geometry.
func NewSkybox() (*Skybox, error) {
	prog, err := newProgram(skyVertSrc, skyFragSrc)
	if err != nil {
		return nil, fmt.Errorf("skybox shader: %w", err)
	}

	sb := &Skybox{
		prog:   prog,
		vpLoc:  gl.GetUniformLocation(prog, gl.Str("skyVP\x00")),
		texLoc: gl.GetUniformLocation(prog, gl.Str("skyTex\x00")),
	}

	gl.GenVertexArrays(1, &sb.vao)
	gl.GenBuffers(1, &sb.vbo)
	gl.BindVertexArray(sb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, sb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyboxVerts)*4, gl.Ptr(skyboxVerts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 12, gl.PtrOffset(0))
	gl.BindVertexArray(0)

	gl.UseProgram(prog)
	gl.Uniform1i(sb.texLoc, 0)

	return sb, nil
}

// Draw renders the sky from the cube-map texture. skyVP must be the
// combined proj × (view-without-translation) matrix; the caller strips
// the translation column.
func (sb *Skybox) Draw(cubeMapID uint32, skyVP mgl32.Mat4) {
	// Depth LEQUAL so depth=1.0 fragments pass against the cleared depth
	// value. Depth mask off so the sky never writes depth.
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	gl.UseProgram(sb.prog)
	gl.UniformMatrix4fv(sb.vpLoc, 1, false, &skyVP[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, cubeMapID)

	gl.BindVertexArray(sb.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

// Destroy frees all GPU resources owned by this skybox.
func (sb *Skybox) Destroy() {
	gl.DeleteVertexArrays(1, &sb.vao)
	gl.DeleteBuffers(1, &sb.vbo)
	gl.DeleteProgram(sb.prog)
}
