// Package shading holds the GLSL sources for the demos together with CPU
// reference evaluators for every displacement and color formula. The GPU
// shaders and the Go evaluators are kept side by side so the math can be
// verified without a GL context.
package shading

import (
	"strings"

	"github.com/chewxy/math32"
)

// SunVertexSrc displaces the sphere surface along its normal with two
// layered sine waves driven by the time uniform.
const SunVertexSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uMVP;
uniform float uTime;
uniform float uWaveSpeed;
uniform float uSmallWaveFrequency;
uniform float uSmallWaveSpeed;
uniform float uWaveHeight;

out vec2 vUV;

void main() {
    float d = uWaveHeight * (sin(aPos.x * 10.0 + uTime * uWaveSpeed) * 0.05
            + sin(aPos.y * uSmallWaveFrequency + uTime * uSmallWaveSpeed) * 0.03);
    vec3 pos = aPos + aNormal * d;
    vUV = aUV;
    gl_Position = uMVP * vec4(pos, 1.0);
}
` + "\x00"

// SunFragmentSrc blends between the depth and surface colors along the
// sphere's latitude and scales the result by the brightness multiplier.
const SunFragmentSrc = `#version 410 core
in vec2 vUV;

uniform vec3 uDepthColor;
uniform vec3 uSurfaceColor;
uniform float uColorMultiplier;

out vec4 FragColor;

void main() {
    vec3 color = mix(uDepthColor, uSurfaceColor, vUV.y) * uColorMultiplier;
    FragColor = vec4(color, 1.0);
}
` + "\x00"

// FaceDef declares one pyramid face pattern as a pair of GLSL expressions
// spliced into the shared face templates. Displacement may reference aPos,
// aUV and uTime; Color may reference vUV and uTime.
type FaceDef struct {
	Name         string
	Displacement string
	Color        string
}

const faceVertexTemplate = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uMVP;
uniform float uTime;

out vec2 vUV;

void main() {
    vec3 pos = aPos;
    pos.z += %DISPLACEMENT%;
    vUV = aUV;
    gl_Position = uMVP * vec4(pos, 1.0);
}
`

const faceFragmentTemplate = `#version 410 core
in vec2 vUV;

uniform float uTime;

out vec4 FragColor;

void main() {
    FragColor = vec4(%COLOR%, 1.0);
}
`

// VertexSrc renders the face's vertex shader from the shared template.
func (f FaceDef) VertexSrc() string {
	d := f.Displacement
	if d == "" {
		d = "0.0"
	}
	return strings.Replace(faceVertexTemplate, "%DISPLACEMENT%", d, 1) + "\x00"
}

// FragmentSrc renders the face's fragment shader from the shared template.
func (f FaceDef) FragmentSrc() string {
	return strings.Replace(faceFragmentTemplate, "%COLOR%", f.Color, 1) + "\x00"
}

// PyramidFaces lists the four face patterns in draw order: animated wave,
// checkerboard, radial gradient and time-animated ripple.
var PyramidFaces = [4]FaceDef{
	{
		Name:         "wave",
		Displacement: "0.2 * sin(aPos.x * 5.0 + uTime) + 0.2 * sin(aPos.y * 5.0 + uTime)",
		Color:        "vec3(vUV.x, vUV.y, 0.5)",
	},
	{
		Name:  "checkerboard",
		Color: "mod(floor(vUV.x * 10.0) + floor(vUV.y * 10.0), 2.0) < 1.0 ? vec3(1.0) : vec3(0.0)",
	},
	{
		Name:  "radial",
		Color: "vec3(1.0 - distance(vUV, vec2(0.5)), distance(vUV, vec2(0.5)), 0.0)",
	},
	{
		Name:         "ripple",
		Displacement: "0.2 * sin(10.0 * distance(aUV, vec2(0.5)) - uTime)",
		Color:        "vec3(0.5 + vUV.x, 0.5 - vUV.y, 0.5)",
	},
}

// SunDisplacement is the CPU form of the SunVertexSrc displacement term.
func SunDisplacement(x, y, t, waveSpeed, smallWaveFrequency, smallWaveSpeed, waveHeight float32) float32 {
	return waveHeight * (math32.Sin(x*10+t*waveSpeed)*0.05 +
		math32.Sin(y*smallWaveFrequency+t*smallWaveSpeed)*0.03)
}

// SunColor is the CPU form of the SunFragmentSrc blend.
func SunColor(v, multiplier float32, depth, surface [3]float32) [3]float32 {
	var out [3]float32
	for i := range out {
		out[i] = (depth[i] + (surface[i]-depth[i])*v) * multiplier
	}
	return out
}

// WaveDisplacement is the CPU form of the wave face displacement.
func WaveDisplacement(x, y, t float32) float32 {
	return 0.2*math32.Sin(x*5+t) + 0.2*math32.Sin(y*5+t)
}

// CheckerParity reports whether the checkerboard cell at (u, v) is white.
func CheckerParity(u, v float32) bool {
	return math32.Mod(math32.Floor(u*10)+math32.Floor(v*10), 2) < 1
}

// RadialDistance is the UV distance from the face center.
func RadialDistance(u, v float32) float32 {
	du := u - 0.5
	dv := v - 0.5
	return math32.Sqrt(du*du + dv*dv)
}

// RadialColor is the CPU form of the radial face color.
func RadialColor(u, v float32) [3]float32 {
	d := RadialDistance(u, v)
	return [3]float32{1 - d, d, 0}
}

// RippleDisplacement is the CPU form of the ripple face displacement.
func RippleDisplacement(u, v, t float32) float32 {
	return 0.2 * math32.Sin(10*RadialDistance(u, v)-t)
}

// RippleColor is the CPU form of the ripple face color.
func RippleColor(u, v float32) [3]float32 {
	return [3]float32{0.5 + u, 0.5 - v, 0.5}
}
