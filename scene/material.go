package scene

import (
	"fmt"

	"shader-demos/core"
)

// UniformKind identifies the GLSL type of a uniform value.
type UniformKind int

const (
	UniformFloat UniformKind = iota // float
	UniformColor                    // vec3 (RGB)
)

// Uniform is one named shader input slot. The struct is addressed by
// pointer so panel bindings and the render loop mutate the same slot the
// renderer reads on the next draw.
type Uniform struct {
	Kind  UniformKind
	Value float32
	Color core.Color
}

// Material is a vertex/fragment shader source pair plus its uniform values.
// Each material is owned by exactly one mesh face group; uniforms are never
// shared between materials.
type Material struct {
	Name        string
	VertexSrc   string
	FragmentSrc string
	Uniforms    map[string]*Uniform
}

func NewMaterial(name, vertexSrc, fragmentSrc string) *Material {
	return &Material{
		Name:        name,
		VertexSrc:   vertexSrc,
		FragmentSrc: fragmentSrc,
		Uniforms:    make(map[string]*Uniform),
	}
}

// DeclareFloat registers a scalar uniform with its initial value and returns
// the slot for live binding.
func (m *Material) DeclareFloat(name string, value float32) *Uniform {
	u := &Uniform{Kind: UniformFloat, Value: value}
	m.Uniforms[name] = u
	return u
}

// DeclareColor registers an RGB color uniform and returns the slot.
func (m *Material) DeclareColor(name string, c core.Color) *Uniform {
	u := &Uniform{Kind: UniformColor, Color: c}
	m.Uniforms[name] = u
	return u
}

func (m *Material) SetFloat(name string, value float32) {
	if u, ok := m.Uniforms[name]; ok && u.Kind == UniformFloat {
		u.Value = value
	}
}

func (m *Material) Float(name string) float32 {
	if u, ok := m.Uniforms[name]; ok {
		return u.Value
	}
	return 0
}

// FloatSlot returns the addressable value of a scalar uniform, or an error
// when the uniform does not exist or has the wrong kind.
func (m *Material) FloatSlot(name string) (*float32, error) {
	u, ok := m.Uniforms[name]
	if !ok {
		return nil, fmt.Errorf("material %q has no uniform %q", m.Name, name)
	}
	if u.Kind != UniformFloat {
		return nil, fmt.Errorf("uniform %q of material %q is not a float", name, m.Name)
	}
	return &u.Value, nil
}

// ColorSlot returns the addressable color of a color uniform.
func (m *Material) ColorSlot(name string) (*core.Color, error) {
	u, ok := m.Uniforms[name]
	if !ok {
		return nil, fmt.Errorf("material %q has no uniform %q", m.Name, name)
	}
	if u.Kind != UniformColor {
		return nil, fmt.Errorf("uniform %q of material %q is not a color", name, m.Name)
	}
	return &u.Color, nil
}
