package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
)

// Color is an RGB triple with channels in the 0..1 range.
// Values outside the range are passed through to the shader unchanged.
type Color = mgl32.Vec3

// Channel selects one of the material's color terms
type Channel int

const (
	ChannelAmbient Channel = iota
	ChannelDiffuse
	ChannelSpecular
)

func (c Channel) String() string {
	switch c {
	case ChannelAmbient:
		return "Ka"
	case ChannelDiffuse:
		return "Kd"
	case ChannelSpecular:
		return "Ks"
	}
	return "unknown"
}

// Material holds Phong reflection coefficients
type Material struct {
	Ambient   Color
	Diffuse   Color
	Specular  Color
	Shininess float32
}

// NewArtefactMaterial returns the default material for the selectable primitive
func NewArtefactMaterial() *Material {
	return &Material{
		Ambient:   Color{0.2, 0.1, 0.1},
		Diffuse:   Color{0.8, 0.3, 0.2},
		Specular:  Color{1, 1, 1},
		Shininess: 50,
	}
}

// NewFloorMaterial returns the default material for the floor slab
func NewFloorMaterial() *Material {
	return &Material{
		Ambient:   Color{0.1, 0.1, 0.1},
		Diffuse:   Color{0.5, 0.5, 0.5},
		Specular:  Color{0.2, 0.2, 0.2},
		Shininess: 10,
	}
}

// Set replaces one color channel
func (m *Material) Set(ch Channel, c Color) {
	switch ch {
	case ChannelAmbient:
		m.Ambient = c
	case ChannelDiffuse:
		m.Diffuse = c
	case ChannelSpecular:
		m.Specular = c
	}
}

// Get returns one color channel
func (m *Material) Get(ch Channel) Color {
	switch ch {
	case ChannelAmbient:
		return m.Ambient
	case ChannelDiffuse:
		return m.Diffuse
	case ChannelSpecular:
		return m.Specular
	}
	return Color{}
}

// ChannelRef returns a pointer to a color channel for in-place editing
func (m *Material) ChannelRef(ch Channel) *Color {
	switch ch {
	case ChannelAmbient:
		return &m.Ambient
	case ChannelDiffuse:
		return &m.Diffuse
	case ChannelSpecular:
		return &m.Specular
	}
	return nil
}

// SetShininess sets the specular exponent
func (m *Material) SetShininess(v float32) {
	m.Shininess = v
}

// CopyFrom copies every field of other into m by value
func (m *Material) CopyFrom(other *Material) error {
	return copier.Copy(m, other)
}
