package mesh

import (
	"fmt"

	"lightstudio/internal/geometry"
	"lightstudio/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mode selects how a provider's geometry is rasterised
type Mode int

const (
	ModeTriangles Mode = iota
	ModeLines
)

// Provider uploads one primitive's geometry once and draws it with the currently bound
// program and uniforms
type Provider interface {
	Init() error
	Draw(mode Mode)
	Dispose()
}

// Mesh is a Provider backed by a VAO with separate element buffers for both modes
type Mesh struct {
	name string
	geom *geometry.Geometry

	vao       uint32
	vbo       uint32
	triEBO    uint32
	lineEBO   uint32
	triCount  int32
	lineCount int32
}

// New wraps generated geometry; GL resources are created in Init
func New(name string, g *geometry.Geometry) *Mesh {
	return &Mesh{name: name, geom: g}
}

// Init uploads the vertex and index buffers
func (m *Mesh) Init() error {
	if m.geom == nil || m.geom.VertexCount() == 0 {
		return fmt.Errorf("mesh %s: empty geometry", m.name)
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.geom.Vertices)*4, gl.Ptr(m.geom.Vertices), gl.STATIC_DRAW)

	stride := int32(geometry.Stride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	m.triEBO = uploadIndices(m.geom.Triangles)
	m.lineEBO = uploadIndices(m.geom.Lines)
	m.triCount = int32(len(m.geom.Triangles))
	m.lineCount = int32(len(m.geom.Lines))

	gl.BindVertexArray(0)
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("mesh %s: upload failed with GL error 0x%x", m.name, code)
	}
	return nil
}

func uploadIndices(idx []uint32) uint32 {
	var ebo uint32
	if len(idx) == 0 {
		return 0
	}
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx)*4, gl.Ptr(idx), gl.STATIC_DRAW)
	return ebo
}

// Draw issues the draw call for the requested mode
func (m *Mesh) Draw(mode Mode) {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	switch mode {
	case ModeLines:
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.lineEBO)
		gl.DrawElementsWithOffset(gl.LINES, m.lineCount, gl.UNSIGNED_INT, 0)
	default:
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.triEBO)
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.triCount, gl.UNSIGNED_INT, 0)
	}
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (m *Mesh) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	for _, b := range []*uint32{&m.vbo, &m.triEBO, &m.lineEBO} {
		if *b != 0 {
			gl.DeleteBuffers(1, b)
		}
	}
}

// Library holds one provider per artefact plus the sphere used for light gizmos
type Library struct {
	Artefacts [scene.ArtefactCount]Provider
	Gizmo     Provider
	Floor     Provider
}

// NewLibrary builds the default set of GL meshes. Nothing is uploaded until Init.
func NewLibrary() *Library {
	sphere := New("sphere", geometry.Sphere(24, 48))
	cube := New("cube", geometry.Cube())
	return &Library{
		Artefacts: [scene.ArtefactCount]Provider{
			scene.ArtefactCube:     cube,
			scene.ArtefactCylinder: New("cylinder", geometry.Cylinder(48)),
			scene.ArtefactPyramid:  New("pyramid", geometry.Pyramid()),
			scene.ArtefactSphere:   sphere,
			scene.ArtefactTorus:    New("torus", geometry.Torus(0.35, 0.15, 48, 24)),
		},
		Gizmo: sphere,
		Floor: cube,
	}
}

// Get returns the provider for an artefact, falling back to the cube
func (l *Library) Get(a scene.Artefact) Provider {
	if a < 0 || a >= scene.ArtefactCount || l.Artefacts[a] == nil {
		return l.Artefacts[scene.ArtefactCube]
	}
	return l.Artefacts[a]
}

// Init uploads every distinct provider once
func (l *Library) Init() error {
	for _, p := range l.distinct() {
		if err := p.Init(); err != nil {
			return err
		}
	}
	return nil
}

// Dispose releases every distinct provider
func (l *Library) Dispose() {
	for _, p := range l.distinct() {
		p.Dispose()
	}
}

func (l *Library) distinct() []Provider {
	seen := make(map[Provider]bool)
	var out []Provider
	for _, p := range append(l.Artefacts[:], l.Gizmo, l.Floor) {
		if p == nil || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
