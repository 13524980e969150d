package renderer

import (
	"testing"

	"lightstudio/internal/graphics/mesh"
	"lightstudio/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	kind    string // "set", "draw", "use", "clear"
	uniform Uniform
	name    string
	mode    mesh.Mode
	value   any
}

type recorder struct {
	events []event
}

func (r *recorder) add(e event) { r.events = append(r.events, e) }

type fakeProgram struct{ rec *recorder }

func (p fakeProgram) Use() { p.rec.add(event{kind: "use"}) }
func (p fakeProgram) set(u Uniform, v any) {
	p.rec.add(event{kind: "set", uniform: u, value: v})
}
func (p fakeProgram) SetMat4(u Uniform, m mgl32.Mat4) { p.set(u, m) }
func (p fakeProgram) SetMat3(u Uniform, m mgl32.Mat3) { p.set(u, m) }
func (p fakeProgram) SetVec3(u Uniform, v mgl32.Vec3) { p.set(u, v) }
func (p fakeProgram) SetFloat(u Uniform, v float32)   { p.set(u, v) }
func (p fakeProgram) SetInt(u Uniform, v int32)       { p.set(u, v) }
func (p fakeProgram) SetBool(u Uniform, v bool)       { p.set(u, v) }

type fakeSurface struct {
	rec  *recorder
	w, h int
}

func (s *fakeSurface) Clear()                     { s.rec.add(event{kind: "clear"}) }
func (s *fakeSurface) Viewport(width, height int) { s.w, s.h = width, height }

type fakeMesh struct {
	name   string
	rec    *recorder
	inited int
}

func (m *fakeMesh) Init() error         { m.inited++; return nil }
func (m *fakeMesh) Draw(mode mesh.Mode) { m.rec.add(event{kind: "draw", name: m.name, mode: mode}) }
func (m *fakeMesh) Dispose()            {}

type fakeOverlay struct {
	inited, rendered int
	w, h             int
}

func (o *fakeOverlay) Init() error                   { o.inited++; return nil }
func (o *fakeOverlay) Render(ctx RenderContext)      { o.rendered++ }
func (o *fakeOverlay) Dispose()                      {}
func (o *fakeOverlay) SetViewport(width, height int) { o.w, o.h = width, height }

func newTestRenderer(t *testing.T) (*Renderer, *recorder, *mesh.Library) {
	t.Helper()
	rec := &recorder{}
	lib := &mesh.Library{}
	names := []string{"cube", "cylinder", "pyramid", "sphere", "torus"}
	for i, n := range names {
		lib.Artefacts[i] = &fakeMesh{name: n, rec: rec}
	}
	lib.Floor = lib.Artefacts[scene.ArtefactCube]
	lib.Gizmo = lib.Artefacts[scene.ArtefactSphere]

	r, err := NewRenderer(fakeProgram{rec}, &fakeSurface{rec: rec}, lib, nil)
	require.NoError(t, err)
	return r, rec, lib
}

func (r *recorder) draws() []event {
	var out []event
	for _, e := range r.events {
		if e.kind == "draw" {
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) countSets(u Uniform) int {
	n := 0
	for _, e := range r.events {
		if e.kind == "set" && e.uniform == u {
			n++
		}
	}
	return n
}

func TestPhasesAreSequential(t *testing.T) {
	r, _, _ := newTestRenderer(t)
	var phases []Phase
	r.OnPhase = func(p Phase) { phases = append(phases, p) }

	r.Render(scene.NewState(), 0)
	assert.Equal(t, []Phase{PhaseFrameBegin, PhaseDrawFloor, PhaseDrawArtefact, PhaseDrawLights, PhaseFrameEnd}, phases)
	assert.Equal(t, PhaseIdle, r.Phase())
}

func TestStackDepthBalancedWithTwoLights(t *testing.T) {
	r, rec, _ := newTestRenderer(t)
	s := scene.NewState()
	s.Lights.Add()
	require.Equal(t, 2, s.Lights.Len())

	before := r.Stack().Depth()
	var maxDepth int
	r.OnPhase = func(Phase) { maxDepth = max(maxDepth, r.Stack().Depth()) }
	r.Render(s, 0)
	assert.Equal(t, before, r.Stack().Depth())
	assert.Equal(t, before, maxDepth, "each phase starts at the entry depth")

	draws := rec.draws()
	require.Len(t, draws, 4)
	assert.Equal(t, "cube", draws[0].name)
	assert.Equal(t, "cube", draws[1].name)
	assert.Equal(t, "sphere", draws[2].name)
	assert.Equal(t, mesh.ModeLines, draws[2].mode)
	assert.Equal(t, mesh.ModeLines, draws[3].mode)
}

func TestLightsUploadedBeforeFirstDraw(t *testing.T) {
	r, rec, _ := newTestRenderer(t)
	s := scene.NewState()
	s.Lights.Add()
	s.Lights.Add()
	r.Render(s, 0)

	firstDraw := -1
	uploaded := map[Uniform]int{}
	for i, e := range rec.events {
		if e.kind == "draw" {
			firstDraw = i
			break
		}
		if e.kind == "set" {
			uploaded[e.uniform] = i
		}
	}
	require.NotEqual(t, -1, firstDraw)
	for i := 0; i < s.Lights.Len(); i++ {
		for f := LightField(0); f < lightFieldCount; f++ {
			_, ok := uploaded[LightUniform(i, f)]
			assert.True(t, ok, "light %d field %d not uploaded before draw", i, f)
		}
	}
	_, ok := uploaded[UNLights]
	assert.True(t, ok)
	_, ok = uploaded[LightUniform(3, LightPos)]
	assert.False(t, ok, "only registered slots are uploaded")
}

func TestLightUploadsOnlyOnChange(t *testing.T) {
	r, rec, _ := newTestRenderer(t)
	s := scene.NewState()

	r.Render(s, 0)
	r.Render(s, 0)
	assert.Equal(t, 1, rec.countSets(LightUniform(0, LightPos)))
	assert.Equal(t, 1, rec.countSets(UNLights))

	s.Lights.SetActive(0, false)
	r.Render(s, 0)
	assert.Equal(t, 2, rec.countSets(LightUniform(0, LightPos)))
	assert.Equal(t, 1, rec.countSets(UNLights))

	s.Lights.Add()
	r.Render(s, 0)
	assert.Equal(t, 2, rec.countSets(UNLights))
}

func TestDirectionalAndInactiveLightsHaveNoGizmo(t *testing.T) {
	r, rec, _ := newTestRenderer(t)
	s := scene.NewState()
	s.Lights.Add()
	s.Lights.Add()
	dir := true
	s.Lights.Set(1, scene.LightUpdate{Directional: &dir})
	s.Lights.SetActive(2, false)

	r.Render(s, 0)
	assert.Len(t, rec.draws(), 3)
}

func TestWireframeAndArtefactSelection(t *testing.T) {
	r, rec, _ := newTestRenderer(t)
	s := scene.NewState()
	s.Options.Wireframe = true
	s.SelectArtefact(scene.ArtefactTorus)

	r.Render(s, 0)
	draws := rec.draws()
	require.GreaterOrEqual(t, len(draws), 2)
	assert.Equal(t, mesh.ModeLines, draws[0].mode)
	assert.Equal(t, "torus", draws[1].name)
	assert.Equal(t, mesh.ModeLines, draws[1].mode)
}

func TestRenderAdvancesTime(t *testing.T) {
	r, _, _ := newTestRenderer(t)
	s := scene.NewState()
	r.Render(s, 0)
	r.Render(s, 0)
	assert.InDelta(t, 2*s.Speed, s.Time, 1e-9)
}

func TestSharedMeshesInitOnce(t *testing.T) {
	_, _, lib := newTestRenderer(t)
	assert.Equal(t, 1, lib.Artefacts[scene.ArtefactCube].(*fakeMesh).inited)
	assert.Equal(t, 1, lib.Artefacts[scene.ArtefactSphere].(*fakeMesh).inited)
}

func TestOverlaysAndViewport(t *testing.T) {
	rec := &recorder{}
	lib := &mesh.Library{}
	for i := range lib.Artefacts {
		lib.Artefacts[i] = &fakeMesh{rec: rec}
	}
	lib.Floor, lib.Gizmo = lib.Artefacts[0], lib.Artefacts[0]
	ov := &fakeOverlay{}
	surf := &fakeSurface{rec: rec}
	r, err := NewRenderer(fakeProgram{rec}, surf, lib, nil, ov)
	require.NoError(t, err)
	assert.Equal(t, 1, ov.inited)

	s := scene.NewState()
	r.Render(s, 0)
	assert.Equal(t, 1, ov.rendered)

	r.SetViewport(s, 1200, 600)
	assert.Equal(t, 1200, surf.w)
	assert.Equal(t, 600, ov.h)
	assert.InDelta(t, 2, s.Camera.Aspect, 1e-6)
}

func TestUniformNames(t *testing.T) {
	assert.Equal(t, "mProjection", UProjection.Name())
	assert.Equal(t, "uMaterial.shininess", UMaterialShininess.Name())
	assert.Equal(t, "uLights[0].pos", LightUniform(0, LightPos).Name())
	assert.Equal(t, "uLights[7].isActive", LightUniform(scene.MaxLights-1, LightIsActive).Name())
	assert.Equal(t, UniformCount-1, LightUniform(scene.MaxLights-1, LightIsActive))
	assert.Equal(t, "", UniformCount.Name())
}
