package renderer

import (
	"log/slog"

	"lightstudio/internal/graphics/mesh"
	"lightstudio/internal/graphics/transform"
	"lightstudio/internal/profiling"
	"lightstudio/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Phase is the renderer's position within a frame
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFrameBegin
	PhaseDrawFloor
	PhaseDrawArtefact
	PhaseDrawLights
	PhaseFrameEnd
)

var phaseNames = [...]string{"idle", "frameBegin", "drawFloor", "drawArtefact", "drawLights", "frameEnd"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

var (
	FloorOffset = mgl32.Vec3{0, -0.55, 0}
	FloorScale  = mgl32.Vec3{3, 0.1, 3}
	GizmoScale  = mgl32.Vec3{0.08, 0.08, 0.08}
)

// Renderer draws the floor, the artefact and the light gizmos every frame, then any overlays
type Renderer struct {
	program  Program
	surface  Surface
	meshes   *mesh.Library
	stack    *transform.Stack
	overlays []Renderable
	logger   *slog.Logger

	phase Phase

	// what the program currently holds, to skip redundant uploads
	uploadedLights  uint64
	lightsUploaded  bool
	uploadedNLights int

	// OnPhase, if set, is called on every phase transition
	OnPhase func(Phase)
}

// NewRenderer creates a renderer and initializes the meshes and overlays
func NewRenderer(program Program, surface Surface, meshes *mesh.Library, logger *slog.Logger, overlays ...Renderable) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Renderer{
		program:         program,
		surface:         surface,
		meshes:          meshes,
		stack:           transform.New(),
		overlays:        overlays,
		logger:          logger,
		uploadedNLights: -1,
	}

	if err := meshes.Init(); err != nil {
		return nil, err
	}
	for _, o := range overlays {
		if err := o.Init(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Phase returns the phase the renderer is in
func (r *Renderer) Phase() Phase { return r.phase }

// Stack exposes the transform stack owned by the renderer
func (r *Renderer) Stack() *transform.Stack { return r.stack }

func (r *Renderer) enter(p Phase) func() {
	r.phase = p
	if r.OnPhase != nil {
		r.OnPhase(p)
	}
	return profiling.Track("render." + p.String())
}

// Render executes one frame
func (r *Renderer) Render(s *scene.State, dt float64) {
	entryDepth := r.stack.Depth()
	mode := mesh.ModeTriangles
	if s.Options.Wireframe {
		mode = mesh.ModeLines
	}

	view, proj := r.beginFrame(s)
	r.drawFloor(s, mode)
	r.drawArtefact(s, mode)
	r.drawLights(s)
	r.endFrame(s, entryDepth)

	ctx := RenderContext{State: s, DT: dt, View: view, Proj: proj}
	for _, o := range r.overlays {
		o.Render(ctx)
	}
	r.phase = PhaseIdle
}

func (r *Renderer) beginFrame(s *scene.State) (mgl32.Mat4, mgl32.Mat4) {
	defer r.enter(PhaseFrameBegin)()

	r.surface.Clear()
	r.program.Use()

	proj := s.Camera.ProjectionMatrix()
	view := s.Camera.ViewMatrix()
	r.program.SetMat4(UProjection, proj)
	r.program.SetMat4(UView, view)
	r.program.SetBool(UShowNormals, s.Options.Normals)
	r.stack.Load(view)

	r.uploadLights(s.Lights)
	return view, proj
}

// uploadLights pushes every registered light when the registry changed since the last upload,
// and the light count when it differs from what the program holds
func (r *Renderer) uploadLights(lights *scene.LightRegistry) {
	if !r.lightsUploaded || r.uploadedLights != lights.Version() {
		for i, l := range lights.All() {
			r.program.SetVec3(LightUniform(i, LightPos), l.Position)
			r.program.SetVec3(LightUniform(i, LightIa), l.Ambient)
			r.program.SetVec3(LightUniform(i, LightId), l.Diffuse)
			r.program.SetVec3(LightUniform(i, LightIs), l.Specular)
			r.program.SetBool(LightUniform(i, LightIsDirectional), l.Directional)
			r.program.SetBool(LightUniform(i, LightIsActive), l.Active)
		}
		r.uploadedLights = lights.Version()
		r.lightsUploaded = true
	}
	if n := lights.Len(); n != r.uploadedNLights {
		r.program.SetInt(UNLights, int32(n))
		r.uploadedNLights = n
	}
}

func (r *Renderer) uploadMaterial(m *scene.Material) {
	r.program.SetVec3(UMaterialKa, m.Ambient)
	r.program.SetVec3(UMaterialKd, m.Diffuse)
	r.program.SetVec3(UMaterialKs, m.Specular)
	r.program.SetFloat(UMaterialShininess, m.Shininess)
}

func (r *Renderer) uploadModelView() {
	r.program.SetMat4(UModelView, r.stack.Current())
	r.program.SetMat3(UNormalMatrix, r.stack.NormalMatrix())
}

// withPush runs draw between a push and its matching pop
func (r *Renderer) withPush(draw func()) {
	r.stack.Push()
	defer func() {
		if err := r.stack.Pop(); err != nil {
			r.logger.Error("transform stack", "phase", r.phase.String(), "err", err)
		}
	}()
	draw()
}

func (r *Renderer) drawFloor(s *scene.State, mode mesh.Mode) {
	defer r.enter(PhaseDrawFloor)()

	r.withPush(func() {
		r.stack.MultTranslation(FloorOffset)
		r.stack.MultScale(FloorScale)
		r.program.SetBool(UUnlit, false)
		r.uploadMaterial(s.FloorMaterial)
		r.uploadModelView()
		r.meshes.Floor.Draw(mode)
	})
}

func (r *Renderer) drawArtefact(s *scene.State, mode mesh.Mode) {
	defer r.enter(PhaseDrawArtefact)()

	r.withPush(func() {
		r.uploadMaterial(s.ArtefactMaterial)
		r.uploadModelView()
		r.meshes.Get(s.Artefact).Draw(mode)
	})
}

// drawLights draws a wireframe sphere at each active positional light, in the light's diffuse color
func (r *Renderer) drawLights(s *scene.State) {
	defer r.enter(PhaseDrawLights)()

	r.program.SetBool(UUnlit, true)
	for i := range s.Lights.Active() {
		l, _ := s.Lights.Get(i)
		if l.Directional {
			continue
		}
		r.withPush(func() {
			r.stack.MultTranslation(l.Position)
			r.stack.MultScale(GizmoScale)
			r.program.SetVec3(UMaterialKd, l.Diffuse)
			r.uploadModelView()
			r.meshes.Gizmo.Draw(mesh.ModeLines)
		})
	}
	r.program.SetBool(UUnlit, false)
}

func (r *Renderer) endFrame(s *scene.State, entryDepth int) {
	defer r.enter(PhaseFrameEnd)()

	if d := r.stack.Depth(); d != entryDepth {
		r.logger.Error("transform stack unbalanced after frame", "depth", d, "want", entryDepth)
		r.stack.Reset()
	}
	s.Advance()
}

// SetViewport resizes the framebuffer, the camera aspect and every overlay
func (r *Renderer) SetViewport(s *scene.State, width, height int) {
	r.surface.Viewport(width, height)
	s.Camera.OnResize(width, height)
	for _, o := range r.overlays {
		o.SetViewport(width, height)
	}
}

// Dispose cleans up overlays in reverse order, then the meshes
func (r *Renderer) Dispose() {
	for i := len(r.overlays) - 1; i >= 0; i-- {
		r.overlays[i].Dispose()
	}
	r.meshes.Dispose()
}
