package renderer

import (
	"lightstudio/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for overlay renderables
type RenderContext struct {
	State *scene.State
	DT    float64
	View  mgl32.Mat4
	Proj  mgl32.Mat4
}

// Renderable interface defines the lifecycle for features drawn after the scene
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

// Program is the lighting shader as seen by the renderer. Uniforms are addressed by handle;
// implementations resolve the names once when they are created.
type Program interface {
	Use()
	SetMat4(u Uniform, m mgl32.Mat4)
	SetMat3(u Uniform, m mgl32.Mat3)
	SetVec3(u Uniform, v mgl32.Vec3)
	SetFloat(u Uniform, v float32)
	SetInt(u Uniform, v int32)
	SetBool(u Uniform, v bool)
}

// Surface is the framebuffer the scene is drawn into
type Surface interface {
	Clear()
	Viewport(width, height int)
}
