package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GLSurface is the default framebuffer of the current GL context
type GLSurface struct {
	ClearColor mgl32.Vec4
}

// NewGLSurface configures depth testing and back-face culling on the current context
func NewGLSurface(clear mgl32.Vec4) *GLSurface {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	return &GLSurface{ClearColor: clear}
}

func (s *GLSurface) Clear() {
	c := s.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (s *GLSurface) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
