package ui

import (
	"fmt"
	"path/filepath"

	"lightstudio/internal/graphics"
	"lightstudio/internal/graphics/renderer"
	"lightstudio/internal/panel"
	"lightstudio/internal/ui/widget"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// FontPixels is the size glyphs are baked at; DrawText scales relative to it
const FontPixels = 32

// UI draws screen-space rectangles and text in framebuffer pixels with a top-left origin
type UI struct {
	shaderDir string

	shader *graphics.Shader
	font   *graphics.FontRenderer
	vao    uint32
	vbo    uint32

	width, height float32
}

// NewUI creates a UI that loads ui.vert/ui.frag and font.vert/font.frag from shaderDir
func NewUI(shaderDir string) *UI {
	return &UI{shaderDir: shaderDir, width: 1, height: 1}
}

// Init compiles the shaders, bakes the font atlas and sets up the quad buffer
func (u *UI) Init() error {
	var err error
	u.shader, err = graphics.NewShader(filepath.Join(u.shaderDir, "ui.vert"), filepath.Join(u.shaderDir, "ui.frag"))
	if err != nil {
		return fmt.Errorf("ui shader: %w", err)
	}

	atlas, err := graphics.BakeDefaultFont(FontPixels)
	if err != nil {
		return fmt.Errorf("font atlas: %w", err)
	}
	u.font, err = graphics.NewFontRenderer(atlas.Upload(), u.shaderDir)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// Render draws nothing by itself; overlays paint through the UI
func (u *UI) Render(ctx renderer.RenderContext) {}

// SetViewport updates the pixel to NDC mapping
func (u *UI) SetViewport(width, height int) {
	u.width, u.height = float32(max(width, 1)), float32(max(height, 1))
	if u.font != nil {
		u.font.SetViewport(width, height)
	}
}

// Dispose cleans up OpenGL resources
func (u *UI) Dispose() {
	if u.vao != 0 {
		gl.DeleteVertexArrays(1, &u.vao)
	}
	if u.vbo != 0 {
		gl.DeleteBuffers(1, &u.vbo)
	}
	if u.font != nil {
		u.font.Dispose()
	}
	if u.shader != nil {
		u.shader.Dispose()
	}
}

// DrawFilledRect draws a screen-space rectangle (pixels, top-left origin) with RGBA color.
func (u *UI) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	verts := rectNDC(x, y, w, h, u.width, u.height)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.shader.Use()
	u.shader.SetVector4("uColor", color.X(), color.Y(), color.Z(), alpha)

	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// DrawText draws text with its baseline at y; scale 1 is FontPixels high
func (u *UI) DrawText(text string, x, y, scale float32, color mgl32.Vec3) {
	u.font.Render(text, x, y, scale, color)
}

// DrawLines draws a block of text lines lineStep pixels apart
func (u *UI) DrawLines(lines []string, x, y, lineStep, scale float32, color mgl32.Vec3) {
	u.font.RenderLines(lines, x, y, lineStep, scale, color)
}

// MeasureText returns the pixel size of text at scale
func (u *UI) MeasureText(text string, scale float32) (float32, float32) {
	return u.font.Measure(text, scale)
}

// rectNDC converts a pixel rectangle into two triangles in normalized device coordinates
func rectNDC(x, y, w, h, width, height float32) [12]float32 {
	x0 := (x/width)*2 - 1
	y0 := 1 - (y/height)*2
	x1 := ((x+w)/width)*2 - 1
	y1 := 1 - ((y+h)/height)*2
	return [12]float32{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y0,
		x1, y1,
		x0, y1,
	}
}

// PanelOverlay draws the parameter panel after the scene
type PanelOverlay struct {
	ui      *UI
	panel   *panel.Panel
	pointer func() widget.Pointer
}

// NewPanelOverlay draws p through u, reading the pointer with the given sampler each frame
func NewPanelOverlay(u *UI, p *panel.Panel, pointer func() widget.Pointer) *PanelOverlay {
	return &PanelOverlay{ui: u, panel: p, pointer: pointer}
}

func (o *PanelOverlay) Init() error                   { return nil }
func (o *PanelOverlay) Dispose()                      {}
func (o *PanelOverlay) SetViewport(width, height int) {}

func (o *PanelOverlay) Render(ctx renderer.RenderContext) {
	o.panel.Render(o.ui, o.pointer())
}

var (
	_ widget.Painter      = (*UI)(nil)
	_ renderer.Renderable = (*UI)(nil)
	_ renderer.Renderable = (*PanelOverlay)(nil)
)
