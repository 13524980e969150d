package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	// Advance in pixels
	Advance int
}

// FontAtlas is the baked glyph bitmap plus per-glyph metrics. Pix is kept until Upload.
type FontAtlas struct {
	W, H       int
	Pix        []byte
	Characters map[rune]FontCharacter
}

// FontAtlasInfo contains the OpenGL texture and per-glyph metadata
type FontAtlasInfo struct {
	TextureID  uint32
	AtlasW     int
	AtlasH     int
	Characters map[rune]FontCharacter
}

const atlasWidth = 512

// BakeDefaultFont bakes the embedded Go Regular face
func BakeDefaultFont(fontPixels int) (*FontAtlas, error) {
	return BakeFont(goregular.TTF, fontPixels)
}

// BakeFont rasterizes the printable ASCII range of a TrueType font into a single-channel atlas.
// fontPixels is the target pixel size for glyphs.
func BakeFont(ttf []byte, fontPixels int) (*FontAtlas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	type glyph struct {
		r       rune
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}
	var glyphs []glyph
	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, glyph{r, dr, mask, maskp, advance})
	}
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("font has no printable ASCII glyphs")
	}

	// First pass: simple row packer to find the atlas height
	const padding = 1
	type slot struct{ x, y int }
	slots := make([]slot, len(glyphs))
	offsetX, offsetY, rowHeight := 0, 0, 0
	for i, g := range glyphs {
		gw, gh := g.dr.Dx(), g.dr.Dy()
		if offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		slots[i] = slot{offsetX, offsetY}
		offsetX += gw + padding
		rowHeight = max(rowHeight, gh)
	}
	atlasH := offsetY + rowHeight + padding

	// Second pass: render each glyph into the atlas and record metrics
	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasH))
	chars := make(map[rune]FontCharacter, len(glyphs))
	for i, g := range glyphs {
		gw, gh := g.dr.Dx(), g.dr.Dy()
		s := slots[i]
		if gw > 0 && gh > 0 && g.mask != nil {
			draw.Draw(img, image.Rect(s.x, s.y, s.x+gw, s.y+gh), g.mask, g.maskp, draw.Src)
		}
		chars[g.r] = FontCharacter{
			AtlasX:   float32(s.x),
			AtlasY:   float32(s.y),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  int(math.Round(float64(g.advance) / 64.0)),
		}
	}
	return &FontAtlas{W: atlasWidth, H: atlasH, Pix: img.Pix, Characters: chars}, nil
}

// Upload copies the atlas into a GL_RED texture
func (a *FontAtlas) Upload() *FontAtlasInfo {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	// Ensure tight byte alignment for single-channel (alpha) upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(a.W), int32(a.H), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return &FontAtlasInfo{TextureID: texture, AtlasW: a.W, AtlasH: a.H, Characters: a.Characters}
}

// Measure returns the width and tallest glyph height in pixels the text occupies at scale
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	return measure(a.Characters, text, scale)
}

func measure(chars map[rune]FontCharacter, text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		fc, ok := chars[r]
		if !ok {
			// fall back to space advance if glyph missing
			fc = chars[' ']
		}
		width += float32(fc.Advance) * scale
		maxH = max(maxH, fc.Height*scale)
	}
	return width, maxH
}

// FontRenderer renders ASCII text strings using a prebuilt atlas
type FontRenderer struct {
	atlas       *FontAtlasInfo
	shader      *Shader
	projection  mgl32.Mat4
	vao         uint32
	vbo         uint32
	maxCharsCap int
}

// NewFontRenderer creates the renderer and loads font.vert/font.frag from shaderDir
func NewFontRenderer(atlas *FontAtlasInfo, shaderDir string) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(filepath.Join(shaderDir, "font.vert"), filepath.Join(shaderDir, "font.frag"))
	if err != nil {
		return nil, fmt.Errorf("font shader: %w", err)
	}
	fr := &FontRenderer{
		atlas:       atlas,
		shader:      shader,
		maxCharsCap: 256,
		projection:  mgl32.Ortho(0, 1, 1, 0, 0, 1),
	}
	fr.initGL()
	return fr, nil
}

func (fr *FontRenderer) initGL() {
	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	// Allocate a dynamic buffer for up to maxCharsCap characters (6 verts per char, 4 floats per vert)
	capFloats := fr.maxCharsCap * 6 * 4
	gl.BufferData(gl.ARRAY_BUFFER, capFloats*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// SetViewport maps text coordinates to framebuffer pixels with a top-left origin
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1)
}

// Dispose releases the GL objects, the atlas texture included
func (fr *FontRenderer) Dispose() {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.atlas.TextureID != 0 {
		gl.DeleteTextures(1, &fr.atlas.TextureID)
	}
	fr.shader.Dispose()
}

func (fr *FontRenderer) begin(color mgl32.Vec3) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	fr.shader.SetMatrix4("projection", &fr.projection[0])
	fr.shader.SetInt("text", 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
}

func (fr *FontRenderer) end(verts []float32) {
	if len(verts) > 0 {
		// Orphan the buffer before the update to avoid stalls
		size := len(verts) * 4
		gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))
	}

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// Render draws text with its baseline starting at (x,y) in pixels
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec3) {
	fr.begin(color)
	fr.end(buildVertices(fr.atlas, text, x, y, scale, nil))
}

// RenderLines draws multiple lines of text in a single pass to minimize GL state changes.
// All lines share the same color and scale; each line is lineStep pixels below the previous.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	if len(lines) == 0 {
		return
	}
	fr.begin(color)
	var vertices []float32
	y := yStart
	for _, line := range lines {
		vertices = buildVertices(fr.atlas, line, x, y, scale, vertices)
		y += lineStep
	}
	fr.end(vertices)
}

// Measure returns the approximate width and height in pixels the text will occupy at the given scale
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	return measure(fr.atlas.Characters, text, scale)
}

// buildVertices appends two textured triangles per glyph to dst
func buildVertices(atlas *FontAtlasInfo, text string, x, y, scale float32, dst []float32) []float32 {
	aw, ah := float32(atlas.AtlasW), float32(atlas.AtlasH)
	for _, r := range text {
		fc, ok := atlas.Characters[r]
		if !ok {
			// Skip missing glyphs
			x += float32(atlas.Characters[' '].Advance) * scale
			continue
		}
		xPos := x + fc.BearingX*scale
		yPos := y - fc.BearingY*scale
		w := fc.Width * scale
		h := fc.Height * scale

		u0, v0 := fc.AtlasX/aw, fc.AtlasY/ah
		u1, v1 := u0+fc.Width/aw, v0+fc.Height/ah

		dst = append(dst,
			// triangle 1
			xPos, yPos+h, u0, v1,
			xPos, yPos, u0, v0,
			xPos+w, yPos, u1, v0,
			// triangle 2
			xPos, yPos+h, u0, v1,
			xPos+w, yPos, u1, v0,
			xPos+w, yPos+h, u1, v1,
		)
		x += float32(fc.Advance) * scale
	}
	return dst
}
