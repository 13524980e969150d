package widget

import "github.com/go-gl/mathgl/mgl32"

// Painter draws screen-space primitives in pixels with a top-left origin
type Painter interface {
	DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32)
	DrawText(text string, x, y, scale float32, color mgl32.Vec3)
	MeasureText(text string, scale float32) (float32, float32)
}

// Pointer is the mouse state sampled once per frame
type Pointer struct {
	X, Y        float32
	Down        bool // left button held
	JustPressed bool // left button went down this frame
}

type Component interface {
	Render(p Painter, ptr Pointer)
	HandleInput(ptr Pointer) bool
	SetPosition(x, y float32)
	SetSize(w, h float32)
	GetSize() (float32, float32)
}

type BaseComponent struct {
	X, Y, W, H float32
}

func (b *BaseComponent) SetPosition(x, y float32)    { b.X, b.Y = x, y }
func (b *BaseComponent) SetSize(w, h float32)        { b.W, b.H = w, h }
func (b *BaseComponent) GetSize() (float32, float32) { return b.W, b.H }

// Contains reports whether the point lies inside the component bounds
func (b *BaseComponent) Contains(x, y float32) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// fitText scales a label to at most maxH pixels high and maxW wide
func fitText(p Painter, text string, maxW, maxH float32) (scale, w float32) {
	_, rawH := p.MeasureText(text, 1.0)
	if rawH == 0 {
		rawH = 20
	}
	scale = maxH / rawH
	w, _ = p.MeasureText(text, scale)
	if w > maxW && w > 0 {
		scale *= maxW / w
		w = maxW
	}
	return scale, w
}
