package widget

import "github.com/go-gl/mathgl/mgl32"

type Button struct {
	BaseComponent
	Text      string
	OnClick   func()
	IsHovered bool

	NormalColor mgl32.Vec3
	HoverColor  mgl32.Vec3
	TextColor   mgl32.Vec3
}

func NewButton(text string, x, y, w, h float32, onClick func()) *Button {
	return &Button{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Text:          text,
		OnClick:       onClick,
		NormalColor:   mgl32.Vec3{0.3, 0.3, 0.3},
		HoverColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		TextColor:     mgl32.Vec3{1, 1, 1},
	}
}

func (b *Button) Render(p Painter, ptr Pointer) {
	b.IsHovered = b.Contains(ptr.X, ptr.Y)

	color := b.NormalColor
	if b.IsHovered {
		color = b.HoverColor
	}
	p.DrawFilledRect(b.X, b.Y, b.W, b.H, color, 1.0)

	// Text gets ~60% of the height and at most 90% of the width, centered
	targetH := b.H * 0.6
	textScale, textW := fitText(p, b.Text, b.W*0.9, targetH)
	_, textH := p.MeasureText(b.Text, textScale)
	textX := b.X + (b.W-textW)/2
	baseline := b.Y + (b.H-textH)/2 + textH*0.85
	p.DrawText(b.Text, textX, baseline, textScale, b.TextColor)
}

func (b *Button) HandleInput(ptr Pointer) bool {
	if ptr.JustPressed && b.Contains(ptr.X, ptr.Y) {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}
