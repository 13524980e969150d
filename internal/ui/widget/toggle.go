package widget

import "github.com/go-gl/mathgl/mgl32"

type Toggle struct {
	BaseComponent
	Label     string
	IsOn      bool
	OnToggle  func(isOn bool)
	IsHovered bool
}

func NewToggle(label string, x, y, w, h float32, initial bool, onToggle func(isOn bool)) *Toggle {
	return &Toggle{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Label:         label,
		IsOn:          initial,
		OnToggle:      onToggle,
	}
}

func (t *Toggle) Render(p Painter, ptr Pointer) {
	t.IsHovered = t.Contains(ptr.X, ptr.Y)

	var bgColor mgl32.Vec3
	if t.IsOn {
		bgColor = mgl32.Vec3{0.2, 0.5, 0.2} // Green when enabled
	} else {
		bgColor = mgl32.Vec3{0.5, 0.2, 0.2} // Red when disabled
	}
	if t.IsHovered {
		bgColor = bgColor.Mul(1.2) // Brighten on hover
	}
	p.DrawFilledRect(t.X, t.Y, t.W, t.H, bgColor, 0.85)

	if t.Label != "" {
		scale, _ := fitText(p, t.Label, t.W-8, t.H*0.7)
		p.DrawText(t.Label, t.X+4, t.Y+t.H*0.8, scale, mgl32.Vec3{1, 1, 1})
	}
}

func (t *Toggle) HandleInput(ptr Pointer) bool {
	if ptr.JustPressed && t.Contains(ptr.X, ptr.Y) {
		t.IsOn = !t.IsOn
		if t.OnToggle != nil {
			t.OnToggle(t.IsOn)
		}
		return true
	}
	return false
}
