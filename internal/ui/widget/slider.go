package widget

import "github.com/go-gl/mathgl/mgl32"

// Slider is a horizontal track whose Value runs from 0.0 to 1.0. Steps > 1 snaps the value to
// that many evenly spaced positions and draws tick marks.
type Slider struct {
	BaseComponent
	Value    float32
	Steps    int
	Label    string
	Text     string // value readout drawn at the right end of the track
	OnChange func(val float32)

	dragging bool
}

func NewSlider(x, y, w, h float32, initialVal float32, steps int, label string, onChange func(val float32)) *Slider {
	return &Slider{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Value:         initialVal,
		Steps:         steps,
		Label:         label,
		OnChange:      onChange,
	}
}

// Dragging reports whether the slider currently owns the pointer
func (s *Slider) Dragging() bool { return s.dragging }

// HandleInput starts a drag on press inside the track and follows the pointer until release
func (s *Slider) HandleInput(ptr Pointer) bool {
	switch {
	case s.dragging && !ptr.Down:
		s.dragging = false
		return false
	case !s.dragging && ptr.JustPressed && s.Contains(ptr.X, ptr.Y):
		s.dragging = true
	case !s.dragging:
		return false
	}

	v := s.valueAt(ptr.X)
	if v != s.Value {
		s.Value = v
		if s.OnChange != nil {
			s.OnChange(v)
		}
	}
	return true
}

func (s *Slider) valueAt(x float32) float32 {
	if s.W <= 0 {
		return s.Value
	}
	v := mgl32.Clamp((x-s.X)/s.W, 0, 1)
	if s.Steps > 1 {
		denom := float32(s.Steps - 1)
		v = float32(int(v*denom+0.5)) / denom
	}
	return v
}

func (s *Slider) Render(p Painter, ptr Pointer) {
	p.DrawFilledRect(s.X, s.Y, s.W, s.H, mgl32.Vec3{0.3, 0.3, 0.3}, 0.8)

	// downsample to ~10 ticks to reduce clutter
	if s.Steps > 1 {
		tickHeight := s.H * 0.6
		tickY := s.Y + (s.H-tickHeight)*0.5
		tickWidth := float32(2)
		spacing := max(s.Steps/10, 1)
		for i := 0; i < s.Steps; i++ {
			if i != 0 && i != s.Steps-1 && i%spacing != 0 {
				continue
			}
			ratio := float32(i) / float32(s.Steps-1)
			tx := s.X + ratio*s.W - tickWidth*0.5
			p.DrawFilledRect(tx, tickY, tickWidth, tickHeight, mgl32.Vec3{0.9, 0.9, 0.9}, 0.18)
		}
	}

	thumbWidth := min(float32(12), s.W)
	thumbColor := mgl32.Vec3{0.6, 0.6, 0.6}
	if s.dragging || s.Contains(ptr.X, ptr.Y) {
		thumbColor = mgl32.Vec3{0.75, 0.75, 0.75}
	}
	p.DrawFilledRect(s.X+(s.W-thumbWidth)*s.Value, s.Y, thumbWidth, s.H, thumbColor, 0.9)

	textH := s.H * 0.7
	baseline := s.Y + s.H*0.8
	if s.Label != "" {
		scale, _ := fitText(p, s.Label, s.W*0.6, textH)
		p.DrawText(s.Label, s.X+4, baseline, scale, mgl32.Vec3{1, 1, 1})
	}
	if s.Text != "" {
		scale, w := fitText(p, s.Text, s.W*0.35, textH)
		p.DrawText(s.Text, s.X+s.W-w-4, baseline, scale, mgl32.Vec3{0.9, 0.9, 0.6})
	}
}
