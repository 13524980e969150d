package panel

import (
	"fmt"
	"log/slog"

	"lightstudio/internal/scene"
	"lightstudio/internal/ui/widget"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultWidth     = 300
	DefaultRowHeight = 22
	rowGap           = 3
	margin           = 8
)

// row is one laid out widget plus the control it reflects
type row struct {
	comp    widget.Component
	binding *Binding
	toggle  *Toggle
	choice  *Choice
	option  int
}

// Panel lays out the folders returned by Build as widgets in a column on the left edge of the
// window. Only the camera folder starts open.
type Panel struct {
	Visible   bool
	X, Y      float32
	Width     float32
	RowHeight float32

	state  *scene.State
	logger *slog.Logger

	folders []Folder
	open    map[string]bool
	rows    []row
	height  float32

	lightCount int
	dirty      bool
}

// New builds the panel for st
func New(st *scene.State, logger *slog.Logger) *Panel {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Panel{
		Visible:   true,
		X:         margin,
		Y:         margin,
		Width:     DefaultWidth,
		RowHeight: DefaultRowHeight,
		state:     st,
		logger:    logger,
		open:      map[string]bool{"camera": true},
	}
	p.rebuild()
	return p
}

// Folders returns the folders currently shown
func (p *Panel) Folders() []Folder { return p.folders }

// IsOpen reports whether a folder is expanded
func (p *Panel) IsOpen(name string) bool { return p.open[name] }

// SetOpen expands or collapses a folder
func (p *Panel) SetOpen(name string, open bool) {
	p.open[name] = open
	p.layout()
}

// ToggleVisible shows or hides the panel
func (p *Panel) ToggleVisible() { p.Visible = !p.Visible }

// Contains reports whether a point is over the visible panel
func (p *Panel) Contains(x, y float32) bool {
	return p.Visible && x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.height
}

// Height is the laid out height of the panel in pixels
func (p *Panel) Height() float32 { return p.height }

func (p *Panel) rebuild() {
	p.folders = Build(p.state, p.logger)
	p.lightCount = p.state.Lights.Len()
	p.layout()
}

func (p *Panel) layout() {
	p.rows = p.rows[:0]
	y := p.Y + margin
	x := p.X + margin
	w := p.Width - 2*margin
	h := p.RowHeight

	for _, f := range p.folders {
		label := "+ " + f.Name
		if p.open[f.Name] {
			label = "- " + f.Name
		}
		header := widget.NewButton(label, x, y, w, h, func() {
			p.open[f.Name] = !p.open[f.Name]
			p.dirty = true
		})
		header.NormalColor = mgl32.Vec3{0.18, 0.18, 0.22}
		header.HoverColor = mgl32.Vec3{0.26, 0.26, 0.32}
		p.rows = append(p.rows, row{comp: header})
		y += h + rowGap

		if !p.open[f.Name] {
			continue
		}
		for ci := range f.Choices {
			c := &f.Choices[ci]
			n := max(len(c.Options), 1)
			ow := (w - float32(n-1)*rowGap) / float32(n)
			for oi, name := range c.Options {
				b := widget.NewButton(name, x+float32(oi)*(ow+rowGap), y, ow, h, func() { c.Set(oi) })
				p.rows = append(p.rows, row{comp: b, choice: c, option: oi})
			}
			y += h + rowGap
		}
		for bi := range f.Bindings {
			b := &f.Bindings[bi]
			s := widget.NewSlider(x, y, w, h, b.Ratio(), b.Steps(), b.Label, func(r float32) {
				b.Apply(b.FromRatio(r))
			})
			p.rows = append(p.rows, row{comp: s, binding: b})
			y += h + rowGap
		}
		for ti := range f.Toggles {
			t := &f.Toggles[ti]
			tg := widget.NewToggle(t.Label, x, y, w, h, t.Get(), t.Set)
			p.rows = append(p.rows, row{comp: tg, toggle: t})
			y += h + rowGap
		}
		for _, a := range f.Actions {
			p.rows = append(p.rows, row{comp: widget.NewButton(a.Label, x, y, w, h, a.Do)})
			y += h + rowGap
		}
	}
	p.height = y - p.Y + margin - rowGap
	p.dirty = false
}

// Update routes the pointer to the widgets and reports whether the panel consumed it.
// Lights added elsewhere since the last call get their folders here.
func (p *Panel) Update(ptr widget.Pointer) bool {
	if p.state.Lights.Len() != p.lightCount {
		p.rebuild()
	}
	if !p.Visible {
		return false
	}

	consumed := false
	for _, r := range p.rows {
		if r.comp.HandleInput(ptr) {
			consumed = true
			break
		}
	}
	if p.state.Lights.Len() != p.lightCount {
		p.rebuild()
	} else if p.dirty {
		p.layout()
	}
	return consumed || p.Contains(ptr.X, ptr.Y)
}

// sync pulls current values into the widgets so edits made by the keyboard show up
func (p *Panel) sync() {
	for _, r := range p.rows {
		switch {
		case r.binding != nil:
			s := r.comp.(*widget.Slider)
			if !s.Dragging() {
				s.Value = r.binding.Ratio()
			}
			s.Text = fmt.Sprintf("%.2f", r.binding.Value())
		case r.toggle != nil:
			r.comp.(*widget.Toggle).IsOn = r.toggle.Get()
		case r.choice != nil:
			b := r.comp.(*widget.Button)
			if r.choice.Get() == r.option {
				b.NormalColor = mgl32.Vec3{0.25, 0.4, 0.6}
			} else {
				b.NormalColor = mgl32.Vec3{0.3, 0.3, 0.3}
			}
		}
	}
}

// Render draws the background and every widget
func (p *Panel) Render(painter widget.Painter, ptr widget.Pointer) {
	if !p.Visible {
		return
	}
	p.sync()
	painter.DrawFilledRect(p.X, p.Y, p.Width, p.height, mgl32.Vec3{0.08, 0.08, 0.1}, 0.75)
	for _, r := range p.rows {
		r.comp.Render(painter, ptr)
	}
}
