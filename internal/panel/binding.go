package panel

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Binding exposes one numeric scene parameter as a slider
type Binding struct {
	Folder   string
	Label    string
	Min, Max float32
	Step     float32 // 0 disables snapping
	ReadOnly bool

	Get func() float32
	Set func(float32)
}

// Snap rounds v to the nearest Step above Min and clamps it to [Min, Max]
func (b Binding) Snap(v float32) float32 {
	if b.Step > 0 {
		v = b.Min + math32.Round((v-b.Min)/b.Step)*b.Step
	}
	return mgl32.Clamp(v, b.Min, b.Max)
}

// Apply snaps v and hands it to Set. Read-only bindings ignore the call and report the current value.
func (b Binding) Apply(v float32) float32 {
	if b.ReadOnly || b.Set == nil {
		return b.Value()
	}
	v = b.Snap(v)
	b.Set(v)
	return v
}

// Value returns the bound parameter, 0 when there is no getter
func (b Binding) Value() float32 {
	if b.Get == nil {
		return 0
	}
	return b.Get()
}

// Ratio maps the current value onto [0,1] within the binding range
func (b Binding) Ratio() float32 {
	if b.Max <= b.Min {
		return 0
	}
	return mgl32.Clamp((b.Value()-b.Min)/(b.Max-b.Min), 0, 1)
}

// FromRatio maps a slider position back to a value in the binding range
func (b Binding) FromRatio(r float32) float32 {
	return b.Min + mgl32.Clamp(r, 0, 1)*(b.Max-b.Min)
}

// Steps returns the number of snap positions, or 0 when the range is continuous or too fine to tick
func (b Binding) Steps() int {
	if b.Step <= 0 || b.Max <= b.Min {
		return 0
	}
	n := int(math32.Round((b.Max-b.Min)/b.Step)) + 1
	if n > 101 {
		return 0
	}
	return n
}

// Toggle exposes a boolean scene parameter
type Toggle struct {
	Folder string
	Label  string
	Get    func() bool
	Set    func(bool)
}

// Choice selects one of a fixed list of options
type Choice struct {
	Folder  string
	Label   string
	Options []string
	Get     func() int
	Set     func(int)
}

// Action is a one-shot command
type Action struct {
	Folder string
	Label  string
	Do     func()
}

// Folder groups the controls shown under one collapsible header
type Folder struct {
	Name     string
	Choices  []Choice
	Bindings []Binding
	Toggles  []Toggle
	Actions  []Action
}
