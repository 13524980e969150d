package scene

import (
	"iter"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the capacity of the light registry and the size of the shader's light array
const MaxLights = 8

// Light is a single light source. Position is a direction when Directional is set.
type Light struct {
	Position    mgl32.Vec3
	Ambient     Color
	Diffuse     Color
	Specular    Color
	Directional bool
	Active      bool
}

// LightUpdate carries a partial update; nil fields are left untouched
type LightUpdate struct {
	Position    *mgl32.Vec3
	Ambient     *Color
	Diffuse     *Color
	Specular    *Color
	Directional *bool
	Active      *bool
}

// LightRegistry is an append-only, capacity-bounded list of lights.
// Indexes are stable once assigned.
type LightRegistry struct {
	lights [MaxLights]Light
	count  int

	// version increases on every mutation so the renderer can skip redundant uploads
	version uint64
}

// NewLightRegistry returns an empty registry
func NewLightRegistry() *LightRegistry {
	return &LightRegistry{}
}

// DefaultLight returns the light appended for the given registry slot.
// Slots are spread on a ring above the artefact.
func DefaultLight(index int) Light {
	angle := float32(index) * 2 * math32.Pi / MaxLights
	sin, cos := math32.Sincos(angle)
	return Light{
		Position: mgl32.Vec3{2 * cos, 2.5, 2 * sin},
		Ambient:  Color{0.2, 0.2, 0.2},
		Diffuse:  Color{0.8, 0.8, 0.8},
		Specular: Color{1, 1, 1},
		Active:   true,
	}
}

// Add appends a default light and returns its index.
// At capacity it does nothing and reports false.
func (r *LightRegistry) Add() (int, bool) {
	if r.count >= MaxLights {
		return -1, false
	}
	idx := r.count
	r.lights[idx] = DefaultLight(idx)
	r.count++
	r.version++
	return idx, true
}

// Set applies a partial update to the light at index. Out of range indexes are ignored.
func (r *LightRegistry) Set(index int, u LightUpdate) {
	if index < 0 || index >= r.count {
		return
	}
	l := &r.lights[index]
	if u.Position != nil {
		l.Position = *u.Position
	}
	if u.Ambient != nil {
		l.Ambient = *u.Ambient
	}
	if u.Diffuse != nil {
		l.Diffuse = *u.Diffuse
	}
	if u.Specular != nil {
		l.Specular = *u.Specular
	}
	if u.Directional != nil {
		l.Directional = *u.Directional
	}
	if u.Active != nil {
		l.Active = *u.Active
	}
	r.version++
}

// SetActive enables or disables the light at index
func (r *LightRegistry) SetActive(index int, active bool) {
	r.Set(index, LightUpdate{Active: &active})
}

// Get returns a copy of the light at index
func (r *LightRegistry) Get(index int) (Light, bool) {
	if index < 0 || index >= r.count {
		return Light{}, false
	}
	return r.lights[index], true
}

// Ref returns a pointer to the light at index for in-place editing by panel bindings.
// Callers must call Touch after mutating through it.
func (r *LightRegistry) Ref(index int) *Light {
	if index < 0 || index >= r.count {
		return nil
	}
	return &r.lights[index]
}

// Touch marks the registry as modified
func (r *LightRegistry) Touch() { r.version++ }

// Version changes whenever any light changes
func (r *LightRegistry) Version() uint64 { return r.version }

// Len returns the number of lights added so far
func (r *LightRegistry) Len() int { return r.count }

// Cap returns the registry capacity
func (r *LightRegistry) Cap() int { return MaxLights }

// Active yields the indexes of active lights in registry order
func (r *LightRegistry) Active() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < r.count; i++ {
			if !r.lights[i].Active {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

// All yields every added light with its index
func (r *LightRegistry) All() iter.Seq2[int, Light] {
	return func(yield func(int, Light) bool) {
		for i := 0; i < r.count; i++ {
			if !yield(i, r.lights[i]) {
				return
			}
		}
	}
}
