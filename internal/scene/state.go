package scene

import "fmt"

// Artefact selects which primitive is drawn in the middle of the floor
type Artefact int

const (
	ArtefactCube Artefact = iota
	ArtefactCylinder
	ArtefactPyramid
	ArtefactSphere
	ArtefactTorus
	ArtefactCount
)

var artefactNames = [ArtefactCount]string{"cube", "cylinder", "pyramid", "sphere", "torus"}

func (a Artefact) String() string {
	if a < 0 || a >= ArtefactCount {
		return fmt.Sprintf("Artefact(%d)", int(a))
	}
	return artefactNames[a]
}

// ParseArtefact maps a lowercase name back to its Artefact
func ParseArtefact(name string) (Artefact, error) {
	for i, n := range artefactNames {
		if n == name {
			return Artefact(i), nil
		}
	}
	return ArtefactCube, fmt.Errorf("unknown artefact %q", name)
}

// Options are the render mode flags editable from the panel and keyboard
type Options struct {
	Wireframe bool
	Normals   bool
	Animation bool
}

// State is the whole mutable scene. The renderer reads it every frame; panel bindings and
// input handlers mutate it in place on the same thread.
type State struct {
	Camera   *Camera
	Lights   *LightRegistry
	Artefact Artefact

	ArtefactMaterial *Material
	FloorMaterial    *Material

	Options Options

	// Time accumulates Speed per frame while animation is enabled. Nothing reads it yet.
	Time  float64
	Speed float64
}

// NewState returns the startup scene with a single light
func NewState() *State {
	s := &State{
		Camera:           NewCamera(),
		Lights:           NewLightRegistry(),
		Artefact:         ArtefactCube,
		ArtefactMaterial: NewArtefactMaterial(),
		FloorMaterial:    NewFloorMaterial(),
		Options:          Options{Animation: true},
		Speed:            1.0 / 60.0,
	}
	s.Lights.Add()
	return s
}

// SelectArtefact switches the drawn primitive; invalid values are ignored
func (s *State) SelectArtefact(a Artefact) {
	if a < 0 || a >= ArtefactCount {
		return
	}
	s.Artefact = a
}

// CopyMaterialToFloor makes the floor material a value copy of the artefact material
func (s *State) CopyMaterialToFloor() error {
	return s.FloorMaterial.CopyFrom(s.ArtefactMaterial)
}

// Advance moves simulation time forward by one frame when animation is on
func (s *State) Advance() {
	if s.Options.Animation {
		s.Time += s.Speed
	}
}
