package app

import (
	"log/slog"
	"testing"

	"lightstudio/internal/config"
	"lightstudio/internal/input"
	"lightstudio/internal/scene"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

type fakeActions struct {
	pressed map[input.Action]bool
	presses map[input.Action]int
}

func press(acts ...input.Action) *fakeActions {
	f := &fakeActions{pressed: map[input.Action]bool{}, presses: map[input.Action]int{}}
	for _, a := range acts {
		f.pressed[a] = true
		f.presses[a]++
	}
	return f
}

func (f *fakeActions) JustPressed(a input.Action) bool { return f.pressed[a] }
func (f *fakeActions) Presses(a input.Action) int      { return f.presses[a] }

var (
	quiet    = slog.New(slog.DiscardHandler)
	controls = config.ControlSettings{OrbitStep: 5, HeightStep: 0.25}
)

func TestArrowKeysMoveCamera(t *testing.T) {
	st := scene.NewState()
	y := st.Camera.Eye.Y()

	acts := press(input.ActionRaiseCamera)
	acts.presses[input.ActionRaiseCamera] = 3 // one press and two repeats
	applyControls(st, acts, controls, quiet)
	assert.InDelta(t, y+0.75, st.Camera.Eye.Y(), 1e-5)

	applyControls(st, press(input.ActionLowerCamera), controls, quiet)
	assert.InDelta(t, y+0.5, st.Camera.Eye.Y(), 1e-5)
}

func TestOrbitKeepsRadius(t *testing.T) {
	st := scene.NewState()
	radius := func() float32 {
		d := st.Camera.Eye.Sub(st.Camera.At)
		return math32.Hypot(d.X(), d.Z())
	}
	r0, y0 := radius(), st.Camera.Eye.Y()

	applyControls(st, press(input.ActionOrbitLeft), controls, quiet)
	left := st.Camera.Eye
	applyControls(st, press(input.ActionOrbitRight), controls, quiet)
	applyControls(st, press(input.ActionOrbitRight), controls, quiet)

	assert.InDelta(t, r0, radius(), 1e-4)
	assert.Equal(t, y0, st.Camera.Eye.Y())
	assert.NotEqual(t, left, st.Camera.Eye)
}

func TestToggleKeys(t *testing.T) {
	st := scene.NewState()
	anim := st.Options.Animation

	applyControls(st, press(input.ActionToggleWireframe, input.ActionToggleNormals, input.ActionToggleAnimation), controls, quiet)
	assert.True(t, st.Options.Wireframe)
	assert.True(t, st.Options.Normals)
	assert.Equal(t, !anim, st.Options.Animation)

	applyControls(st, press(input.ActionToggleWireframe), controls, quiet)
	assert.False(t, st.Options.Wireframe)
}

func TestAddLightKeyStopsAtCapacity(t *testing.T) {
	st := scene.NewState()
	for range 20 {
		applyControls(st, press(input.ActionAddLight), controls, quiet)
	}
	assert.Equal(t, scene.MaxLights, st.Lights.Len())
}

func TestSelectAndCopyKeys(t *testing.T) {
	st := scene.NewState()
	applyControls(st, press(input.ActionSelectPyramid), controls, quiet)
	assert.Equal(t, scene.ArtefactPyramid, st.Artefact)
	applyControls(st, press(input.ActionSelectTorus), controls, quiet)
	assert.Equal(t, scene.ArtefactTorus, st.Artefact)

	st.ArtefactMaterial.Specular = scene.Color{0.7, 0.7, 0.7}
	applyControls(st, press(input.ActionCopyMaterial), controls, quiet)
	assert.Equal(t, *st.ArtefactMaterial, *st.FloorMaterial)
}

func TestNoActionsLeaveStateAlone(t *testing.T) {
	st := scene.NewState()
	before := *st.Camera
	applyControls(st, press(), controls, quiet)
	assert.Equal(t, before, *st.Camera)
	assert.Equal(t, 1, st.Lights.Len())
}
