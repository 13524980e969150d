package app

import (
	"log/slog"

	"lightstudio/internal/config"
	"lightstudio/internal/input"
	"lightstudio/internal/scene"
)

// Actions is the per-frame view of the input manager
type Actions interface {
	JustPressed(input.Action) bool
	Presses(input.Action) int
}

var artefactKeys = [scene.ArtefactCount]input.Action{
	input.ActionSelectCube,
	input.ActionSelectCylinder,
	input.ActionSelectPyramid,
	input.ActionSelectSphere,
	input.ActionSelectTorus,
}

// applyControls applies this frame's keyboard actions to the scene. Camera keys act once per
// press or key repeat; the rest act on the initial press only.
func applyControls(st *scene.State, acts Actions, c config.ControlSettings, logger *slog.Logger) {
	for range acts.Presses(input.ActionRaiseCamera) {
		st.Camera.AdjustHeight(c.HeightStep)
	}
	for range acts.Presses(input.ActionLowerCamera) {
		st.Camera.AdjustHeight(-c.HeightStep)
	}
	for range acts.Presses(input.ActionOrbitLeft) {
		st.Camera.Orbit(-c.OrbitStep)
	}
	for range acts.Presses(input.ActionOrbitRight) {
		st.Camera.Orbit(c.OrbitStep)
	}

	if acts.JustPressed(input.ActionToggleWireframe) {
		st.Options.Wireframe = !st.Options.Wireframe
	}
	if acts.JustPressed(input.ActionToggleNormals) {
		st.Options.Normals = !st.Options.Normals
	}
	if acts.JustPressed(input.ActionToggleAnimation) {
		st.Options.Animation = !st.Options.Animation
	}

	if acts.JustPressed(input.ActionAddLight) {
		if idx, ok := st.Lights.Add(); ok {
			logger.Info("light added", "index", idx, "count", st.Lights.Len())
		} else {
			logger.Info("light limit reached", "max", st.Lights.Cap())
		}
	}
	if acts.JustPressed(input.ActionCopyMaterial) {
		if err := st.CopyMaterialToFloor(); err != nil {
			logger.Warn("copy material to floor", "err", err)
		}
	}

	for a, act := range artefactKeys {
		if acts.JustPressed(act) {
			st.SelectArtefact(scene.Artefact(a))
		}
	}
}
