package panel

import (
	"fmt"
	"log/slog"

	"lightstudio/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

var axes = [3]string{"x", "y", "z"}
var rgb = [3]string{"r", "g", "b"}

// Build describes every editable parameter of the scene. Light folders reflect the lights
// registered at call time; rebuild after adding one.
func Build(st *scene.State, logger *slog.Logger) []Folder {
	if logger == nil {
		logger = slog.Default()
	}
	folders := []Folder{
		cameraFolder(st.Camera),
		optionsFolder(&st.Options),
		artefactFolder(st, logger),
		materialFolder("floor", st.FloorMaterial),
		lightsFolder(st.Lights, logger),
	}
	for i := range st.Lights.Len() {
		folders = append(folders, lightFolder(st.Lights, i))
	}
	return folders
}

func cameraFolder(c *scene.Camera) Folder {
	const name = "camera"
	f := Folder{Name: name}
	f.Bindings = append(f.Bindings,
		Binding{Folder: name, Label: "fovy", Min: 1, Max: 100, Step: 1,
			Get: func() float32 { return c.Fovy }, Set: func(v float32) { c.Fovy = v }},
		Binding{Folder: name, Label: "aspect", Min: 0, Max: 10, ReadOnly: true,
			Get: func() float32 { return c.Aspect }},
		Binding{Folder: name, Label: "near", Min: scene.MinNear, Max: 20, Step: 0.1,
			Get: func() float32 { return c.Near }, Set: c.SetNear},
		Binding{Folder: name, Label: "far", Min: scene.MinNear, Max: 20, Step: 0.1,
			Get: func() float32 { return c.Far }, Set: c.SetFar},
	)
	f.Bindings = append(f.Bindings, vecBindings(name, "eye", &c.Eye, -20, 20, 0.1)...)
	f.Bindings = append(f.Bindings, vecBindings(name, "at", &c.At, -20, 20, 0.1)...)
	f.Bindings = append(f.Bindings, vecBindings(name, "up", &c.Up, -1, 1, 0.05)...)
	return f
}

// vecBindings binds each component of v
func vecBindings(folder, prefix string, v *mgl32.Vec3, lo, hi, step float32) []Binding {
	out := make([]Binding, 0, 3)
	for i, axis := range axes {
		out = append(out, Binding{
			Folder: folder, Label: prefix + "." + axis, Min: lo, Max: hi, Step: step,
			Get: func() float32 { return v[i] },
			Set: func(x float32) { v[i] = x },
		})
	}
	return out
}

func optionsFolder(o *scene.Options) Folder {
	const name = "options"
	return Folder{Name: name, Toggles: []Toggle{
		{Folder: name, Label: "wireframe", Get: func() bool { return o.Wireframe }, Set: func(b bool) { o.Wireframe = b }},
		{Folder: name, Label: "normals", Get: func() bool { return o.Normals }, Set: func(b bool) { o.Normals = b }},
		{Folder: name, Label: "animation", Get: func() bool { return o.Animation }, Set: func(b bool) { o.Animation = b }},
	}}
}

func artefactFolder(st *scene.State, logger *slog.Logger) Folder {
	f := materialFolder("artefact", st.ArtefactMaterial)

	names := make([]string, scene.ArtefactCount)
	for a := range scene.ArtefactCount {
		names[a] = a.String()
	}
	f.Choices = []Choice{{
		Folder: f.Name, Label: "shape", Options: names,
		Get: func() int { return int(st.Artefact) },
		Set: func(i int) { st.SelectArtefact(scene.Artefact(i)) },
	}}
	f.Actions = []Action{{
		Folder: f.Name, Label: "copy to floor",
		Do: func() {
			if err := st.CopyMaterialToFloor(); err != nil {
				logger.Warn("copy material to floor", "err", err)
			}
		},
	}}
	return f
}

func materialFolder(name string, m *scene.Material) Folder {
	f := Folder{Name: name}
	for _, ch := range []scene.Channel{scene.ChannelAmbient, scene.ChannelDiffuse, scene.ChannelSpecular} {
		c := m.ChannelRef(ch)
		for i, comp := range rgb {
			f.Bindings = append(f.Bindings, Binding{
				Folder: name, Label: ch.String() + "." + comp, Min: 0, Max: 1, Step: 0.01,
				Get: func() float32 { return c[i] },
				Set: func(x float32) { c[i] = x },
			})
		}
	}
	f.Bindings = append(f.Bindings, Binding{
		Folder: name, Label: "shininess", Min: 1, Max: 200, Step: 1,
		Get: func() float32 { return m.Shininess }, Set: m.SetShininess,
	})
	return f
}

func lightsFolder(reg *scene.LightRegistry, logger *slog.Logger) Folder {
	const name = "lights"
	return Folder{Name: name, Actions: []Action{{
		Folder: name, Label: "add light",
		Do: func() {
			idx, ok := reg.Add()
			if !ok {
				logger.Info("light limit reached", "max", reg.Cap())
				return
			}
			logger.Info("light added", "index", idx, "count", reg.Len())
		},
	}}}
}

// LightFolderName names the folder holding the controls of light i
func LightFolderName(i int) string { return fmt.Sprintf("light %d", i+1) }

func lightFolder(reg *scene.LightRegistry, idx int) Folder {
	name := LightFolderName(idx)
	f := Folder{Name: name}

	// the registry version must move on every edit so the renderer re-uploads
	l := reg.Ref(idx)
	vec := func(label string, v *mgl32.Vec3, parts [3]string, lo, hi, step float32) {
		for i, comp := range parts {
			f.Bindings = append(f.Bindings, Binding{
				Folder: name, Label: label + "." + comp, Min: lo, Max: hi, Step: step,
				Get: func() float32 { return v[i] },
				Set: func(x float32) { v[i] = x; reg.Touch() },
			})
		}
	}
	vec("position", &l.Position, axes, -10, 10, 0.1)
	vec("Ia", &l.Ambient, rgb, 0, 1, 0.01)
	vec("Id", &l.Diffuse, rgb, 0, 1, 0.01)
	vec("Is", &l.Specular, rgb, 0, 1, 0.01)

	f.Toggles = []Toggle{
		{Folder: name, Label: "directional", Get: func() bool { return l.Directional },
			Set: func(b bool) { reg.Set(idx, scene.LightUpdate{Directional: &b}) }},
		{Folder: name, Label: "active", Get: func() bool { return l.Active },
			Set: func(b bool) { reg.SetActive(idx, b) }},
	}
	return f
}
