package panel

import (
	"log/slog"
	"testing"

	"lightstudio/internal/scene"
	"lightstudio/internal/ui/widget"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.DiscardHandler)

func findFolder(t *testing.T, folders []Folder, name string) Folder {
	t.Helper()
	for _, f := range folders {
		if f.Name == name {
			return f
		}
	}
	require.Failf(t, "folder not found", "%q", name)
	return Folder{}
}

func findBinding(t *testing.T, f Folder, label string) Binding {
	t.Helper()
	for _, b := range f.Bindings {
		if b.Label == label {
			return b
		}
	}
	require.Failf(t, "binding not found", "%q in %q", label, f.Name)
	return Binding{}
}

func TestSnapAndClamp(t *testing.T) {
	var got float32
	b := Binding{Min: 1, Max: 200, Step: 1, Set: func(v float32) { got = v }}

	assert.Equal(t, float32(43), b.Apply(42.6))
	assert.Equal(t, float32(43), got)
	assert.Equal(t, float32(200), b.Apply(1e6))
	assert.Equal(t, float32(1), b.Apply(-3))

	fine := Binding{Min: 0.1, Max: 20, Step: 0.1}
	assert.InDelta(t, 0.4, fine.Snap(0.37), 1e-5)

	free := Binding{Min: 0, Max: 1}
	assert.Equal(t, float32(0.123), free.Snap(0.123))
}

func TestReadOnlyBindingIgnoresApply(t *testing.T) {
	called := false
	b := Binding{Min: 0, Max: 10, ReadOnly: true, Get: func() float32 { return 1.5 }, Set: func(float32) { called = true }}
	assert.Equal(t, float32(1.5), b.Apply(7))
	assert.False(t, called)
}

func TestRatioRoundTrip(t *testing.T) {
	v := float32(50)
	b := Binding{Min: 0, Max: 200, Step: 1, Get: func() float32 { return v }, Set: func(x float32) { v = x }}
	assert.Equal(t, float32(0.25), b.Ratio())
	b.Apply(b.FromRatio(0.5))
	assert.Equal(t, float32(100), v)
	assert.Equal(t, 101, Binding{Min: 0, Max: 1, Step: 0.01}.Steps())
	assert.Equal(t, 0, b.Steps(), "too many positions to tick")
	assert.Equal(t, 0, Binding{Min: 0, Max: 1}.Steps())
}

func TestBuildFolders(t *testing.T) {
	st := scene.NewState()
	st.Lights.Add()

	folders := Build(st, quiet)
	names := make([]string, len(folders))
	for i, f := range folders {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"camera", "options", "artefact", "floor", "lights", "light 1", "light 2"}, names)

	cam := findFolder(t, folders, "camera")
	assert.Len(t, cam.Bindings, 13)
	assert.True(t, findBinding(t, cam, "aspect").ReadOnly)

	art := findFolder(t, folders, "artefact")
	assert.Len(t, art.Bindings, 10, "three channels of rgb plus shininess")
	require.Len(t, art.Choices, 1)
	assert.Equal(t, []string{"cube", "cylinder", "pyramid", "sphere", "torus"}, art.Choices[0].Options)
}

func TestCameraBindingsRespectClamps(t *testing.T) {
	st := scene.NewState()
	cam := findFolder(t, Build(st, quiet), "camera")

	findBinding(t, cam, "far").Apply(5)
	findBinding(t, cam, "near").Apply(19)
	assert.LessOrEqual(t, st.Camera.Near, st.Camera.Far-scene.NearFarMargin)

	findBinding(t, cam, "fovy").Apply(60.4)
	assert.Equal(t, float32(60), st.Camera.Fovy)

	findBinding(t, cam, "eye.x").Apply(-3)
	assert.InDelta(t, -3, st.Camera.Eye.X(), 1e-5)
}

func TestMaterialBindings(t *testing.T) {
	st := scene.NewState()
	folders := Build(st, quiet)

	findBinding(t, findFolder(t, folders, "artefact"), "Kd.g").Apply(0.333)
	assert.InDelta(t, 0.33, st.ArtefactMaterial.Diffuse.Y(), 1e-5)

	findBinding(t, findFolder(t, folders, "floor"), "shininess").Apply(500)
	assert.Equal(t, float32(200), st.FloorMaterial.Shininess)
}

func TestArtefactChoiceAndCopy(t *testing.T) {
	st := scene.NewState()
	art := findFolder(t, Build(st, quiet), "artefact")

	art.Choices[0].Set(4)
	assert.Equal(t, scene.ArtefactTorus, st.Artefact)
	assert.Equal(t, 4, art.Choices[0].Get())

	st.ArtefactMaterial.Diffuse = mgl32.Vec3{0.9, 0.1, 0.1}
	require.Len(t, art.Actions, 1)
	art.Actions[0].Do()
	assert.Equal(t, st.ArtefactMaterial.Diffuse, st.FloorMaterial.Diffuse)

	st.ArtefactMaterial.Diffuse[0] = 0
	assert.Equal(t, float32(0.9), st.FloorMaterial.Diffuse[0], "floor holds a copy")
}

func TestLightBindingsBumpVersion(t *testing.T) {
	st := scene.NewState()
	light := findFolder(t, Build(st, quiet), LightFolderName(0))

	v := st.Lights.Version()
	findBinding(t, light, "position.y").Apply(4.04)
	assert.Greater(t, st.Lights.Version(), v)
	l, _ := st.Lights.Get(0)
	assert.InDelta(t, 4.0, l.Position.Y(), 1e-5)

	require.Len(t, light.Toggles, 2)
	light.Toggles[1].Set(false)
	l, _ = st.Lights.Get(0)
	assert.False(t, l.Active)
	assert.False(t, light.Toggles[1].Get())
}

func TestAddLightActionStopsAtCapacity(t *testing.T) {
	st := scene.NewState()
	lights := findFolder(t, Build(st, quiet), "lights")
	for range scene.MaxLights + 3 {
		lights.Actions[0].Do()
	}
	assert.Equal(t, scene.MaxLights, st.Lights.Len())
}

// painter records drawn labels and measures text at 8px per rune
type painter struct{ texts []string }

func (p *painter) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {}
func (p *painter) DrawText(text string, x, y, scale float32, color mgl32.Vec3)        { p.texts = append(p.texts, text) }
func (p *painter) MeasureText(text string, scale float32) (float32, float32) {
	return float32(len(text)) * 8 * scale, 16 * scale
}

func TestPanelFoldersExpandOnClick(t *testing.T) {
	st := scene.NewState()
	p := New(st, quiet)
	assert.True(t, p.IsOpen("camera"))
	assert.False(t, p.IsOpen("options"))
	expanded := p.Height()

	p.SetOpen("camera", false)
	assert.Less(t, p.Height(), expanded)

	// second header is "options"
	y := p.Y + margin + p.RowHeight + rowGap + p.RowHeight/2
	assert.True(t, p.Update(widget.Pointer{X: p.X + 20, Y: y, Down: true, JustPressed: true}))
	assert.True(t, p.IsOpen("options"))

	// wireframe toggle sits right under its header
	y += p.RowHeight + rowGap
	p.Update(widget.Pointer{X: p.X + 20, Y: y, Down: true, JustPressed: true})
	assert.True(t, st.Options.Wireframe)
}

func TestPanelSyncsKeyboardEdits(t *testing.T) {
	st := scene.NewState()
	p := New(st, quiet)
	st.Camera.Fovy = 90

	pt := &painter{}
	p.Render(pt, widget.Pointer{})
	assert.Contains(t, pt.texts, "fovy")
	assert.Contains(t, pt.texts, "90.00")
}

func TestPanelPicksUpNewLights(t *testing.T) {
	st := scene.NewState()
	p := New(st, quiet)
	n := len(p.Folders())

	st.Lights.Add()
	p.Update(widget.Pointer{X: -100, Y: -100})
	assert.Len(t, p.Folders(), n+1)
}

func TestHiddenPanelIgnoresPointer(t *testing.T) {
	st := scene.NewState()
	p := New(st, quiet)
	p.ToggleVisible()
	assert.False(t, p.Update(widget.Pointer{X: p.X + 20, Y: p.Y + 15, Down: true, JustPressed: true}))
	assert.False(t, p.Contains(p.X+1, p.Y+1))

	pt := &painter{}
	p.Render(pt, widget.Pointer{})
	assert.Empty(t, pt.texts)
}
