package hud

import (
	"testing"
	"time"

	"lightstudio/internal/graphics/renderer"
	"lightstudio/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linePainter struct{ lines []string }

func (p *linePainter) DrawLines(lines []string, x, y, lineStep, scale float32, color mgl32.Vec3) {
	p.lines = append(p.lines, lines...)
}

func TestFrameStatsWindow(t *testing.T) {
	var s FrameStats
	start := time.Unix(0, 0)
	for i := 1; i <= historyLen+10; i++ {
		s.Record(time.Duration(i)*time.Millisecond, start.Add(time.Duration(i)*time.Millisecond))
	}
	lo, avg, hi := s.Window()
	assert.Equal(t, 11*time.Millisecond, lo, "oldest frames fall out of the window")
	assert.Equal(t, 70*time.Millisecond, hi)
	assert.Equal(t, 70*time.Millisecond, s.Last())
	assert.Equal(t, (11+70)*time.Millisecond/2, avg)
}

func TestFrameStatsFPS(t *testing.T) {
	var s FrameStats
	now := time.Unix(100, 0)
	s.Record(time.Millisecond, now)
	assert.Zero(t, s.FPS())

	for i := 1; i <= 25; i++ {
		s.Record(time.Millisecond, now.Add(time.Duration(i)*40*time.Millisecond))
	}
	assert.Equal(t, 26, s.FPS())
}

func TestHUDLines(t *testing.T) {
	st := scene.NewState()
	st.Lights.Add()
	st.Lights.SetActive(1, false)
	st.SelectArtefact(scene.ArtefactTorus)

	h := NewHUD(&linePainter{})
	h.RecordFrame(16 * time.Millisecond)
	lines := h.Lines(st)
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "FPS: 0", lines[0])
	assert.Contains(t, lines[2], "Artefact: torus")
	assert.Contains(t, lines[2], "Lights: 2/8 (1 active)")
}

func TestHUDHiddenDrawsNothing(t *testing.T) {
	p := &linePainter{}
	h := NewHUD(p)
	h.Render(renderer.RenderContext{State: scene.NewState()})
	assert.Empty(t, p.lines)

	h.Visible = true
	h.SetViewport(1280, 720)
	h.Render(renderer.RenderContext{State: scene.NewState()})
	assert.NotEmpty(t, p.lines)
}
