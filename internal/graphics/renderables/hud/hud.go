package hud

import (
	"fmt"
	"strings"
	"time"

	"lightstudio/internal/graphics/renderer"
	"lightstudio/internal/profiling"
	"lightstudio/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// TextPainter draws blocks of text in framebuffer pixels
type TextPainter interface {
	DrawLines(lines []string, x, y, lineStep, scale float32, color mgl32.Vec3)
}

// HUD shows frame timing and a scene summary in the top right corner
type HUD struct {
	painter TextPainter
	stats   FrameStats
	width   float32
	Visible bool
}

func NewHUD(painter TextPainter) *HUD {
	return &HUD{painter: painter}
}

func (h *HUD) Init() error { return nil }
func (h *HUD) Dispose()    {}

func (h *HUD) SetViewport(width, height int) { h.width = float32(width) }

// RecordFrame feeds the duration of the frame that just finished
func (h *HUD) RecordFrame(d time.Duration) { h.stats.Record(d, time.Now()) }

// Stats exposes the rolling frame statistics
func (h *HUD) Stats() *FrameStats { return &h.stats }

func (h *HUD) Render(ctx renderer.RenderContext) {
	if !h.Visible {
		return
	}
	lines := h.Lines(ctx.State)
	x := max(h.width-360, 10)
	h.painter.DrawLines(lines, x, 24, 18, 0.45, mgl32.Vec3{1, 1, 1})
}

func ms(d time.Duration) float64 { return float64(d.Microseconds()) / 1000.0 }

// Lines builds the text shown by the HUD
func (h *HUD) Lines(st *scene.State) []string {
	lo, avg, hi := h.stats.Window()
	lines := []string{
		fmt.Sprintf("FPS: %d", h.stats.FPS()),
		fmt.Sprintf("Frame: %.2fms (min %.2f avg %.2f max %.2f)", ms(h.stats.Last()), ms(lo), ms(avg), ms(hi)),
	}

	if st != nil {
		active := 0
		for range st.Lights.Active() {
			active++
		}
		lines = append(lines,
			fmt.Sprintf("Artefact: %s | Lights: %d/%d (%d active)", st.Artefact, st.Lights.Len(), st.Lights.Cap(), active),
			fmt.Sprintf("Eye: %.2f, %.2f, %.2f", st.Camera.Eye.X(), st.Camera.Eye.Y(), st.Camera.Eye.Z()),
		)
	}

	lines = append(lines, fmt.Sprintf("Render: %.2fms", ms(profiling.SumWithPrefix("render."))))
	if top := profiling.TopN(5); top != "" {
		for line := range strings.SplitSeq(top, ", ") {
			if line != "" {
				lines = append(lines, "  "+line)
			}
		}
	}
	return lines
}
