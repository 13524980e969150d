package app

import (
	"log/slog"
	"time"

	"lightstudio/internal/config"
	"lightstudio/internal/graphics/renderables/hud"
	"lightstudio/internal/graphics/renderer"
	"lightstudio/internal/input"
	"lightstudio/internal/panel"
	"lightstudio/internal/profiling"
	"lightstudio/internal/scene"
	"lightstudio/internal/ui/widget"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame is logged with its top phases
const slowFrame = 16 * time.Millisecond

// App owns the window and runs one frame per tick
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	logger       *slog.Logger

	state    *scene.State
	renderer *renderer.Renderer
	panel    *panel.Panel
	hud      *hud.HUD

	updates  <-chan config.Settings
	logLevel *slog.LevelVar

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

func NewApp(window *glfw.Window, im *input.InputManager, st *scene.State, r *renderer.Renderer, p *panel.Panel, h *hud.HUD, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		window:       window,
		inputManager: im,
		logger:       logger,
		state:        st,
		renderer:     r,
		panel:        p,
		hud:          h,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
}

// WatchConfig makes the frame loop apply settings received on ch. level, if set, follows log_level.
func (a *App) WatchConfig(ch <-chan config.Settings, level *slog.LevelVar) {
	a.updates = ch
	a.logLevel = level
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	func() {
		defer profiling.Track("app.pollEvents")()
		glfw.PollEvents()
	}()

	a.applyConfigUpdates()
	a.update()
	a.renderer.Render(a.state, dt)

	a.window.SwapBuffers()

	processingDuration := time.Since(startTick)
	a.hud.RecordFrame(processingDuration)
	if processingDuration > slowFrame {
		a.logger.Debug("slow frame", "duration", processingDuration, "top", profiling.TopN(5))
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags
	a.fpsLimiter.Wait(config.GetFPSLimit())
}

// applyConfigUpdates takes at most one pending reload without blocking
func (a *App) applyConfigUpdates() {
	select {
	case s, ok := <-a.updates:
		if !ok {
			a.updates = nil
			return
		}
		s.ApplyRuntime(a.state)
		if a.logLevel != nil {
			a.logLevel.Set(s.Level())
		}
		a.logger.Info("settings applied", "fps_limit", config.GetFPSLimit(), "animation", a.state.Options.Animation)
	default:
	}
}

func (a *App) update() {
	defer profiling.Track("app.update")()

	im := a.inputManager
	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionTogglePanel) {
		a.panel.ToggleVisible()
	}
	if im.JustPressed(input.ActionToggleStats) {
		a.hud.Visible = !a.hud.Visible
	}

	a.panel.Update(a.Pointer())
	applyControls(a.state, im, config.GetControls(), a.logger)
}

// Pointer samples the cursor in framebuffer pixels
func (a *App) Pointer() widget.Pointer {
	cx, cy := a.window.GetCursorPos()
	ww, wh := a.window.GetSize()
	fw, fh := a.window.GetFramebufferSize()
	sx, sy := float32(1), float32(1)
	if ww > 0 && wh > 0 {
		sx, sy = float32(fw)/float32(ww), float32(fh)/float32(wh)
	}
	return widget.Pointer{
		X:           float32(cx) * sx,
		Y:           float32(cy) * sy,
		Down:        a.inputManager.IsActive(input.ActionMouseLeft),
		JustPressed: a.inputManager.JustPressed(input.ActionMouseLeft),
	}
}

// Resize handles framebuffer size changes and repaints so the window never shows stale content
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.renderer.SetViewport(a.state, width, height)
	a.renderer.Render(a.state, 0)
	a.window.SwapBuffers()
}
