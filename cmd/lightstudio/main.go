package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"lightstudio/internal/app"
	"lightstudio/internal/config"
	"lightstudio/internal/graphics"
	"lightstudio/internal/graphics/mesh"
	"lightstudio/internal/graphics/renderables/hud"
	"lightstudio/internal/graphics/renderables/ui"
	"lightstudio/internal/graphics/renderer"
	"lightstudio/internal/input"
	"lightstudio/internal/panel"
	"lightstudio/internal/ui/widget"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := pflag.StringP("config", "c", config.DefaultPath, "settings file (TOML)")
	logLevel := pflag.String("log-level", "", "override log_level from the settings file")
	noWatch := pflag.Bool("no-watch", false, "do not reload the settings file when it changes")
	pflag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Errorf("load settings: %w", err))
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}

	level := new(slog.LevelVar)
	level.Set(settings.Level())
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(settings.Window)
	if err != nil {
		panic(err)
	}
	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("init gl: %w", err))
	}
	logger.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)), "config", *configPath)

	st := settings.NewState()

	shader, err := graphics.NewShader(
		filepath.Join(settings.ShadersDir, "scene", "phong.vert"),
		filepath.Join(settings.ShadersDir, "scene", "phong.frag"),
	)
	if err != nil {
		panic(fmt.Errorf("scene shader: %w", err))
	}
	program := renderer.NewGLProgram(shader)
	defer program.Dispose()

	im := input.NewInputManager()
	im.Attach(window)

	uiRenderer := ui.NewUI(filepath.Join(settings.ShadersDir, "ui"))
	studioPanel := panel.New(st, logger)
	hudRenderer := hud.NewHUD(uiRenderer)

	var a *app.App
	panelOverlay := ui.NewPanelOverlay(uiRenderer, studioPanel, func() widget.Pointer { return a.Pointer() })

	r, err := renderer.NewRenderer(
		program,
		renderer.NewGLSurface(mgl32.Vec4{0.05, 0.05, 0.05, 1}),
		mesh.NewLibrary(),
		logger,
		uiRenderer,
		panelOverlay,
		hudRenderer,
	)
	if err != nil {
		panic(err)
	}
	defer r.Dispose()

	a = app.NewApp(window, im, st, r, studioPanel, hudRenderer, logger)

	fw, fh := window.GetFramebufferSize()
	r.SetViewport(st, fw, fh)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.Resize(width, height)
	})

	if !*noWatch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		updates, err := config.Watch(ctx, *configPath, logger)
		if err != nil {
			logger.Warn("settings hot reload disabled", "err", err)
		} else {
			a.WatchConfig(updates, level)
		}
	}

	logger.Info("studio started", "artefact", st.Artefact, "lights", st.Lights.Len(), "fps_limit", config.GetFPSLimit())
	a.Run()
}

func setupWindow(ws config.WindowSettings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(ws.Width, ws.Height, ws.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if ws.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return window, nil
}
