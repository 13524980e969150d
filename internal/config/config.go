package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"lightstudio/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the settings file read when no --config flag is given
const DefaultPath = "lightstudio.toml"

// Settings holds every startup and runtime option of the studio
type Settings struct {
	Window     WindowSettings    `toml:"window"`
	FPSLimit   int               `toml:"fps_limit"`
	ShadersDir string            `toml:"shaders_dir"`
	LogLevel   string            `toml:"log_level"`
	Camera     CameraSettings    `toml:"camera"`
	Controls   ControlSettings   `toml:"controls"`
	Animation  AnimationSettings `toml:"animation"`
	Scene      SceneSettings     `toml:"scene"`
}

type WindowSettings struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type CameraSettings struct {
	Eye  [3]float32 `toml:"eye"`
	At   [3]float32 `toml:"at"`
	Up   [3]float32 `toml:"up"`
	Fovy float32    `toml:"fovy"`
	Near float32    `toml:"near"`
	Far  float32    `toml:"far"`
}

// ControlSettings are the keyboard camera steps
type ControlSettings struct {
	OrbitStep  float32 `toml:"orbit_step"`  // degrees per key press
	HeightStep float32 `toml:"height_step"` // world units per key press
}

type AnimationSettings struct {
	Enabled bool    `toml:"enabled"`
	Speed   float64 `toml:"speed"`
}

type SceneSettings struct {
	Artefact string `toml:"artefact"`
	Lights   int    `toml:"lights"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  1280,
			Height: 720,
			Title:  "LightStudio",
			VSync:  true,
		},
		FPSLimit:   60,
		ShadersDir: "assets/shaders",
		LogLevel:   "info",
		Camera: CameraSettings{
			Eye:  [3]float32{5, 5, 5},
			At:   [3]float32{0, 0.5, 0},
			Up:   [3]float32{0, 1, 0},
			Fovy: 45,
			Near: 0.1,
			Far:  20,
		},
		Controls: ControlSettings{
			OrbitStep:  5,
			HeightStep: 0.25,
		},
		Animation: AnimationSettings{
			Enabled: true,
			Speed:   1.0 / 60.0,
		},
		Scene: SceneSettings{
			Artefact: "cube",
			Lights:   1,
		},
	}
}

// Load reads settings from path on top of Default. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// normalize replaces unusable values with defaults
func (s *Settings) normalize() {
	d := Default()
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		s.Window.Width, s.Window.Height = d.Window.Width, d.Window.Height
	}
	if s.FPSLimit < 0 {
		s.FPSLimit = 0
	}
	if s.Camera.Fovy <= 0 || s.Camera.Fovy >= 180 {
		s.Camera.Fovy = d.Camera.Fovy
	}
	s.Scene.Lights = max(0, min(s.Scene.Lights, scene.MaxLights))
	if _, err := scene.ParseArtefact(s.Scene.Artefact); err != nil {
		s.Scene.Artefact = d.Scene.Artefact
	}
}

// Level maps LogLevel to a slog level, defaulting to info
func (s Settings) Level() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewState builds the startup scene described by the settings
func (s Settings) NewState() *scene.State {
	st := &scene.State{
		Camera:           scene.NewCamera(),
		Lights:           scene.NewLightRegistry(),
		ArtefactMaterial: scene.NewArtefactMaterial(),
		FloorMaterial:    scene.NewFloorMaterial(),
	}
	c := st.Camera
	c.Eye = mgl32.Vec3(s.Camera.Eye)
	c.At = mgl32.Vec3(s.Camera.At)
	c.Up = mgl32.Vec3(s.Camera.Up)
	c.SetPerspective(s.Camera.Fovy, float32(s.Window.Width)/float32(s.Window.Height), s.Camera.Near, s.Camera.Far)

	for i := 0; i < s.Scene.Lights; i++ {
		st.Lights.Add()
	}
	if a, err := scene.ParseArtefact(s.Scene.Artefact); err == nil {
		st.SelectArtefact(a)
	}
	s.ApplyRuntime(st)
	return st
}

// ApplyRuntime copies the live-tunable settings onto an existing scene and the process
// wide limits. Window, shaders and camera placement only take effect at startup.
func (s Settings) ApplyRuntime(st *scene.State) {
	st.Options.Animation = s.Animation.Enabled
	st.Speed = s.Animation.Speed
	SetFPSLimit(s.FPSLimit)
	SetControls(s.Controls)
}
