package config

import "sync"

// RuntimeSettings holds the values the frame loop reads every tick. They can be replaced by a
// config reload while the studio is running.
type RuntimeSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 = unlimited
	controls ControlSettings
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit: 60,
	controls: Default().Controls,
}

// GetFPSLimit returns the frame cap, 0 meaning uncapped
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 0 && limit < 10 {
		limit = 10
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRuntimeSettings.fpsLimit = limit
}

// GetControls returns the keyboard camera steps
func GetControls() ControlSettings {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.controls
}

// SetControls replaces the keyboard camera steps; non-positive steps keep the defaults
func SetControls(c ControlSettings) {
	d := Default().Controls
	if c.OrbitStep <= 0 {
		c.OrbitStep = d.OrbitStep
	}
	if c.HeightStep <= 0 {
		c.HeightStep = d.HeightStep
	}
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.controls = c
}
