package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical studio action, not a physical key
type Action int

// Action constants using iota
const (
	ActionOrbitLeft Action = iota
	ActionOrbitRight
	ActionRaiseCamera
	ActionLowerCamera
	ActionToggleWireframe
	ActionToggleNormals
	ActionToggleAnimation
	ActionAddLight
	ActionCopyMaterial
	ActionSelectCube
	ActionSelectCylinder
	ActionSelectPyramid
	ActionSelectSphere
	ActionSelectTorus
	ActionTogglePanel
	ActionToggleStats
	ActionQuit
	ActionMouseLeft
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys/buttons to logical actions and tracks per-frame state
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Mouse button to action mapping
	mouseButtonToActions map[glfw.MouseButton][]Action

	// Current held state (indexed by Action)
	currentState [ActionCount]bool

	// Press edges and key-repeat events since the last PostUpdate
	justPressed [ActionCount]bool
	presses     [ActionCount]int
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	// Camera
	im.BindKey(glfw.KeyLeft, ActionOrbitLeft)
	im.BindKey(glfw.KeyRight, ActionOrbitRight)
	im.BindKey(glfw.KeyUp, ActionRaiseCamera)
	im.BindKey(glfw.KeyDown, ActionLowerCamera)

	// Scene
	im.BindKey(glfw.KeyW, ActionToggleWireframe)
	im.BindKey(glfw.KeyN, ActionToggleNormals)
	im.BindKey(glfw.KeySpace, ActionToggleAnimation)
	im.BindKey(glfw.KeyL, ActionAddLight)
	im.BindKey(glfw.KeyC, ActionCopyMaterial)
	im.BindKey(glfw.Key1, ActionSelectCube)
	im.BindKey(glfw.Key2, ActionSelectCylinder)
	im.BindKey(glfw.Key3, ActionSelectPyramid)
	im.BindKey(glfw.Key4, ActionSelectSphere)
	im.BindKey(glfw.Key5, ActionSelectTorus)

	// Application
	im.BindKey(glfw.KeyTab, ActionTogglePanel)
	im.BindKey(glfw.KeyF3, ActionToggleStats)
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)

	return im
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event and updates internal state.
// Key repeat counts as another press but not as a new edge.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	for _, act := range im.keyToActions[key] {
		im.apply(act, action)
	}
}

// HandleMouseButtonEvent processes a mouse button event and updates internal state
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	for _, act := range im.mouseButtonToActions[button] {
		im.apply(act, action)
	}
}

func (im *InputManager) apply(act Action, action glfw.Action) {
	switch action {
	case glfw.Press:
		if !im.currentState[act] {
			im.justPressed[act] = true
		}
		im.currentState[act] = true
		im.presses[act]++
	case glfw.Repeat:
		im.currentState[act] = true
		im.presses[act]++
	case glfw.Release:
		im.currentState[act] = false
	}
}

// Attach installs key and mouse button callbacks on the window
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
}

// PostUpdate must be called at the end of each frame to reset per-frame edges and counts
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
		im.presses[i] = 0
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// Presses returns how many press and repeat events the action received this frame
func (im *InputManager) Presses(action Action) int {
	if action < 0 || action >= ActionCount {
		return 0
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.presses[action]
}
