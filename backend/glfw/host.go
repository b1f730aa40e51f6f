// Package glfw adapts a GLFW window to the imbridge.Host interface.
package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/willgale/imbridge"
)

// Host implements imbridge.Host over a GLFW window. It installs scroll
// and character callbacks on the window at construction, so create it
// before registering your own callbacks of those kinds.
//
// GLFW reports scroll as per-event deltas; Host accumulates them into
// the absolute offset the bridge expects. GLFW also cannot read back the
// current cursor shape, so Host remembers the last shape it set.
type Host struct {
	window *glfw.Window

	scroll      imbridge.Vec2
	cursorShape imbridge.CursorShape
	cursors     map[imbridge.CursorShape]*glfw.Cursor
	charFn      func(rune)
}

// NewHost wraps window. The window must outlive the returned Host.
func NewHost(window *glfw.Window) *Host {
	h := &Host{
		window:      window,
		cursorShape: imbridge.CursorArrow,
		cursors:     make(map[imbridge.CursorShape]*glfw.Cursor),
	}
	window.SetScrollCallback(h.onScroll)
	window.SetCharCallback(h.onChar)
	return h
}

func (h *Host) onScroll(_ *glfw.Window, dx, dy float64) {
	h.scroll.X += float32(dx)
	h.scroll.Y += float32(dy)
}

func (h *Host) onChar(_ *glfw.Window, ch rune) {
	if h.charFn != nil {
		h.charFn(ch)
	}
}

// SetCharCallback registers the text-input sink.
func (h *Host) SetCharCallback(fn func(ch rune)) {
	h.charFn = fn
}

// DisplaySize returns the logical window size.
func (h *Host) DisplaySize() imbridge.Vec2 {
	w, ht := h.window.GetSize()
	return imbridge.Vec2{X: float32(w), Y: float32(ht)}
}

// FramebufferSize returns the physical pixel size.
func (h *Host) FramebufferSize() imbridge.Vec2 {
	w, ht := h.window.GetFramebufferSize()
	return imbridge.Vec2{X: float32(w), Y: float32(ht)}
}

// CursorPos returns the pointer position.
func (h *Host) CursorPos() imbridge.Vec2 {
	x, y := h.window.GetCursorPos()
	return imbridge.Vec2{X: float32(x), Y: float32(y)}
}

// MouseButtonDown reports whether the given button is held.
func (h *Host) MouseButtonDown(button int) bool {
	if button < 0 || button >= imbridge.MouseButtonCount {
		return false
	}
	return h.window.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

// ScrollOffset returns the accumulated scroll position.
func (h *Host) ScrollOffset() imbridge.Vec2 {
	return h.scroll
}

// KeyDown reports whether any GLFW key mapping to key is held.
func (h *Host) KeyDown(key imbridge.Key) bool {
	if key <= imbridge.KeyNone || key >= imbridge.KeyCount {
		return false
	}
	for _, code := range keyCodes[key] {
		if h.window.GetKey(code) == glfw.Press {
			return true
		}
	}
	return false
}

// CursorGrabbed reports whether the cursor is in GLFW's disabled
// (grabbed and hidden) input mode.
func (h *Host) CursorGrabbed() bool {
	return h.window.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled
}

// Cursor returns the current cursor shape and visibility.
func (h *Host) Cursor() imbridge.HostCursor {
	return imbridge.HostCursor{
		Shape:   h.cursorShape,
		Visible: h.window.GetInputMode(glfw.CursorMode) == glfw.CursorNormal,
	}
}

// SetCursor applies shape and visibility to the window.
func (h *Host) SetCursor(c imbridge.HostCursor) {
	h.cursorShape = c.Shape
	if !c.Visible {
		h.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		return
	}
	h.window.SetCursor(h.standardCursor(c.Shape))
	h.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

// standardCursor returns (and caches) the GLFW cursor object for a
// shape. GLFW 3.3 has no resize-all or diagonal resize cursors; those
// fall back to the crosshair.
func (h *Host) standardCursor(shape imbridge.CursorShape) *glfw.Cursor {
	if c, ok := h.cursors[shape]; ok {
		return c
	}
	var std glfw.StandardCursor
	switch shape {
	case imbridge.CursorTextInput:
		std = glfw.IBeamCursor
	case imbridge.CursorResizeNS:
		std = glfw.VResizeCursor
	case imbridge.CursorResizeEW:
		std = glfw.HResizeCursor
	case imbridge.CursorHand:
		std = glfw.HandCursor
	case imbridge.CursorResizeAll, imbridge.CursorResizeNESW, imbridge.CursorResizeNWSE:
		std = glfw.CrosshairCursor
	default:
		std = glfw.ArrowCursor
	}
	c := glfw.CreateStandardCursor(std)
	h.cursors[shape] = c
	return c
}

// ClipboardText returns the system clipboard contents.
func (h *Host) ClipboardText() string {
	return h.window.GetClipboardString()
}

// SetClipboardText writes text to the system clipboard.
func (h *Host) SetClipboardText(text string) {
	h.window.SetClipboardString(text)
}

// Gamepad snapshots the first joystick if it exposes a gamepad mapping.
func (h *Host) Gamepad() (imbridge.GamepadState, bool) {
	var state imbridge.GamepadState
	js := glfw.Joystick1
	if !js.Present() || !js.IsGamepad() {
		return state, false
	}
	gp := js.GetGamepadState()
	if gp == nil {
		return state, false
	}
	for i := range state.Buttons {
		state.Buttons[i] = gp.Buttons[i] == glfw.Press
	}
	for i := range state.Axes {
		state.Axes[i] = gp.Axes[i]
	}
	return state, true
}

// Destroy releases the cursor objects created by SetCursor. The window
// itself belongs to the caller.
func (h *Host) Destroy() {
	for _, c := range h.cursors {
		c.Destroy()
	}
	h.cursors = make(map[imbridge.CursorShape]*glfw.Cursor)
}
