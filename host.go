package imbridge

// HostCursor is the host cursor's externally visible state: which shape
// it shows and whether it is shown at all.
type HostCursor struct {
	Shape   CursorShape
	Visible bool
}

// Gamepad layout constants, mirroring the standard gamepad mapping.
const (
	GamepadButtonA = iota
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonLeftBumper
	GamepadButtonRightBumper
	GamepadButtonBack
	GamepadButtonStart
	GamepadButtonGuide
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
	GamepadButtonDpadUp
	GamepadButtonDpadRight
	GamepadButtonDpadDown
	GamepadButtonDpadLeft
	GamepadButtonCount
)

const (
	GamepadAxisLeftX = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
	GamepadAxisCount
)

// GamepadState is one frame's snapshot of the primary gamepad. Axes are
// in [-1, 1]; triggers rest at -1.
type GamepadState struct {
	Buttons [GamepadButtonCount]bool
	Axes    [GamepadAxisCount]float32
}

// Host is the window/input system the bridge reads per-frame state from
// and writes cursor/clipboard state to. backend/glfw provides the GLFW
// implementation.
//
// Sizes come in two flavors: DisplaySize is the logical window size the
// engine lays out against, FramebufferSize is the physical pixel size.
// CursorPos is in the same space as FramebufferSize; the bridge divides
// it by the derived scale before forwarding.
type Host interface {
	DisplaySize() Vec2
	FramebufferSize() Vec2

	CursorPos() Vec2
	MouseButtonDown(button int) bool

	// ScrollOffset is the absolute accumulated scroll position. The
	// bridge turns it into per-frame deltas.
	ScrollOffset() Vec2

	// KeyDown reports whether any host key mapping to the given bridge
	// key is currently held.
	KeyDown(key Key) bool

	// Cursor state. CursorGrabbed reports an exclusive grabbed/locked
	// pointer mode (e.g. camera-look controls), which the bridge never
	// fights.
	Cursor() HostCursor
	SetCursor(c HostCursor)
	CursorGrabbed() bool

	ClipboardText() string
	SetClipboardText(text string)

	// Gamepad returns a snapshot of the primary gamepad, if present.
	Gamepad() (GamepadState, bool)

	// SetCharCallback registers the sink for text-input characters. The
	// host calls it from its event dispatch, not from the frame pass.
	SetCharCallback(fn func(ch rune))
}
