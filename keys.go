package imbridge

// Key identifies a key in the engine's input model. Host key codes are
// mapped into this space by a backend translator (see backend/glfw);
// KeyNone marks codes with no mapping and is never forwarded.
//
// Key0–Key9, KeyA–KeyZ, KeyF1–KeyF12 and KeyKeypad0–KeyKeypad9 are
// contiguous so translators can map whole host ranges with a constant
// offset.
type Key int

const (
	KeyNone Key = iota

	KeyTab
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyEqual
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadDecimal
	KeyKeypadDivide
	KeyKeypadMultiply
	KeyKeypadSubtract
	KeyKeypadAdd
	KeyKeypadEnter
	KeyKeypadEqual

	KeyLeftShift
	KeyLeftCtrl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightCtrl
	KeyRightAlt
	KeyRightSuper
	KeyMenu

	// Aggregate modifiers, forwarded as the OR of the left/right variants.
	KeyModCtrl
	KeyModShift
	KeyModAlt
	KeyModSuper

	// Gamepad buttons (boolean events).
	KeyGamepadStart
	KeyGamepadBack
	KeyGamepadFaceUp
	KeyGamepadFaceDown
	KeyGamepadFaceLeft
	KeyGamepadFaceRight
	KeyGamepadDpadUp
	KeyGamepadDpadDown
	KeyGamepadDpadLeft
	KeyGamepadDpadRight
	KeyGamepadL1
	KeyGamepadR1
	KeyGamepadL3
	KeyGamepadR3

	// Gamepad analog inputs (analog events with a boolean threshold).
	KeyGamepadL2
	KeyGamepadR2
	KeyGamepadLStickUp
	KeyGamepadLStickDown
	KeyGamepadLStickLeft
	KeyGamepadLStickRight

	KeyCount
)

// Keyboard keys the per-frame input pass polls from the host. Modifier
// aggregates and gamepad keys are forwarded separately.
const (
	firstKeyboardKey = KeyTab
	lastKeyboardKey  = KeyMenu
)

// CursorShape is a cursor requested by the engine or shown by the host.
// CursorNone means the engine wants no visible cursor.
type CursorShape int

const (
	CursorNone CursorShape = iota - 1
	CursorArrow
	CursorTextInput
	CursorResizeAll
	CursorResizeNS
	CursorResizeEW
	CursorResizeNESW
	CursorResizeNWSE
	CursorHand
	CursorNotAllowed
)

// Mouse buttons forwarded to the engine every frame.
const (
	MouseButtonLeft = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonExtra1
	MouseButtonExtra2
	MouseButtonCount
)
