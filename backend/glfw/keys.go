package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/willgale/imbridge"
)

// TranslateKey maps a GLFW key code to its bridge key. Digit, letter,
// keypad-digit and function-key codes map by range offset; everything
// else goes through the table. Unknown codes return imbridge.KeyNone and
// must be skipped by the caller.
func TranslateKey(key glfw.Key) imbridge.Key {
	switch {
	case key >= glfw.Key0 && key <= glfw.Key9:
		return imbridge.Key0 + imbridge.Key(key-glfw.Key0)
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return imbridge.KeyA + imbridge.Key(key-glfw.KeyA)
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return imbridge.KeyF1 + imbridge.Key(key-glfw.KeyF1)
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		return imbridge.KeyKeypad0 + imbridge.Key(key-glfw.KeyKP0)
	}

	switch key {
	case glfw.KeyTab:
		return imbridge.KeyTab
	case glfw.KeyLeft:
		return imbridge.KeyLeftArrow
	case glfw.KeyRight:
		return imbridge.KeyRightArrow
	case glfw.KeyUp:
		return imbridge.KeyUpArrow
	case glfw.KeyDown:
		return imbridge.KeyDownArrow
	case glfw.KeyPageUp:
		return imbridge.KeyPageUp
	case glfw.KeyPageDown:
		return imbridge.KeyPageDown
	case glfw.KeyHome:
		return imbridge.KeyHome
	case glfw.KeyEnd:
		return imbridge.KeyEnd
	case glfw.KeyInsert:
		return imbridge.KeyInsert
	case glfw.KeyDelete:
		return imbridge.KeyDelete
	case glfw.KeyBackspace:
		return imbridge.KeyBackspace
	case glfw.KeySpace:
		return imbridge.KeySpace
	case glfw.KeyEnter:
		return imbridge.KeyEnter
	case glfw.KeyEscape:
		return imbridge.KeyEscape
	case glfw.KeyApostrophe:
		return imbridge.KeyApostrophe
	case glfw.KeyComma:
		return imbridge.KeyComma
	case glfw.KeyMinus:
		return imbridge.KeyMinus
	case glfw.KeyPeriod:
		return imbridge.KeyPeriod
	case glfw.KeySlash:
		return imbridge.KeySlash
	case glfw.KeySemicolon:
		return imbridge.KeySemicolon
	case glfw.KeyEqual:
		return imbridge.KeyEqual
	case glfw.KeyLeftBracket:
		return imbridge.KeyLeftBracket
	case glfw.KeyBackslash:
		return imbridge.KeyBackslash
	case glfw.KeyRightBracket:
		return imbridge.KeyRightBracket
	case glfw.KeyGraveAccent:
		return imbridge.KeyGraveAccent
	case glfw.KeyCapsLock:
		return imbridge.KeyCapsLock
	case glfw.KeyScrollLock:
		return imbridge.KeyScrollLock
	case glfw.KeyNumLock:
		return imbridge.KeyNumLock
	case glfw.KeyPrintScreen:
		return imbridge.KeyPrintScreen
	case glfw.KeyPause:
		return imbridge.KeyPause
	case glfw.KeyKPDecimal:
		return imbridge.KeyKeypadDecimal
	case glfw.KeyKPDivide:
		return imbridge.KeyKeypadDivide
	case glfw.KeyKPMultiply:
		return imbridge.KeyKeypadMultiply
	case glfw.KeyKPSubtract:
		return imbridge.KeyKeypadSubtract
	case glfw.KeyKPAdd:
		return imbridge.KeyKeypadAdd
	case glfw.KeyKPEnter:
		return imbridge.KeyKeypadEnter
	case glfw.KeyKPEqual:
		return imbridge.KeyKeypadEqual
	case glfw.KeyLeftShift:
		return imbridge.KeyLeftShift
	case glfw.KeyLeftControl:
		return imbridge.KeyLeftCtrl
	case glfw.KeyLeftAlt:
		return imbridge.KeyLeftAlt
	case glfw.KeyLeftSuper:
		return imbridge.KeyLeftSuper
	case glfw.KeyRightShift:
		return imbridge.KeyRightShift
	case glfw.KeyRightControl:
		return imbridge.KeyRightCtrl
	case glfw.KeyRightAlt:
		return imbridge.KeyRightAlt
	case glfw.KeyRightSuper:
		return imbridge.KeyRightSuper
	case glfw.KeyMenu:
		return imbridge.KeyMenu
	default:
		return imbridge.KeyNone
	}
}

// keyCodes is the reverse of TranslateKey: for each bridge key, the GLFW
// codes that produce it. Built once so per-frame key polling is a couple
// of array lookups.
var keyCodes [imbridge.KeyCount][]glfw.Key

func init() {
	for code := glfw.KeySpace; code <= glfw.KeyLast; code++ {
		if k := TranslateKey(code); k != imbridge.KeyNone {
			keyCodes[k] = append(keyCodes[k], code)
		}
	}
}
