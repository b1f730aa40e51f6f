package imbridge

import "github.com/willgale/imbridge/fontatlas"

// Engine is the immediate-mode GUI engine the bridge feeds input to and
// renders output from. The bridge treats it as opaque: it pushes events
// in, reads a handful of per-frame intents out, and asks it once per
// frame to finalize its draw data.
//
// All methods are called from the frame thread, with one exception:
// AddInputCharacter is invoked from the host's event dispatch whenever a
// text-input event arrives, which may be at any point between frames.
type Engine interface {
	// Per-frame display and timing state.
	SetDisplaySize(size Vec2)
	SetDisplayScale(scale Vec2)
	SetDeltaTime(dt float32)

	// Input sinks. Mouse position is in logical display space. Analog
	// keys carry both a boolean (thresholded) and a raw magnitude.
	SetMousePosition(pos Vec2)
	SetMouseButton(button int, down bool)
	AddMouseWheel(dx, dy float32)
	SetKey(key Key, down bool)
	SetAnalogKey(key Key, down bool, value float32)
	AddInputCharacter(ch rune)

	// The engine's internal clipboard, bridged to the host clipboard on
	// copy/paste shortcuts.
	ClipboardText() string
	SetClipboardText(text string)

	// Intents the bridge reads back each frame.
	WantsMouseCapture() bool
	WantsKeyboardCapture() bool
	CursorShape() CursorShape
	DrawsCursor() bool
	CursorChangeSuppressed() bool

	// Font atlas handoff: the bridge builds the atlas and uploads its
	// pixels; the engine keeps the atlas for glyph metrics and stamps
	// the texture onto the draw commands it emits.
	SetFontAtlas(atlas *fontatlas.Atlas)
	SetFontTexture(tex TextureID)

	// Render finalizes the current frame into draw data. May return nil
	// when there is nothing to draw.
	Render() *DrawData
}
