package imbridge

// inputSynchronizer turns the host's per-frame state into engine input
// events. It owns the scroll accumulator and the copy/paste edge
// detection, and runs the cursor arbiter after the capture intent for
// the frame is known.
type inputSynchronizer struct {
	host   Host
	engine Engine
	cfg    *Config
	cursor *cursorArbiter

	// Last observed absolute scroll offset; the engine wants deltas.
	lastScroll Vec2

	copyWasDown  bool
	pasteWasDown bool
}

func newInputSynchronizer(host Host, engine Engine, cfg *Config, cursor *cursorArbiter) *inputSynchronizer {
	return &inputSynchronizer{
		host:   host,
		engine: engine,
		cfg:    cfg,
		cursor: cursor,
		// The first frame's wheel delta is relative to the host's
		// current offset, not to zero.
		lastScroll: host.ScrollOffset(),
	}
}

// update runs one input pass. Step order matters: display geometry first
// so pointer scaling is consistent with the display size the engine
// sees, and the cursor arbiter after the rest so it observes this
// frame's capture intent.
func (s *inputSynchronizer) update(dt float32) {
	logical := s.host.DisplaySize()
	scale := displayScale(logical, s.host.FramebufferSize())
	s.engine.SetDisplaySize(logical)
	s.engine.SetDisplayScale(scale)

	s.engine.SetDeltaTime(dt)

	for b := 0; b < MouseButtonCount; b++ {
		s.engine.SetMouseButton(b, s.host.MouseButtonDown(b))
	}

	pos := s.host.CursorPos()
	s.engine.SetMousePosition(Vec2{X: pos.X / scale.X, Y: pos.Y / scale.Y})

	scroll := s.host.ScrollOffset()
	s.engine.AddMouseWheel(
		(scroll.X-s.lastScroll.X)*s.cfg.ScrollSensitivity,
		(scroll.Y-s.lastScroll.Y)*s.cfg.ScrollSensitivity,
	)
	s.lastScroll = scroll

	for k := firstKeyboardKey; k <= lastKeyboardKey; k++ {
		s.engine.SetKey(k, s.host.KeyDown(k))
	}
	ctrl := s.host.KeyDown(KeyLeftCtrl) || s.host.KeyDown(KeyRightCtrl)
	shift := s.host.KeyDown(KeyLeftShift) || s.host.KeyDown(KeyRightShift)
	alt := s.host.KeyDown(KeyLeftAlt) || s.host.KeyDown(KeyRightAlt)
	super := s.host.KeyDown(KeyLeftSuper) || s.host.KeyDown(KeyRightSuper)
	s.engine.SetKey(KeyModCtrl, ctrl)
	s.engine.SetKey(KeyModShift, shift)
	s.engine.SetKey(KeyModAlt, alt)
	s.engine.SetKey(KeyModSuper, super)

	s.bridgeClipboard(ctrl, alt)

	s.cursor.update(s.engine)

	if s.cfg.GamepadNavigation {
		s.forwardGamepad()
	}
}

// bridgeClipboard moves text between the engine's internal clipboard and
// the host clipboard on fresh ctrl-C / ctrl-V presses. Edge-triggered so
// a held shortcut transfers once; ctrl+alt combos are left alone because
// they are distinct shortcuts on several keyboard layouts.
func (s *inputSynchronizer) bridgeClipboard(ctrl, alt bool) {
	copyDown := s.host.KeyDown(KeyC)
	pasteDown := s.host.KeyDown(KeyV)
	if ctrl && !alt {
		if copyDown && !s.copyWasDown {
			s.host.SetClipboardText(s.engine.ClipboardText())
		}
		if pasteDown && !s.pasteWasDown {
			s.engine.SetClipboardText(s.host.ClipboardText())
		}
	}
	s.copyWasDown = copyDown
	s.pasteWasDown = pasteDown
}

// gamepadButtonKeys maps discrete gamepad buttons to engine keys.
var gamepadButtonKeys = [...]struct {
	button int
	key    Key
}{
	{GamepadButtonStart, KeyGamepadStart},
	{GamepadButtonBack, KeyGamepadBack},
	{GamepadButtonY, KeyGamepadFaceUp},
	{GamepadButtonA, KeyGamepadFaceDown},
	{GamepadButtonX, KeyGamepadFaceLeft},
	{GamepadButtonB, KeyGamepadFaceRight},
	{GamepadButtonDpadUp, KeyGamepadDpadUp},
	{GamepadButtonDpadDown, KeyGamepadDpadDown},
	{GamepadButtonDpadLeft, KeyGamepadDpadLeft},
	{GamepadButtonDpadRight, KeyGamepadDpadRight},
	{GamepadButtonLeftBumper, KeyGamepadL1},
	{GamepadButtonRightBumper, KeyGamepadR1},
	{GamepadButtonLeftThumb, KeyGamepadL3},
	{GamepadButtonRightThumb, KeyGamepadR3},
}

const stickDeadZone = 0.1

func (s *inputSynchronizer) forwardGamepad() {
	gp, ok := s.host.Gamepad()
	if !ok {
		return
	}
	for _, m := range gamepadButtonKeys {
		s.engine.SetKey(m.key, gp.Buttons[m.button])
	}

	// Triggers rest at -1; anything above that counts as pressed.
	lt := gp.Axes[GamepadAxisLeftTrigger]
	rt := gp.Axes[GamepadAxisRightTrigger]
	s.engine.SetAnalogKey(KeyGamepadL2, lt > -1, lt)
	s.engine.SetAnalogKey(KeyGamepadR2, rt > -1, rt)

	lx := gp.Axes[GamepadAxisLeftX]
	ly := gp.Axes[GamepadAxisLeftY]
	s.engine.SetAnalogKey(KeyGamepadLStickLeft, lx < -stickDeadZone, lx)
	s.engine.SetAnalogKey(KeyGamepadLStickRight, lx > stickDeadZone, lx)
	s.engine.SetAnalogKey(KeyGamepadLStickUp, ly < -stickDeadZone, ly)
	s.engine.SetAnalogKey(KeyGamepadLStickDown, ly > stickDeadZone, ly)
}

// displayScale derives the physical-per-logical scale factor. A
// degenerate logical size yields the identity scale.
func displayScale(logical, framebuffer Vec2) Vec2 {
	if logical.X <= 0 || logical.Y <= 0 {
		return Vec2{X: 1, Y: 1}
	}
	return Vec2{X: framebuffer.X / logical.X, Y: framebuffer.Y / logical.Y}
}
