package imbridge

// cursorArbiter owns at most one override of the host cursor. Entering
// the override snapshots the host's cursor shape and visibility exactly
// once; every exit either restores that snapshot exactly once or, where
// the host may have changed the cursor itself in the meantime, drops the
// snapshot without writing.
type cursorArbiter struct {
	host   Host
	mode   CursorControlMode
	active bool
	saved  HostCursor
}

func newCursorArbiter(host Host, mode CursorControlMode) *cursorArbiter {
	return &cursorArbiter{host: host, mode: mode}
}

// update runs the per-frame transition. Evaluation order matters: the
// engine's suppress flag wins over everything, then the disabled mode,
// then a grabbed/locked host cursor, then the capture intent.
func (a *cursorArbiter) update(engine Engine) {
	if engine.CursorChangeSuppressed() {
		a.restore()
		return
	}
	if a.mode == CursorControlDisabled {
		// The host may have repositioned its own cursor while we held
		// the override; restoring the snapshot would clobber that.
		a.release()
		return
	}
	if a.host.CursorGrabbed() && a.mode != CursorControlAlways {
		a.release()
		return
	}
	if a.mode != CursorControlAlways && !engine.WantsMouseCapture() {
		a.restore()
		return
	}

	if !a.active {
		a.saved = a.host.Cursor()
		a.active = true
	}
	shape := engine.CursorShape()
	if engine.DrawsCursor() || shape == CursorNone {
		a.host.SetCursor(HostCursor{Shape: a.saved.Shape, Visible: false})
		return
	}
	a.host.SetCursor(HostCursor{Shape: hostCursorShape(shape), Visible: true})
}

// restore writes the snapshot back and leaves the override. Calling it
// while inactive is a no-op, so restoration happens at most once per
// override.
func (a *cursorArbiter) restore() {
	if !a.active {
		return
	}
	a.host.SetCursor(a.saved)
	a.active = false
	a.saved = HostCursor{}
}

// release leaves the override without writing to the host cursor.
func (a *cursorArbiter) release() {
	a.active = false
	a.saved = HostCursor{}
}

// hostCursorShape maps an engine-requested shape to a host shape.
// Unmapped values fall back to the arrow.
func hostCursorShape(s CursorShape) CursorShape {
	switch s {
	case CursorArrow, CursorTextInput, CursorResizeAll, CursorResizeNS,
		CursorResizeEW, CursorResizeNESW, CursorResizeNWSE, CursorHand,
		CursorNotAllowed:
		return s
	default:
		return CursorArrow
	}
}
