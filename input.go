package easel

// Button identifies which pointer button started a gesture.
type Button uint8

const (
	// ButtonPrimary paints.
	ButtonPrimary Button = iota

	// ButtonSecondary pans.
	ButtonSecondary

	// ButtonMiddle pans.
	ButtonMiddle
)

// Session identifies the pointer gesture in progress.
type Session uint8

const (
	// SessionNone means no pointer gesture is in progress.
	SessionNone Session = iota

	// SessionStroke means the pointer is painting.
	SessionStroke

	// SessionPan means the pointer is panning the view.
	SessionPan
)

// String returns the session name.
func (s Session) String() string {
	switch s {
	case SessionStroke:
		return "stroke"
	case SessionPan:
		return "pan"
	default:
		return "none"
	}
}

// Router turns raw pointer, wheel, and command input into surface
// operations. It owns one decision: whether a pointer gesture paints or
// pans. A gesture keeps the role it started with; button and modifier
// changes mid-drag do not re-route it.
//
// Like the surface it drives, a Router is single-owner: call it from the
// host's event goroutine only.
type Router struct {
	surface *Surface
	session Session
	panHeld bool
}

// NewRouter returns a router driving the given surface.
func NewRouter(s *Surface) *Router {
	return &Router{surface: s}
}

// Session returns the pointer gesture in progress.
func (r *Router) Session() Session {
	return r.session
}

// SetPanModifier records whether the pan modifier key (typically space)
// is held. While held, a primary-button drag pans instead of painting.
func (r *Router) SetPanModifier(held bool) {
	r.panHeld = held
}

// PointerDown starts a gesture. The secondary and middle buttons always
// pan; the primary button paints unless the pan modifier is held.
//
// A down event arriving mid-gesture (lost pointer capture) closes the old
// gesture where it last was before starting the new one. A dangling
// stroke must not be finished at the new down position: that would paint
// a segment the pointer never traced.
//
// pressure is the pen pressure in [0, 1]; pass a non-positive value for
// devices without pressure (a mouse), which paints at full pressure.
func (r *Router) PointerDown(pos Point, btn Button, pressure float32) {
	if r.session != SessionNone {
		Logger().Warn("pointer down during gesture; closing previous gesture in place",
			"session", r.session)
		switch r.session {
		case SessionStroke:
			r.surface.finishStrokeInPlace()
		case SessionPan:
			r.surface.PanStop()
		}
		r.session = SessionNone
	}
	if btn != ButtonPrimary || r.panHeld {
		r.session = SessionPan
		r.surface.PanStart(pos)
		return
	}
	r.session = SessionStroke
	r.surface.StrokeStart(pos, normalizePressure(pressure))
}

// PointerMove continues the gesture in progress. Moves with no gesture in
// progress (hover) are ignored.
func (r *Router) PointerMove(pos Point, pressure float32) {
	switch r.session {
	case SessionStroke:
		r.surface.StrokeContinue(pos, normalizePressure(pressure))
	case SessionPan:
		r.surface.PanMove(pos)
	}
}

// PointerUp ends the gesture in progress. An up with no gesture in
// progress is ignored.
func (r *Router) PointerUp(pos Point, pressure float32) {
	switch r.session {
	case SessionStroke:
		r.surface.StrokeFinish(pos, normalizePressure(pressure))
	case SessionPan:
		r.surface.PanStop()
	}
	r.session = SessionNone
}

// Wheel zooms the active view around the pointer position. delta is in
// scroll notches; positive zooms in.
func (r *Router) Wheel(delta float32, pos Point) {
	r.surface.Zoom(delta, pos)
}

// Undo routes an undo command. Ignored while painting.
func (r *Router) Undo() bool {
	return r.surface.Undo()
}

// Redo routes a redo command. Ignored while painting.
func (r *Router) Redo() bool {
	return r.surface.Redo()
}

// ToggleMode switches between the texture and mesh views. A paint gesture
// in progress is finished in place first, so its daubs stay undoable.
func (r *Router) ToggleMode() {
	if r.session == SessionStroke {
		r.surface.finishStrokeInPlace()
		r.session = SessionNone
	}
	if r.surface.Mode() == ModeTexture {
		r.surface.SetMode(ModeMesh)
	} else {
		r.surface.SetMode(ModeTexture)
	}
}

// ResetView restores the active view's pan and zoom.
func (r *Router) ResetView() {
	r.surface.ResetTransform()
}

// normalizePressure maps device pressure onto [0, 1], treating a missing
// reading (zero or negative, as mice report) as full pressure.
func normalizePressure(p float32) float32 {
	if p <= 0 {
		return 1
	}
	return clamp01(p)
}
