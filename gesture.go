package orrery

import "time"

// --- Per-contact state ---

// contact is the ephemeral record the recognizer owns for the duration of
// one press. Created on press, destroyed on release or cancel.
type contact struct {
	id        int
	start     Vec2
	pos       Vec2
	pressedAt time.Time
	target    any
	panning   bool // movement exceeded the threshold at least once
	longHeld  bool // longPress already fired for this contact
	multi     bool // was ever part of a multi-contact interaction
}

// --- Pinch state ---

type pinchTracker struct {
	active      bool
	id0, id1    int
	initialDist float64
}

func (p *pinchTracker) involves(id int) bool {
	return p.active && (p.id0 == id || p.id1 == id)
}

// --- Handler registry ---

type gestureHandler struct {
	id uint32
	fn func(GestureEvent)
}

// GestureHandle allows removing a registered gesture callback.
type GestureHandle struct {
	id   uint32
	kind GestureKind
	rec  *Recognizer
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h GestureHandle) Remove() {
	if h.rec == nil {
		return
	}
	s := h.rec.handlers[h.kind]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = gestureHandler{}
			h.rec.handlers[h.kind] = s[:len(s)-1]
			return
		}
	}
}

// --- Recognizer ---

// Recognizer converts raw pointer press/move/release/cancel notifications
// into semantic gesture events, shielding downstream logic from
// input-device differences. It is single-threaded: feed it events and call
// Update once per frame so its deadline timers can fire.
//
// At most one terminal classification (tap, doubleTap, or longPress) fires
// per physical interaction; pan and pinch stream while their thresholds
// are exceeded.
type Recognizer struct {
	cfg      GestureConfig
	contacts map[int]*contact
	pinch    pinchTracker

	// Long-press deadline. Armed only while a single contact is active;
	// cleared the instant movement or a second contact invalidates it.
	longPressAt  time.Time
	longPressID  int
	longPressSet bool

	// Pending single-tap deadline. A release that qualifies as a tap
	// candidate waits out the double-tap window here before emitting.
	tapDue   time.Time
	tapEvent GestureEvent
	tapSet   bool

	// Previous tap baseline for double-tap pairing. Cleared by a completed
	// doubleTap so a third tap cannot mis-pair into a second one.
	lastTapAt  time.Time
	lastTapPos Vec2
	hasLastTap bool

	handlers map[GestureKind][]gestureHandler
	nextID   uint32

	now func() time.Time
}

// NewRecognizer creates a gesture recognizer with the given thresholds.
func NewRecognizer(cfg GestureConfig) *Recognizer {
	return &Recognizer{
		cfg:      cfg,
		contacts: make(map[int]*contact),
		handlers: make(map[GestureKind][]gestureHandler),
		now:      time.Now,
	}
}

// On registers a callback for the given gesture kind.
func (r *Recognizer) On(kind GestureKind, fn func(GestureEvent)) GestureHandle {
	r.nextID++
	id := r.nextID
	r.handlers[kind] = append(r.handlers[kind], gestureHandler{id: id, fn: fn})
	return GestureHandle{id: id, kind: kind, rec: r}
}

func (r *Recognizer) emit(ev GestureEvent) {
	for _, h := range r.handlers[ev.Kind] {
		h.fn(ev)
	}
}

// ActiveContacts returns the number of currently tracked contacts.
func (r *Recognizer) ActiveContacts() int {
	return len(r.contacts)
}

// --- Event entry points ---

// PointerDown begins tracking a contact. id is a stable pointer identifier
// (0 for the mouse, touch slots otherwise); target is whatever the caller
// resolved under the press position and is carried on every event this
// contact produces. A duplicate press for an already-tracked id is ignored.
func (r *Recognizer) PointerDown(id int, pos Vec2, target any) {
	if _, ok := r.contacts[id]; ok {
		return
	}
	c := &contact{
		id:        id,
		start:     pos,
		pos:       pos,
		pressedAt: r.now(),
		target:    target,
	}
	r.contacts[id] = c

	switch len(r.contacts) {
	case 1:
		// Sole contact: arm the long-press timer.
		r.longPressAt = c.pressedAt.Add(r.cfg.LongPressDelay)
		r.longPressID = id
		r.longPressSet = true
	case 2:
		// A second touch means the gesture is at least two-finger; it
		// cannot resolve to a tap, long-press, or pan anymore.
		r.longPressSet = false
		for _, cc := range r.contacts {
			cc.multi = true
		}
		r.armPinch()
	default:
		c.multi = true
		r.pinch.active = false
	}
}

// armPinch records the two active contacts and their initial separation.
func (r *Recognizer) armPinch() {
	var ids [2]int
	n := 0
	for id := range r.contacts {
		ids[n] = id
		n++
		if n == 2 {
			break
		}
	}
	c0 := r.contacts[ids[0]]
	c1 := r.contacts[ids[1]]
	r.pinch = pinchTracker{
		active:      true,
		id0:         ids[0],
		id1:         ids[1],
		initialDist: c0.pos.Dist(c1.pos),
	}
}

// PointerMove updates a contact's position and streams pan or pinch events
// once the corresponding threshold is exceeded. Moves for unknown ids are
// ignored (tolerates out-of-order platform delivery).
func (r *Recognizer) PointerMove(id int, pos Vec2) {
	c, ok := r.contacts[id]
	if !ok {
		return
	}
	prev := c.pos
	c.pos = pos

	switch len(r.contacts) {
	case 1:
		if pos.Dist(c.start) > r.cfg.MoveThreshold {
			// Movement invalidates the long-press wait for this contact.
			if r.longPressSet && r.longPressID == id {
				r.longPressSet = false
			}
			c.panning = true
			r.emit(GestureEvent{
				Kind:     GesturePan,
				Position: pos,
				Delta:    pos.Sub(prev),
				Target:   c.target,
				Pointer:  id,
				Time:     r.now(),
			})
		}
	case 2:
		if !r.pinch.involves(id) {
			return
		}
		c0 := r.contacts[r.pinch.id0]
		c1 := r.contacts[r.pinch.id1]
		cur := c0.pos.Dist(c1.pos)
		change := cur - r.pinch.initialDist
		if change < 0 {
			change = -change
		}
		if change > r.cfg.PinchThreshold {
			scale := 1.0
			if r.pinch.initialDist > 0 {
				scale = cur / r.pinch.initialDist
			}
			r.emit(GestureEvent{
				Kind:     GesturePinch,
				Position: c0.pos.Mid(c1.pos),
				Scale:    scale,
				Target:   c.target,
				Pointer:  id,
				Time:     r.now(),
			})
		}
	}
}

// PointerUp ends a contact and classifies the interaction. Releases for
// unknown ids are ignored.
func (r *Recognizer) PointerUp(id int, pos Vec2) {
	c, ok := r.contacts[id]
	if !ok {
		return
	}
	delete(r.contacts, id)
	if r.longPressSet && r.longPressID == id {
		r.longPressSet = false
	}
	if r.pinch.involves(id) {
		r.pinch.active = false
	}

	now := r.now()
	displacement := pos.Dist(c.start)
	elapsed := now.Sub(c.pressedAt)

	// Anything that panned, long-pressed, or exceeded the tap bounds ends
	// without a terminal gesture beyond what was already streamed.
	if c.panning || c.longHeld || c.multi {
		return
	}
	if displacement >= r.cfg.MoveThreshold || elapsed >= r.cfg.LongPressDelay {
		return
	}

	// Tap candidate: pair with the previous tap or wait out the window.
	if r.hasLastTap &&
		now.Sub(r.lastTapAt) < r.cfg.DoubleTapWindow &&
		pos.Dist(r.lastTapPos) < r.cfg.MoveThreshold {
		r.tapSet = false     // no spurious single tap follows
		r.hasLastTap = false // completed pair resets the baseline
		r.emit(GestureEvent{
			Kind:     GestureDoubleTap,
			Position: pos,
			Target:   c.target,
			Pointer:  id,
			Time:     now,
		})
		return
	}

	// A pending tap that did not pair with this release never will;
	// flush it before arming the new candidate.
	if r.tapSet {
		r.tapSet = false
		r.emit(r.tapEvent)
	}

	r.tapDue = now.Add(r.cfg.DoubleTapWindow)
	r.tapEvent = GestureEvent{
		Kind:     GestureTap,
		Position: pos,
		Target:   c.target,
		Pointer:  id,
		Time:     now,
	}
	r.tapSet = true
	r.lastTapAt = now
	r.lastTapPos = pos
	r.hasLastTap = true
}

// PointerCancel discards a contact and its pending timers without emitting
// anything (system-interrupted touch).
func (r *Recognizer) PointerCancel(id int) {
	if _, ok := r.contacts[id]; !ok {
		return
	}
	delete(r.contacts, id)
	if r.longPressSet && r.longPressID == id {
		r.longPressSet = false
	}
	if r.pinch.involves(id) {
		r.pinch.active = false
	}
}

// Update fires any expired deadline timers. Call once per frame; the
// recognizer never fires a timer from anywhere else, so cancellation is
// always synchronous with the event that invalidated the timer.
func (r *Recognizer) Update() {
	now := r.now()

	if r.longPressSet && !now.Before(r.longPressAt) {
		r.longPressSet = false
		if c, ok := r.contacts[r.longPressID]; ok {
			c.longHeld = true
			r.emit(GestureEvent{
				Kind:     GestureLongPress,
				Position: c.pos,
				Target:   c.target,
				Pointer:  c.id,
				Time:     now,
			})
		}
	}

	if r.tapSet && !now.Before(r.tapDue) {
		r.tapSet = false
		r.emit(r.tapEvent)
	}
}
