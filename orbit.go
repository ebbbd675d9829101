package orrery

import (
	"math"
	"time"
)

// --- Drag state ---

// dragState is the single mutable drag record. Only one element may be
// dragged at a time; the whole record is reset to its zero value at every
// session boundary. dragging == true implies distance has exceeded the
// activation threshold and element is non-nil.
type dragState struct {
	dragging   bool
	element    *RingElement
	elementID  uint32
	pointer    int
	startAngle float64
	angle      float64 // pointer angle as of the previous frame
	startPos   Vec2
	lastPos    Vec2
	distance   float64 // peak straight-line displacement from startPos
	velocity   float64 // eased angular delta applied last frame
}

// --- Momentum ---

// coast is the post-release momentum unit: a per-frame resumable step with
// an externally clearable active flag, so a new drag can preempt it
// deterministically.
type coast struct {
	active   bool
	velocity float64
}

// --- Orbit ---

// Orbit interprets pan gestures targeting orbit bubbles as rigid rotation
// of the ring, with radius-dependent speed scaling, eased and clamped
// per-frame deltas, post-release momentum, and drag/tap arbitration.
type Orbit struct {
	cfg  OrbitConfig
	ring *Ring

	drag     dragState
	momentum coast

	// lastDragEnd survives drag resets; it drives the tap grace window.
	lastDragEnd time.Time

	now func() time.Time
}

// NewOrbit creates an orbital engine operating on the given ring.
func NewOrbit(ring *Ring, cfg OrbitConfig) *Orbit {
	return &Orbit{
		cfg:  cfg,
		ring: ring,
		now:  time.Now,
	}
}

// Dragging reports whether an activated drag session is in progress.
func (o *Orbit) Dragging() bool {
	return o.drag.dragging
}

// Coasting reports whether the momentum loop is running.
func (o *Orbit) Coasting() bool {
	return o.momentum.active
}

// Velocity returns the angular velocity of the current drag or coast in
// radians per frame.
func (o *Orbit) Velocity() float64 {
	if o.momentum.active {
		return o.momentum.velocity
	}
	return o.drag.velocity
}

// HandlePan consumes one pan gesture event. Events whose target is not an
// orbit bubble are ignored. A pan while momentum is coasting cancels the
// coast; live dragging takes priority.
func (o *Orbit) HandlePan(ev GestureEvent) {
	e, ok := ev.Target.(*RingElement)
	if !ok || e.Level != LevelOrbit {
		return
	}
	o.momentum.active = false

	s := &o.drag
	if s.element != e {
		o.resetDrag()
		elemAngle := o.ring.AngleOf(e.Pos)
		s.element = e
		s.elementID = e.ID
		s.pointer = ev.Pointer
		s.startAngle = elemAngle
		s.angle = elemAngle
		s.startPos = ev.Position.Sub(ev.Delta)
		s.lastPos = s.startPos
		e.Dragging = true
	}

	if d := ev.Position.Dist(s.startPos); d > s.distance {
		s.distance = d
	}
	s.lastPos = ev.Position

	if !s.dragging {
		if s.distance <= o.cfg.DragActivation {
			// Below the activation threshold movement is jitter, not an
			// intentional drag; taps stay uncorrupted.
			return
		}
		s.dragging = true
		// Seed the tracking angle from the pointer so the first rotation
		// frame measures pointer motion, not the grab offset.
		s.angle = o.ring.AngleOf(ev.Position)
		return
	}

	cur := o.ring.AngleOf(ev.Position)
	raw := cur - s.angle
	s.angle = cur

	delta := shortArc(raw) * o.speedMultiplier(e)
	eased := easeDelta(delta, o.cfg.MaxFrameDelta)
	o.ring.Rotate(eased)
	s.velocity = eased
}

// EndDrag closes the gesture session owned by the given pointer. If it
// ended while actively dragging with enough retained velocity, the
// momentum coast starts. Releases of other pointers are no-ops.
func (o *Orbit) EndDrag(pointer int) {
	s := &o.drag
	if s.element == nil || s.pointer != pointer {
		return
	}
	if s.dragging {
		o.lastDragEnd = o.now()
		if math.Abs(s.velocity) > o.cfg.MinVelocity {
			o.momentum.active = true
			o.momentum.velocity = s.velocity
		}
	}
	o.resetDrag()
}

// CancelMomentum stops the coast immediately.
func (o *Orbit) CancelMomentum() {
	o.momentum.active = false
}

// Reset ends the session outright: momentum stops and the drag record
// returns to its zero value. Called when a new selection is committed.
func (o *Orbit) Reset() {
	o.momentum.active = false
	o.resetDrag()
}

// Update advances the momentum coast by one frame: the decayed delta goes
// through the same eased rotation path as live dragging, then velocity
// shrinks by the friction factor until it falls below the floor.
func (o *Orbit) Update() {
	if !o.momentum.active {
		return
	}
	delta := o.momentum.velocity * o.cfg.MomentumScale
	o.ring.Rotate(easeDelta(delta, o.cfg.MaxFrameDelta))
	o.momentum.velocity *= o.cfg.Friction
	if math.Abs(o.momentum.velocity) < o.cfg.MinVelocity {
		o.momentum.active = false
	}
}

// SuppressTap reports whether a tap released at the given time must not
// resolve to a selection: either the live session is already a guarded
// drag, or the release fell inside the grace window after the most recent
// drag ended.
func (o *Orbit) SuppressTap(at time.Time) bool {
	if o.drag.dragging && o.drag.distance > o.cfg.SelectionGuard {
		return true
	}
	if !o.lastDragEnd.IsZero() && at.Sub(o.lastDragEnd) < o.cfg.TapGrace {
		return true
	}
	return false
}

// resetDrag clears the grabbed visual flag and zeroes the session record.
func (o *Orbit) resetDrag() {
	if o.drag.element != nil {
		o.drag.element.Dragging = false
	}
	o.drag = dragState{}
}

// speedMultiplier scales angular deltas inversely with the grabbed
// element's distance from the ring center, clamped so far elements remain
// controllable and a degenerate zero distance cannot divide out to
// infinity.
func (o *Orbit) speedMultiplier(e *RingElement) float64 {
	dist := o.ring.DistFromCenter(e.Pos)
	if dist < 1e-9 {
		return o.cfg.MaxSpeed
	}
	m := o.cfg.SpeedRadius / dist
	if m < o.cfg.MinSpeed {
		return o.cfg.MinSpeed
	}
	if m > o.cfg.MaxSpeed {
		return o.cfg.MaxSpeed
	}
	return m
}

// easeDelta applies smoothstep easing to an angular delta and clamps its
// magnitude to max, so fast flicks never jump the ring more than the
// per-frame bound.
func easeDelta(delta, max float64) float64 {
	mag := math.Abs(delta)
	t := mag / max
	if t > 1 {
		t = 1
	}
	eased := max * t * t * (3 - 2*t)
	return math.Copysign(eased, delta)
}
