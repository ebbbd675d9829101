package orrery

import "math"

// ringStartAngle places the first child at the top of the orbit.
const ringStartAngle = -math.Pi / 2

// RingElement is one positioned bubble: the centered idea at level 0 or an
// orbiting child at level 1. Angle and Pos are mutated in place during
// drag and momentum; everything is recomputed wholesale on recenter.
type RingElement struct {
	ID      uint32
	Idea    *Idea
	Angle   float64
	Radius  float64
	Pos     Vec2
	Level   int
	Visible bool

	// Dragging is the visual grabbed flag. Its on/off transitions are part
	// of the drag contract; rendering decides what it looks like.
	Dragging bool
}

// Ring owns the angular layout of the currently visible bubbles and the
// geometry used to convert pointer positions into angles.
type Ring struct {
	// Center is the screen position the orbit revolves around.
	Center Vec2
	// OrbitRadius is the distance of level-1 bubbles from Center.
	OrbitRadius float64
	// BubbleRadius is the hit-test radius of each bubble.
	BubbleRadius float64

	elements []*RingElement
}

// NewRing creates an empty ring with the given geometry.
func NewRing(center Vec2, orbitRadius, bubbleRadius float64) *Ring {
	return &Ring{
		Center:       center,
		OrbitRadius:  orbitRadius,
		BubbleRadius: bubbleRadius,
	}
}

// Layout rebuilds the element collection for a newly centered idea: the
// idea itself at the center, its children at equal angular spacing on the
// orbit starting from the top.
func (r *Ring) Layout(center *Idea) {
	r.elements = r.elements[:0]

	r.elements = append(r.elements, &RingElement{
		ID:      center.ID,
		Idea:    center,
		Radius:  0,
		Pos:     r.Center,
		Level:   LevelCenter,
		Visible: true,
	})

	children := center.Children()
	if len(children) == 0 {
		return
	}
	step := 2 * math.Pi / float64(len(children))
	for i, child := range children {
		angle := normalizeAngle(ringStartAngle + float64(i)*step)
		r.elements = append(r.elements, &RingElement{
			ID:      child.ID,
			Idea:    child,
			Angle:   angle,
			Radius:  r.OrbitRadius,
			Pos:     r.positionAt(angle, r.OrbitRadius),
			Level:   LevelOrbit,
			Visible: true,
		})
	}
}

// Elements returns the element list. The returned slice MUST NOT be
// mutated by the caller.
func (r *Ring) Elements() []*RingElement {
	return r.elements
}

// Element returns the element for the given idea id, or nil.
func (r *Ring) Element(id uint32) *RingElement {
	for _, e := range r.elements {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// CenterElement returns the level-0 element, or nil if the ring is empty.
func (r *Ring) CenterElement() *RingElement {
	for _, e := range r.elements {
		if e.Level == LevelCenter {
			return e
		}
	}
	return nil
}

// HitTest returns the topmost visible bubble containing pos, or nil.
// Orbit bubbles are tested before the center so an overlapping child wins.
func (r *Ring) HitTest(pos Vec2) *RingElement {
	var hit *RingElement
	for _, e := range r.elements {
		if !e.Visible {
			continue
		}
		if pos.Dist(e.Pos) <= r.BubbleRadius {
			if hit == nil || e.Level > hit.Level {
				hit = e
			}
		}
	}
	return hit
}

// AngleOf returns the angle of a screen position relative to the ring
// center.
func (r *Ring) AngleOf(pos Vec2) float64 {
	return math.Atan2(pos.Y-r.Center.Y, pos.X-r.Center.X)
}

// DistFromCenter returns the distance of a screen position from the ring
// center.
func (r *Ring) DistFromCenter(pos Vec2) float64 {
	return pos.Dist(r.Center)
}

// Rotate applies an angular delta rigidly to every orbit element and
// recomputes its position from angle and fixed radius. The stored angle
// stays normalized.
func (r *Ring) Rotate(delta float64) {
	for _, e := range r.elements {
		if e.Level != LevelOrbit {
			continue
		}
		e.Angle = normalizeAngle(e.Angle + delta)
		e.Pos = r.positionAt(e.Angle, e.Radius)
	}
}

// positionAt converts polar ring coordinates to a screen position.
func (r *Ring) positionAt(angle, radius float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: r.Center.X + cos*radius,
		Y: r.Center.Y + sin*radius,
	}
}
