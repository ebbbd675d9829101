package orrery

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// transitionEntry pairs one ring element with its position tweens.
type transitionEntry struct {
	elem   *RingElement
	tx, ty *gween.Tween
}

// ringTransition animates ring elements from their previous screen
// positions to a freshly computed layout after a recenter. Elements that
// did not exist in the previous ring grow out from the center. Angles are
// already final; only Pos is animated. Call Update(dt) each frame.
type ringTransition struct {
	entries []transitionEntry
	done    bool
}

// newRingTransition captures the ring's post-layout positions as targets
// and rewinds each element to its starting point. from maps element ids to
// their positions in the previous layout.
func newRingTransition(ring *Ring, from map[uint32]Vec2, duration float32, fn ease.TweenFunc) *ringTransition {
	t := &ringTransition{}
	for _, e := range ring.Elements() {
		start, ok := from[e.ID]
		if !ok {
			start = ring.Center
		}
		target := e.Pos
		if start == target {
			continue
		}
		e.Pos = start
		t.entries = append(t.entries, transitionEntry{
			elem: e,
			tx:   gween.New(float32(start.X), float32(target.X), duration, fn),
			ty:   gween.New(float32(start.Y), float32(target.Y), duration, fn),
		})
	}
	if len(t.entries) == 0 {
		t.done = true
	}
	return t
}

// Update advances all position tweens by dt seconds.
func (t *ringTransition) Update(dt float32) {
	if t.done {
		return
	}
	allDone := true
	for _, en := range t.entries {
		x, fx := en.tx.Update(dt)
		y, fy := en.ty.Update(dt)
		en.elem.Pos = Vec2{X: float64(x), Y: float64(y)}
		if !fx || !fy {
			allDone = false
		}
	}
	t.done = allDone
}
