package orrery

import "github.com/hajimehoshi/ebiten/v2"

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// rawPointer carries the minimal per-pointer edge state the input layer
// needs to turn polled ebiten input into press/move/release notifications.
// The recognizer owns the real contact records.
type rawPointer struct {
	down bool
	last Vec2
}

// processInput polls mouse and touch state and feeds the recognizer.
// Called from Map.Update. Injected synthetic events take priority so
// scripted interactions stay deterministic.
func (m *Map) processInput() {
	if m.processInjectedInput() {
		return
	}
	m.processMousePointer()
	m.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (m *Map) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pos := Vec2{X: float64(mx), Y: float64(my)}
	m.feedPointer(0, pos, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// processTouchPointers handles touch input (pointers 1-9).
func (m *Map) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(m.prevTouchIDs[:0])
	m.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := m.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		m.feedPointer(slot, Vec2{X: float64(tx), Y: float64(ty)}, true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if m.touchUsed[i] && !activeSlots[i] {
			ps := &m.pointers[i]
			if ps.down {
				m.feedPointer(i, ps.last, false)
			}
			m.touchUsed[i] = false
			m.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (m *Map) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if m.touchUsed[i] && m.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !m.touchUsed[i] {
			m.touchUsed[i] = true
			m.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// feedPointer runs press/move/release edge detection for a single pointer
// and forwards the transitions to the recognizer. The hit target is
// resolved once at press time and travels with the contact.
func (m *Map) feedPointer(id int, pos Vec2, pressed bool) {
	ps := &m.pointers[id]
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.last = pos
		m.rec.PointerDown(id, pos, rawTarget(m.ring.HitTest(pos)))
	case pressed && ps.down:
		if pos != ps.last {
			ps.last = pos
			m.rec.PointerMove(id, pos)
		}
	case !pressed && ps.down:
		ps.down = false
		m.rec.PointerUp(id, pos)
		m.orbit.EndDrag(id)
	}
}

// rawTarget converts a possibly-nil element into the recognizer's target
// value without wrapping nil in a non-nil interface.
func rawTarget(e *RingElement) any {
	if e == nil {
		return nil
	}
	return e
}
