package orrery

// syntheticPointerEvent represents a single injected pointer event.
// Injected events flow through the same pointer path as real mouse input.
type syntheticPointerEvent struct {
	pos     Vec2
	pressed bool
}

// InjectPress queues a pointer press at the given screen position.
// The event is consumed on the next frame's input processing.
func (m *Map) InjectPress(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{
		pos: Vec2{X: x, Y: y}, pressed: true,
	})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (m *Map) InjectMove(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{
		pos: Vec2{X: x, Y: y}, pressed: true,
	})
}

// InjectRelease queues a pointer release at the given screen position.
func (m *Map) InjectRelease(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{
		pos: Vec2{X: x, Y: y}, pressed: false,
	})
}

// InjectTap queues a press followed by a release at the same position.
// Consumes two frames.
func (m *Map) InjectTap(x, y float64) {
	m.InjectPress(x, y)
	m.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The whole sequence consumes frames frames; minimum is 2.
func (m *Map) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	m.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		m.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	m.InjectRelease(toX, toY)
}

// InjectPending returns the number of queued synthetic events.
func (m *Map) InjectPending() int {
	return len(m.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the pointer path as pointer 0. Returns true if an event was
// consumed (real input is skipped that frame).
func (m *Map) processInjectedInput() bool {
	if len(m.injectQueue) == 0 {
		return false
	}
	evt := m.injectQueue[0]
	copy(m.injectQueue, m.injectQueue[1:])
	m.injectQueue = m.injectQueue[:len(m.injectQueue)-1]

	m.feedPointer(0, evt.pos, evt.pressed)
	return true
}
