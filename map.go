package orrery

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Navigator is the tree-navigation collaborator invoked as a side effect
// of resolved taps: re-center the map on an idea, or emit a selection for
// the idea that is already centered.
type Navigator interface {
	Recenter(id uint32)
	Select(id uint32)
}

// MapConfig configures a Map. Start from DefaultMapConfig.
type MapConfig struct {
	// Center is the screen position the orbit revolves around.
	Center Vec2
	// OrbitRadius is the distance of orbiting bubbles from Center.
	OrbitRadius float64
	// BubbleRadius is the hit-test (and default draw) radius of a bubble.
	BubbleRadius float64

	Gesture GestureConfig
	Orbit   OrbitConfig

	// RecenterDelay is how long after a qualifying tap the recenter
	// commits.
	RecenterDelay time.Duration
	// TransitionDuration is how long the ring elements take to glide to
	// their new layout, in seconds.
	TransitionDuration float32
}

// DefaultMapConfig returns a map configuration for the given screen size.
func DefaultMapConfig(screenW, screenH float64) MapConfig {
	return MapConfig{
		Center:             Vec2{X: screenW / 2, Y: screenH / 2},
		OrbitRadius:        170,
		BubbleRadius:       42,
		Gesture:            DefaultGestureConfig(),
		Orbit:              DefaultOrbitConfig(),
		RecenterDelay:      120 * time.Millisecond,
		TransitionDuration: 0.25,
	}
}

// Map is the top-level radial mind map: it owns the idea tree, the ring
// layout, the gesture recognizer, and the orbital engine, and steps them
// all from a single frame-driven Update. All state is mutated on the one
// event-processing thread; there is no locking.
type Map struct {
	cfg    MapConfig
	root   *Idea
	center *Idea
	ring   *Ring
	rec    *Recognizer
	orbit  *Orbit
	nav    Navigator

	transition *ringTransition

	// Pending recenter committed after the transition delay.
	recenterID  uint32
	recenterAt  time.Time
	recenterSet bool

	// Raw input state.
	pointers     [maxPointers]rawPointer
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	script       *ScriptRunner

	// Debug enables the frame-stats overlay in Draw.
	Debug bool

	// OnSelect fires when the centered idea is tapped.
	OnSelect func(*Idea)
	// OnRecenter fires after the map recenters on a new idea.
	OnRecenter func(*Idea)

	now func() time.Time
}

// NewMap creates a map centered on root and lays out its ring.
func NewMap(root *Idea, cfg MapConfig) *Map {
	m := &Map{
		cfg:    cfg,
		root:   root,
		center: root,
		ring:   NewRing(cfg.Center, cfg.OrbitRadius, cfg.BubbleRadius),
		rec:    NewRecognizer(cfg.Gesture),
		now:    time.Now,
	}
	m.orbit = NewOrbit(m.ring, cfg.Orbit)
	m.nav = treeNavigator{m}
	m.ring.Layout(root)

	m.rec.On(GesturePan, m.orbit.HandlePan)
	m.rec.On(GestureTap, m.handleTap)
	return m
}

// Root returns the tree root.
func (m *Map) Root() *Idea {
	return m.root
}

// Center returns the currently centered idea.
func (m *Map) Center() *Idea {
	return m.center
}

// Ring returns the ring layout.
func (m *Map) Ring() *Ring {
	return m.ring
}

// Orbit returns the orbital interaction engine.
func (m *Map) Orbit() *Orbit {
	return m.orbit
}

// Gestures returns the recognizer, for subscribing to gestures the map
// does not consume itself (doubleTap, longPress, pinch).
func (m *Map) Gestures() *Recognizer {
	return m.rec
}

// SetNavigator replaces the tap-resolution collaborator. The default
// navigates the map's own tree.
func (m *Map) SetNavigator(nav Navigator) {
	m.nav = nav
}

// Update processes raw input, fires gesture timers, advances momentum and
// transitions, and commits any pending recenter. Call once per frame.
func (m *Map) Update() {
	if m.script != nil {
		m.script.step(m)
	}
	m.processInput()
	m.step()
}

// step advances everything that is not raw input polling.
func (m *Map) step() {
	m.rec.Update()
	m.orbit.Update()

	dt := float32(1.0 / float64(ebiten.TPS()))
	if m.transition != nil {
		m.transition.Update(dt)
		if m.transition.done {
			m.transition = nil
		}
	}

	if m.recenterSet && !m.now().Before(m.recenterAt) {
		m.recenterSet = false
		m.nav.Recenter(m.recenterID)
	}
}

// handleTap resolves a tap on a bubble into navigation, unless the orbital
// engine's drag/tap arbitration suppresses it.
func (m *Map) handleTap(ev GestureEvent) {
	e, ok := ev.Target.(*RingElement)
	if !ok {
		return
	}
	if m.orbit.SuppressTap(ev.Time) {
		return
	}
	switch e.Level {
	case LevelOrbit:
		m.recenterID = e.ID
		m.recenterAt = m.now().Add(m.cfg.RecenterDelay)
		m.recenterSet = true
	case LevelCenter:
		m.nav.Select(e.ID)
	}
}

// Recenter immediately recenters the map on the idea with the given id.
// Unknown ids are ignored.
func (m *Map) Recenter(id uint32) {
	idea := m.root.Find(id)
	if idea == nil {
		return
	}
	m.orbit.Reset()
	m.recenterSet = false

	from := make(map[uint32]Vec2, len(m.ring.Elements()))
	for _, e := range m.ring.Elements() {
		from[e.ID] = e.Pos
	}

	m.center = idea
	m.ring.Layout(idea)
	m.transition = newRingTransition(m.ring, from, m.cfg.TransitionDuration, ease.OutQuad)

	if m.OnRecenter != nil {
		m.OnRecenter(idea)
	}
}

// treeNavigator is the default Navigator: it drives the map's own tree.
type treeNavigator struct {
	m *Map
}

func (n treeNavigator) Recenter(id uint32) {
	n.m.Recenter(id)
}

func (n treeNavigator) Select(id uint32) {
	if n.m.OnSelect == nil {
		return
	}
	if idea := n.m.root.Find(id); idea != nil {
		n.m.OnSelect(idea)
	}
}
