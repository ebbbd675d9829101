package orrery

import (
	"math"
	"time"
)

// Vec2 is a 2D vector used for positions, deltas, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Mid returns the midpoint between v and o.
func (v Vec2) Mid(o Vec2) Vec2 {
	return Vec2{(v.X + o.X) / 2, (v.Y + o.Y) / 2}
}

// GestureKind identifies a semantic gesture classification.
type GestureKind uint8

const (
	GestureTap       GestureKind = iota // press and release within the movement and time bounds
	GestureDoubleTap                    // two qualifying taps within the double-tap window
	GestureLongPress                    // press held past the long-press delay without movement
	GesturePan                          // single-contact movement beyond the movement threshold
	GesturePinch                        // two-contact distance change beyond the pinch threshold
)

// String returns the gesture kind's name.
func (k GestureKind) String() string {
	switch k {
	case GestureTap:
		return "tap"
	case GestureDoubleTap:
		return "doubleTap"
	case GestureLongPress:
		return "longPress"
	case GesturePan:
		return "pan"
	case GesturePinch:
		return "pinch"
	default:
		return "unknown"
	}
}

// GestureEvent is the immutable value delivered to gesture subscribers.
// Delta is meaningful for pan events, Scale for pinch events. Target is
// whatever the input layer resolved at press time (a *RingElement when the
// press landed on a bubble, nil otherwise). Time is when the classifying
// raw event occurred; for tap this is the release, not the later emission.
type GestureEvent struct {
	Kind     GestureKind
	Position Vec2
	Delta    Vec2
	Scale    float64
	Target   any
	Pointer  int
	Time     time.Time
}

// Ring levels. The centered idea sits at level 0; its orbiting children
// sit at level 1.
const (
	LevelCenter = 0
	LevelOrbit  = 1
)

// Color is an RGBA color with components in [0, 1], used by the bubble
// renderer and the PNG exporter.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default bubble tint.
var ColorWhite = Color{1, 1, 1, 1}

// normalizeAngle wraps an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// shortArc resolves a raw angular delta to the shorter of the two arcs
// between the angles, so the result never exceeds half a turn in magnitude.
// Naive subtraction at the -π/π boundary would imply a full-circle snap.
func shortArc(delta float64) float64 {
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}
