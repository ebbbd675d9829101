package orrery

import "time"

// GestureConfig holds the thresholds the recognizer classifies against.
// The zero value is not usable; start from DefaultGestureConfig.
type GestureConfig struct {
	// MoveThreshold is the displacement in pixels beyond which a contact
	// stops being a tap candidate and starts streaming pan events.
	MoveThreshold float64
	// LongPressDelay is how long a motionless contact must be held before
	// a longPress fires.
	LongPressDelay time.Duration
	// DoubleTapWindow is the maximum gap between two taps for them to
	// pair into a doubleTap.
	DoubleTapWindow time.Duration
	// PinchThreshold is the change in inter-contact distance in pixels
	// before pinch events start streaming.
	PinchThreshold float64
}

// DefaultGestureConfig returns the standard recognizer thresholds.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		MoveThreshold:   10,
		LongPressDelay:  500 * time.Millisecond,
		DoubleTapWindow: 300 * time.Millisecond,
		PinchThreshold:  20,
	}
}

// OrbitConfig holds the tunables of the orbital interaction engine.
// The zero value is not usable; start from DefaultOrbitConfig.
type OrbitConfig struct {
	// DragActivation is the cumulative pointer displacement in pixels
	// before a pan is treated as an intentional rotation rather than jitter.
	DragActivation float64
	// SelectionGuard is the drag distance beyond which the session can no
	// longer resolve to a tap selection. Intentionally smaller than
	// DragActivation.
	SelectionGuard float64
	// TapGrace suppresses selection for this long after a drag ends, so
	// the final pointer-up of a drag is not misread as a tap.
	TapGrace time.Duration

	// SpeedRadius is the distance from ring center at which the rotation
	// speed multiplier is 1. Elements grabbed closer to the center rotate
	// faster per pixel of pointer movement.
	SpeedRadius float64
	// MinSpeed and MaxSpeed clamp the radius-dependent multiplier so far
	// elements stay controllable and near-center grabs stay bounded.
	MinSpeed float64
	MaxSpeed float64
	// MaxFrameDelta caps the eased per-frame rotation in radians.
	MaxFrameDelta float64

	// MomentumScale converts retained angular velocity into the per-frame
	// rotation applied while coasting.
	MomentumScale float64
	// Friction multiplies the retained velocity every momentum frame.
	// Must be < 1 for the loop to terminate.
	Friction float64
	// MinVelocity is the angular velocity floor (radians per frame) below
	// which momentum stops and will not start.
	MinVelocity float64
}

// DefaultOrbitConfig returns the standard orbital engine tunables.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		DragActivation: 15,
		SelectionGuard: 5,
		TapGrace:       100 * time.Millisecond,
		SpeedRadius:    120,
		MinSpeed:       0.35,
		MaxSpeed:       3,
		MaxFrameDelta:  0.35,
		MomentumScale:  0.9,
		Friction:       0.94,
		MinVelocity:    0.002,
	}
}
