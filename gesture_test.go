package orrery

import (
	"testing"
	"time"
)

// fakeClock drives the recognizer's deadline timers deterministically.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// newTestRecognizer returns a recognizer on a fake clock plus a recorder
// capturing every emitted event.
func newTestRecognizer() (*Recognizer, *fakeClock, *[]GestureEvent) {
	clk := newFakeClock()
	r := NewRecognizer(DefaultGestureConfig())
	r.now = clk.now

	events := &[]GestureEvent{}
	record := func(ev GestureEvent) {
		*events = append(*events, ev)
	}
	for _, k := range []GestureKind{GestureTap, GestureDoubleTap, GestureLongPress, GesturePan, GesturePinch} {
		r.On(k, record)
	}
	return r, clk, events
}

func countKind(events []GestureEvent, kind GestureKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// --- Tap tests ---

func TestTapEmitsAfterDoubleTapWindow(t *testing.T) {
	r, clk, events := newTestRecognizer()
	cfg := r.cfg

	r.PointerDown(0, Vec2{100, 100}, nil)
	clk.advance(50 * time.Millisecond)
	r.PointerUp(0, Vec2{100, 100})

	// Nothing may fire while the double-tap window is still open.
	r.Update()
	clk.advance(cfg.DoubleTapWindow / 2)
	r.Update()
	if len(*events) != 0 {
		t.Fatalf("got %d events before the double-tap window closed, want 0", len(*events))
	}

	clk.advance(cfg.DoubleTapWindow)
	r.Update()
	if got := countKind(*events, GestureTap); got != 1 {
		t.Fatalf("tap count = %d, want 1", got)
	}
	ev := (*events)[0]
	if ev.Position != (Vec2{100, 100}) {
		t.Errorf("tap position = %v, want {100 100}", ev.Position)
	}

	// A fired tap must not fire again.
	clk.advance(time.Second)
	r.Update()
	if got := countKind(*events, GestureTap); got != 1 {
		t.Errorf("tap count after extra updates = %d, want 1", got)
	}
}

func TestTapCarriesReleaseTime(t *testing.T) {
	r, clk, events := newTestRecognizer()

	r.PointerDown(0, Vec2{50, 50}, nil)
	clk.advance(40 * time.Millisecond)
	r.PointerUp(0, Vec2{50, 50})
	released := clk.now()

	clk.advance(time.Second)
	r.Update()
	if len(*events) != 1 {
		t.Fatalf("got %d events, want 1", len(*events))
	}
	if got := (*events)[0].Time; !got.Equal(released) {
		t.Errorf("tap time = %v, want release time %v", got, released)
	}
}

func TestSlowReleaseIsNotATap(t *testing.T) {
	r, clk, events := newTestRecognizer()

	r.PointerDown(0, Vec2{0, 0}, nil)
	clk.advance(r.cfg.LongPressDelay + 100*time.Millisecond)
	r.PointerUp(0, Vec2{0, 0})

	clk.advance(time.Second)
	r.Update()
	if got := countKind(*events, GestureTap); got != 0 {
		t.Errorf("tap count = %d, want 0 for a held release", got)
	}
}

func TestMovedReleaseIsNotATap(t *testing.T) {
	r, clk, events := newTestRecognizer()

	r.PointerDown(0, Vec2{0, 0}, nil)
	clk.advance(50 * time.Millisecond)
	r.PointerUp(0, Vec2{0, 15}) // beyond MoveThreshold

	clk.advance(time.Second)
	r.Update()
	if got := countKind(*events, GestureTap); got != 0 {
		t.Errorf("tap count = %d, want 0 for a moved release", got)
	}
}

// --- Double-tap tests ---

func TestDoubleTapPairsAndSuppressesSingles(t *testing.T) {
	r, clk, events := newTestRecognizer()

	r.PointerDown(0, Vec2{100, 100}, nil)
	clk.advance(30 * time.Millisecond)
	r.PointerUp(0, Vec2{100, 100})
	r.Update()

	clk.advance(100 * time.Millisecond) // within the 300ms window
	r.PointerDown(0, Vec2{102, 101}, nil)
	clk.advance(30 * time.Millisecond)
	r.PointerUp(0, Vec2{102, 101})
	r.Update()

	clk.advance(time.Second)
	r.Update()

	if got := countKind(*events, GestureDoubleTap); got != 1 {
		t.Errorf("doubleTap count = %d, want 1", got)
	}
	if got := countKind(*events, GestureTap); got != 0 {
		t.Errorf("tap count = %d, want 0 when the pair completed", got)
	}
}

func TestTapsOutsideWindowStaySingle(t *testing.T) {
	r, clk, events := newTestRecognizer()

	for i := 0; i < 2; i++ {
		r.PointerDown(0, Vec2{100, 100}, nil)
		clk.advance(30 * time.Millisecond)
		r.PointerUp(0, Vec2{100, 100})
		clk.advance(400 * time.Millisecond) // window expires between taps
		r.Update()
	}

	if got := countKind(*events, GestureTap); got != 2 {
		t.Errorf("tap count = %d, want 2", got)
	}
	if got := countKind(*events, GestureDoubleTap); got != 0 {
		t.Errorf("doubleTap count = %d, want 0", got)
	}
}

func TestDistantSecondTapStaysSingle(t *testing.T) {
	r, clk, events := newTestRecognizer()

	r.PointerDown(0, Vec2{100, 100}, nil)
	r.PointerUp(0, Vec2{100, 100})
	clk.advance(100 * time.Millisecond)
	r.PointerDown(0, Vec2{200, 200}, nil)
	r.PointerUp(0, Vec2{200, 200})

	clk.advance(time.Second)
	r.Update()

	if got := countKind(*events, GestureDoubleTap); got != 0 {
		t.Errorf("doubleTap count = %d, want 0 for far-apart taps", got)
	}
	if got := countKind(*events, GestureTap); got != 2 {
		t.Errorf("tap count = %d, want 2", got)
	}
}

func TestTripleTapDoesNotPairTwice(t *testing.T) {
	r, clk, events := newTestRecognizer()

	for i := 0; i < 3; i++ {
		r.PointerDown(0, Vec2{100, 100}, nil)
		clk.advance(20 * time.Millisecond)
		r.PointerUp(0, Vec2{100, 100})
		clk.advance(80 * time.Millisecond)
		r.Update()
	}
	clk.advance(time.Second)
	r.Update()

	// Taps 1+2 pair; tap 3 starts a fresh baseline and resolves single.
	if got := countKind(*events, GestureDoubleTap); got != 1 {
		t.Errorf("doubleTap count = %d, want 1", got)
	}
	if got := countKind(*events, GestureTap); got != 1 {
		t.Errorf("tap count = %d, want 1", got)
	}
}

// --- Pan tests ---

func TestPanStreamsBeyondMoveThreshold(t *testing.T) {
	r, clk, events := newTestRecognizer()

	r.PointerDown(0, Vec2{0, 0}, nil)
	r.PointerMove(0, Vec2{5, 0}) // below threshold, nothing yet
	if len(*events) != 0 {
		t.Fatalf("got %d events below the move threshold, want 0", len(*events))
	}

	r.PointerMove(0, Vec2{20, 0})
	r.PointerMove(0, Vec2{30, 5})
	if got := countKind(*events, GesturePan); got != 2 {
		t.Fatalf("pan count = %d, want 2", got)
	}
	first := (*events)[0]
	if first.Delta != (Vec2{15, 0}) {
		t.Errorf("first pan delta = %v, want {15 0}", first.Delta)
	}
	second := (*events)[1]
	if second.Delta != (Vec2{10, 5}) {
		t.Errorf("second pan delta = %v, want {10 5}", second.Delta)
	}

	// A panned interaction ends without any terminal gesture.
	r.PointerUp(0, Vec2{30, 5})
	clk.advance(time.Second)
	r.Update()
	if got := countKind(*events, GestureTap); got != 0 {
		t.Errorf("tap count = %d, want 0 after a pan", got)
	}
	if got := countKind(*events, GestureLongPress); got != 0 {
		t.Errorf("longPress count = %d, want 0 after a pan", got)
	}
}

// --- Long-press tests ---

func TestLongPressFiresAtDeadline(t *testing.T) {
	r, clk, events := newTestRecognizer()

	r.PointerDown(0, Vec2{60, 60}, nil)
	clk.advance(r.cfg.LongPressDelay - time.Millisecond)
	r.Update()
	if len(*events) != 0 {
		t.Fatalf("got %d events before the long-press delay, want 0", len(*events))
	}

	clk.advance(2 * time.Millisecond)
	r.Update()
	if got := countKind(*events, GestureLongPress); got != 1 {
		t.Fatalf("longPress count = %d, want 1", got)
	}
	if pos := (*events)[0].Position; pos != (Vec2{60, 60}) {
		t.Errorf("longPress position = %v, want {60 60}", pos)
	}

	// The release of a long-held contact is not a tap.
	r.PointerUp(0, Vec2{60, 60})
	clk.advance(time.Second)
	r.Update()
	if got := countKind(*events, GestureTap); got != 0 {
		t.Errorf("tap count = %d, want 0 after longPress", got)
	}
}

func TestMovementCancelsLongPress(t *testing.T) {
	r, clk, events := newTestRecognizer()

	r.PointerDown(0, Vec2{0, 0}, nil)
	r.PointerMove(0, Vec2{30, 0}) // exceeds MoveThreshold
	clk.advance(r.cfg.LongPressDelay + 50*time.Millisecond)
	r.Update()

	if got := countKind(*events, GestureLongPress); got != 0 {
		t.Errorf("longPress count = %d, want 0 after movement", got)
	}
}

func TestSecondContactCancelsLongPress(t *testing.T) {
	r, clk, events := newTestRecognizer()

	r.PointerDown(0, Vec2{0, 0}, nil)
	clk.advance(100 * time.Millisecond)
	r.PointerDown(1, Vec2{50, 0}, nil)
	clk.advance(r.cfg.LongPressDelay)
	r.Update()

	if got := countKind(*events, GestureLongPress); got != 0 {
		t.Errorf("longPress count = %d, want 0 with two contacts", got)
	}
}

func TestMultiTouchReleasesAreNotTaps(t *testing.T) {
	r, clk, events := newTestRecognizer()

	r.PointerDown(0, Vec2{0, 0}, nil)
	r.PointerDown(1, Vec2{40, 0}, nil)
	clk.advance(50 * time.Millisecond)
	r.PointerUp(0, Vec2{0, 0})
	r.PointerUp(1, Vec2{40, 0})

	clk.advance(time.Second)
	r.Update()
	if got := countKind(*events, GestureTap) + countKind(*events, GestureDoubleTap); got != 0 {
		t.Errorf("tap-family count = %d, want 0 for two-finger releases", got)
	}
}

// --- Pinch tests ---

func TestPinchStreamsScale(t *testing.T) {
	r, _, events := newTestRecognizer()

	r.PointerDown(0, Vec2{100, 100}, nil)
	r.PointerDown(1, Vec2{200, 100}, nil) // initial separation 100

	r.PointerMove(1, Vec2{210, 100}) // change 10, below PinchThreshold
	if len(*events) != 0 {
		t.Fatalf("got %d events below the pinch threshold, want 0", len(*events))
	}

	r.PointerMove(1, Vec2{250, 100}) // change 50
	if got := countKind(*events, GesturePinch); got != 1 {
		t.Fatalf("pinch count = %d, want 1", got)
	}
	ev := (*events)[0]
	if ev.Scale != 1.5 {
		t.Errorf("pinch scale = %v, want 1.5", ev.Scale)
	}
	if ev.Position != (Vec2{175, 100}) {
		t.Errorf("pinch position = %v, want midpoint {175 100}", ev.Position)
	}
}

func TestPinchEndsWhenContactLifts(t *testing.T) {
	r, _, events := newTestRecognizer()

	r.PointerDown(0, Vec2{100, 100}, nil)
	r.PointerDown(1, Vec2{200, 100}, nil)
	r.PointerUp(1, Vec2{200, 100})

	r.PointerMove(0, Vec2{300, 100})
	if got := countKind(*events, GesturePinch); got != 0 {
		t.Errorf("pinch count = %d, want 0 after a contact lifted", got)
	}
}

// --- Cancel and bookkeeping tests ---

func TestCancelDiscardsWithoutEmitting(t *testing.T) {
	r, clk, events := newTestRecognizer()

	r.PointerDown(0, Vec2{10, 10}, nil)
	r.PointerCancel(0)
	clk.advance(time.Second)
	r.Update()

	if len(*events) != 0 {
		t.Errorf("got %d events after cancel, want 0", len(*events))
	}
	if r.ActiveContacts() != 0 {
		t.Errorf("ActiveContacts = %d, want 0", r.ActiveContacts())
	}
}

func TestUnknownPointerEventsAreIgnored(t *testing.T) {
	r, clk, events := newTestRecognizer()

	r.PointerMove(7, Vec2{10, 10})
	r.PointerUp(7, Vec2{10, 10})
	r.PointerCancel(7)
	clk.advance(time.Second)
	r.Update()

	if len(*events) != 0 {
		t.Errorf("got %d events for unknown pointer ids, want 0", len(*events))
	}
}

func TestDuplicatePressIsIgnored(t *testing.T) {
	r, _, _ := newTestRecognizer()

	r.PointerDown(0, Vec2{10, 10}, nil)
	r.PointerDown(0, Vec2{500, 500}, nil)

	if r.ActiveContacts() != 1 {
		t.Fatalf("ActiveContacts = %d, want 1", r.ActiveContacts())
	}
	if r.contacts[0].start != (Vec2{10, 10}) {
		t.Errorf("contact start = %v, want the original press position", r.contacts[0].start)
	}
}

func TestGestureHandleRemove(t *testing.T) {
	r, clk, _ := newTestRecognizer()

	var a, b int
	r.On(GestureTap, func(GestureEvent) { a++ })
	h := r.On(GestureTap, func(GestureEvent) { b++ })
	h.Remove()

	r.PointerDown(0, Vec2{0, 0}, nil)
	r.PointerUp(0, Vec2{0, 0})
	clk.advance(time.Second)
	r.Update()

	if a != 1 {
		t.Errorf("kept handler fired %d times, want 1", a)
	}
	if b != 0 {
		t.Errorf("removed handler fired %d times, want 0", b)
	}
}

func TestTargetTravelsWithContact(t *testing.T) {
	r, clk, events := newTestRecognizer()

	target := &RingElement{ID: 7}
	r.PointerDown(0, Vec2{0, 0}, target)
	r.PointerMove(0, Vec2{20, 0})
	r.PointerUp(0, Vec2{20, 0})
	clk.advance(time.Second)
	r.Update()

	if got := countKind(*events, GesturePan); got != 1 {
		t.Fatalf("pan count = %d, want 1", got)
	}
	if (*events)[0].Target != target {
		t.Errorf("pan target = %v, want the press-time target", (*events)[0].Target)
	}
}
