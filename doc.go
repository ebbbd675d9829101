// Package orrery is a radial mind-map interaction engine for [Ebitengine].
//
// Orrery lays an idea tree out as a ring of bubbles around a centered idea,
// classifies raw pointer input into semantic gestures, and turns drags on
// the ring into rotation with momentum. Tapping an orbiting bubble
// recenters the map on that idea; tapping the center selects it.
//
// # Quick start
//
// Build an [Idea] tree, wrap it in a [Map], and drive the map from an
// [ebiten.Game]:
//
//	root := orrery.NewIdea("Trip")
//	root.AddChild(orrery.NewIdea("Flights"))
//	root.AddChild(orrery.NewIdea("Hotels"))
//
//	m := orrery.NewMap(root, orrery.DefaultMapConfig(800, 600))
//
//	type Game struct{ m *orrery.Map }
//
//	func (g *Game) Update() error              { g.m.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.m.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// [Run] opens a window and runs the loop for you.
//
// # Gestures
//
// The [Recognizer] classifies touch and mouse input into tap, double tap,
// long press, pan, and pinch. The map consumes pan (ring rotation) and tap
// (navigation); subscribe to the rest through [Map.Gestures]:
//
//	m.Gestures().On(orrery.GestureLongPress, func(ev orrery.GestureEvent) {
//		// show a context menu at ev.Position
//	})
//
// # Orbital rotation
//
// Dragging an orbiting bubble rotates the whole ring rigidly. Grabs near
// the center move the ring faster than grabs at the rim, per-frame
// rotation is clamped and eased, and releasing a fast drag lets the ring
// coast with decaying momentum. A tap that follows a real drag too closely
// is suppressed so releases do not mis-trigger navigation.
//
// # Export
//
// Trees export as Markdown ([ExportMarkdown]), JSON ([ExportJSON]), or a
// PNG snapshot of the current layout ([Map.ExportPNG]).
//
// All of orrery is single-threaded: call [Map.Update] once per frame from
// the game loop and do all mutation from that goroutine.
//
// [Ebitengine]: https://ebitengine.org
package orrery
