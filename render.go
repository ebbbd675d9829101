package orrery

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func toRGBA(c Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
}

// Draw renders the map's current state: the orbit guide, spokes, and one
// labeled disc per visible bubble. Applications with their own look can
// skip this and draw from Ring().Elements() directly.
func (m *Map) Draw(screen *ebiten.Image) {
	cx := float32(m.ring.Center.X)
	cy := float32(m.ring.Center.Y)

	vector.StrokeCircle(screen, cx, cy, float32(m.ring.OrbitRadius),
		1, color.RGBA{40, 40, 40, 40}, true)

	for _, e := range m.ring.Elements() {
		if !e.Visible || e.Level != LevelOrbit {
			continue
		}
		vector.StrokeLine(screen, cx, cy, float32(e.Pos.X), float32(e.Pos.Y),
			1, color.RGBA{70, 70, 70, 70}, true)
	}

	for _, e := range m.ring.Elements() {
		if !e.Visible {
			continue
		}
		x := float32(e.Pos.X)
		y := float32(e.Pos.Y)
		r := float32(m.ring.BubbleRadius)
		vector.DrawFilledCircle(screen, x, y, r, toRGBA(e.Idea.Color), true)

		outline := color.RGBA{255, 255, 255, 255}
		if e.Dragging {
			outline = color.RGBA{255, 220, 80, 255}
		}
		vector.StrokeCircle(screen, x, y, r, 2, outline, true)

		// DebugPrint glyphs are 6x16; center the label roughly.
		lx := int(e.Pos.X) - len(e.Idea.Label)*3
		ly := int(e.Pos.Y) - 8
		ebitenutil.DebugPrintAt(screen, e.Idea.Label, lx, ly)
	}

	if m.Debug {
		m.drawDebug(screen)
	}
}

// drawDebug overlays frame stats and interaction state in the corner.
func (m *Map) drawDebug(screen *ebiten.Image) {
	msg := fmt.Sprintf("TPS %.0f FPS %.0f\ncenter %q\ndragging %v coasting %v vel %.4f",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		m.center.Label,
		m.orbit.Dragging(), m.orbit.Coasting(), m.orbit.Velocity())
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
