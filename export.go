package orrery

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// IdeaDoc is the JSON document form of an idea subtree.
type IdeaDoc struct {
	ID       uint32    `json:"id"`
	Label    string    `json:"label"`
	Children []IdeaDoc `json:"children,omitempty"`
}

func ideaDoc(n *Idea) IdeaDoc {
	doc := IdeaDoc{ID: n.ID, Label: n.Label}
	for _, child := range n.Children() {
		doc.Children = append(doc.Children, ideaDoc(child))
	}
	return doc
}

// ExportJSON writes the subtree rooted at n as an indented JSON document.
func ExportJSON(w io.Writer, n *Idea) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ideaDoc(n)); err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return nil
}

// ExportMarkdown writes the subtree rooted at n as a heading followed by a
// nested bullet list.
func ExportMarkdown(w io.Writer, n *Idea) error {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(n.Label)
	b.WriteString("\n")
	for _, child := range n.Children() {
		writeMarkdownList(&b, child, 0)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("export markdown: %w", err)
	}
	return nil
}

func writeMarkdownList(b *strings.Builder, n *Idea, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("- ")
	b.WriteString(n.Label)
	b.WriteString("\n")
	for _, child := range n.Children() {
		writeMarkdownList(b, child, depth+1)
	}
}

// ExportPNG renders the map's current radial layout to a PNG file:
// the orbit guide, spokes from the center, and one labeled disc per
// visible bubble.
func (m *Map) ExportPNG(filename string) error {
	w := int(m.cfg.Center.X * 2)
	h := int(m.cfg.Center.Y * 2)
	if w < 1 || h < 1 {
		return fmt.Errorf("export png: degenerate canvas %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	face, err := exportFontFace(13)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	center := m.ring.Center

	// Orbit guide.
	dc.SetRGBA(0, 0, 0, 0.15)
	dc.SetLineWidth(1)
	dc.DrawCircle(center.X, center.Y, m.ring.OrbitRadius)
	dc.Stroke()

	// Spokes behind the bubbles.
	dc.SetRGBA(0, 0, 0, 0.3)
	for _, e := range m.ring.Elements() {
		if !e.Visible || e.Level != LevelOrbit {
			continue
		}
		dc.DrawLine(center.X, center.Y, e.Pos.X, e.Pos.Y)
		dc.Stroke()
	}

	for _, e := range m.ring.Elements() {
		if !e.Visible {
			continue
		}
		c := e.Idea.Color
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		dc.DrawCircle(e.Pos.X, e.Pos.Y, m.ring.BubbleRadius)
		dc.Fill()
		dc.SetRGBA(0, 0, 0, 1)
		dc.DrawCircle(e.Pos.X, e.Pos.Y, m.ring.BubbleRadius)
		dc.Stroke()
		dc.DrawStringAnchored(e.Idea.Label, e.Pos.X, e.Pos.Y, 0.5, 0.5)
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	return nil
}

// exportFontFace parses the bundled monospace font at the given size.
func exportFontFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("export png: parse font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
