// Package overlay draws 2D text over the GL viewport from a bitmap glyph
// atlas.
package overlay

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII is rasterized; other runes fall back to '?'.
const (
	firstRune    = ' '
	lastRune     = '~'
	fallbackRune = '?'
	atlasColumns = 16
)

// Atlas is a fixed-cell glyph sheet with one coverage byte per pixel.
type Atlas struct {
	Image *image.Alpha

	cellW, cellH int
	ascent       int
}

// NewAtlas rasterizes the printable ASCII range of face into a grid.
func NewAtlas(face font.Face) *Atlas {
	m := face.Metrics()
	a := &Atlas{
		cellH:  (m.Ascent + m.Descent).Ceil(),
		ascent: m.Ascent.Ceil(),
	}
	for r := firstRune; r <= lastRune; r++ {
		if adv, ok := face.GlyphAdvance(r); ok {
			a.cellW = max(a.cellW, adv.Ceil())
		}
	}

	count := int(lastRune - firstRune + 1)
	rows := (count + atlasColumns - 1) / atlasColumns
	a.Image = image.NewAlpha(image.Rect(0, 0, atlasColumns*a.cellW, rows*a.cellH))

	d := &font.Drawer{Dst: a.Image, Src: image.Opaque, Face: face}
	for r := firstRune; r <= lastRune; r++ {
		col, row := a.cell(r)
		d.Dot = fixed.P(col*a.cellW, row*a.cellH+a.ascent)
		d.DrawString(string(r))
	}
	return a
}

// DefaultAtlas uses the 7x13 fixed bitmap face.
func DefaultAtlas() *Atlas {
	return NewAtlas(basicfont.Face7x13)
}

// CellSize returns the glyph cell size in atlas pixels.
func (a *Atlas) CellSize() (w, h int) {
	return a.cellW, a.cellH
}

// UV returns the texture coordinates of r's cell, v growing downward.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	col, row := a.cell(r)
	b := a.Image.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	u0 = float32(col*a.cellW) / w
	v0 = float32(row*a.cellH) / h
	u1 = float32((col+1)*a.cellW) / w
	v1 = float32((row+1)*a.cellH) / h
	return u0, v0, u1, v1
}

// Measure returns the size of text in atlas pixels; lines split on '\n'.
func (a *Atlas) Measure(text string) (w, h int) {
	lines, cur, widest := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		widest = max(widest, cur)
	}
	return widest * a.cellW, lines * a.cellH
}

func (a *Atlas) cell(r rune) (col, row int) {
	if r < firstRune || r > lastRune {
		r = fallbackRune
	}
	i := int(r - firstRune)
	return i % atlasColumns, i / atlasColumns
}
