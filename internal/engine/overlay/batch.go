package overlay

import "github.com/Faultbox/meshview/internal/engine/render"

// floatsPerVertex is pos(2) + uv(2) + color(3).
const floatsPerVertex = 7

// Batch accumulates glyph quads for one frame, in screen pixels with a
// top-left origin.
type Batch struct {
	atlas *Atlas
	scale float32
	verts []float32
}

// NewBatch creates a batch drawing atlas glyphs at scale atlas pixels per
// screen pixel.
func NewBatch(atlas *Atlas) *Batch {
	return &Batch{
		atlas: atlas,
		scale: 1,
		verts: make([]float32, 0, 4096),
	}
}

// SetScale sets the glyph magnification, at least 1.
func (b *Batch) SetScale(s float32) {
	b.scale = max(1, s)
}

// LineHeight is the height of one text line in screen pixels.
func (b *Batch) LineHeight() float32 {
	_, h := b.atlas.CellSize()
	return float32(h) * b.scale
}

// Reset drops the queued quads.
func (b *Batch) Reset() {
	b.verts = b.verts[:0]
}

// Add queues text with its top-left corner at (x, y).
func (b *Batch) Add(x, y float32, text string, c render.Color) {
	cw, ch := b.atlas.CellSize()
	w := float32(cw) * b.scale
	h := float32(ch) * b.scale

	curX := x
	for _, r := range text {
		if r == '\n' {
			curX = x
			y += h
			continue
		}
		if r != ' ' {
			b.quad(curX, y, w, h, r, c)
		}
		curX += w
	}
}

func (b *Batch) quad(x, y, w, h float32, r rune, c render.Color) {
	u0, v0, u1, v1 := b.atlas.UV(r)
	b.verts = append(b.verts,
		x, y, u0, v0, c.R, c.G, c.B,
		x+w, y, u1, v0, c.R, c.G, c.B,
		x+w, y+h, u1, v1, c.R, c.G, c.B,

		x, y, u0, v0, c.R, c.G, c.B,
		x+w, y+h, u1, v1, c.R, c.G, c.B,
		x, y+h, u0, v1, c.R, c.G, c.B,
	)
}

// Vertices returns the queued vertex data.
func (b *Batch) Vertices() []float32 {
	return b.verts
}

// VertexCount returns the number of queued vertices.
func (b *Batch) VertexCount() int32 {
	return int32(len(b.verts) / floatsPerVertex)
}
