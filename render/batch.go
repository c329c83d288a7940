package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVerts bounds a single DrawTriangles32 submission.
const maxBatchVerts = 1 << 15

// whitePixel is the source image every solid quad samples. It is created on
// first use so importing the package does not touch the graphics driver.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// batch accumulates solid-color quads and triangles for one
// DrawTriangles32 call.
type batch struct {
	verts []ebiten.Vertex
	inds  []uint32
}

// vertex builds a premultiplied-alpha vertex sampling the white pixel.
func vertex(x, y float64, c color.NRGBA) ebiten.Vertex {
	a := float32(c.A) / 255
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R) / 255 * a,
		ColorG: float32(c.G) / 255 * a,
		ColorB: float32(c.B) / 255 * a,
		ColorA: a,
	}
}

// quad appends a four-corner polygon given in winding order.
func (b *batch) quad(x0, y0, x1, y1, x2, y2, x3, y3 float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	base := uint32(len(b.verts))
	b.verts = append(b.verts,
		vertex(x0, y0, c), vertex(x1, y1, c), vertex(x2, y2, c), vertex(x3, y3, c))
	b.inds = append(b.inds, base, base+1, base+2, base, base+2, base+3)
}

// rect appends an axis-aligned rectangle.
func (b *batch) rect(x, y, w, h float64, c color.NRGBA) {
	b.quad(x, y, x+w, y, x+w, y+h, x, y+h, c)
}

// gradient appends an axis-aligned rectangle shaded from top to bottom.
func (b *batch) gradient(x, y, w, h float64, top, bottom color.NRGBA) {
	base := uint32(len(b.verts))
	b.verts = append(b.verts,
		vertex(x, y, top), vertex(x+w, y, top), vertex(x+w, y+h, bottom), vertex(x, y+h, bottom))
	b.inds = append(b.inds, base, base+1, base+2, base, base+2, base+3)
}

// triangle appends a triangle with a solid tip color fading to the base.
func (b *batch) triangle(x0, y0 float64, c0 color.NRGBA, x1, y1, x2, y2 float64, c1 color.NRGBA) {
	base := uint32(len(b.verts))
	b.verts = append(b.verts, vertex(x0, y0, c0), vertex(x1, y1, c1), vertex(x2, y2, c1))
	b.inds = append(b.inds, base, base+1, base+2)
}

// line appends a segment of the given pixel width.
func (b *batch) line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	l := hypot(dx, dy)
	if l == 0 {
		b.rect(x0-width/2, y0-width/2, width, width, c)
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	b.quad(x0+nx, y0+ny, x1+nx, y1+ny, x1-nx, y1-ny, x0-nx, y0-ny, c)
}

// full reports whether the batch should be flushed before more geometry.
func (b *batch) full() bool {
	return len(b.verts) >= maxBatchVerts
}

// flush submits the accumulated geometry to target and empties the batch.
func (b *batch) flush(target *ebiten.Image) {
	if len(b.verts) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles32(b.verts, b.inds, ensureWhitePixel(), &op)
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}
