package syncicon

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/tandemwatch/syncicon/imop"
	"golang.org/x/image/vector"
)

// kappa is the control point distance of a cubic Bézier approximating a quarter circle.
const kappa = 0.5522847498

// shapeFn traces a closed outline on the rasterizer.
type shapeFn func(z *vector.Rasterizer)

// painter fills anti-aliased shapes onto a canvas. Every shape is rasterized
// into a coverage mask, tinted into a layer and composited with source-over.
type painter struct {
	canvas *image.NRGBA
	z      *vector.Rasterizer
	mask   *image.Alpha
	layer  *image.NRGBA
	comp   *imop.Composite
}

func newPainter(canvas *image.NRGBA) *painter {
	b := canvas.Bounds()
	comp := imop.InitOp()
	comp.Set(imop.SrcOver)

	return &painter{
		canvas: canvas,
		z:      vector.NewRasterizer(b.Dx(), b.Dy()),
		mask:   image.NewAlpha(b),
		layer:  image.NewNRGBA(b),
		comp:   comp,
	}
}

// clear paints the whole canvas with c, ignoring what was there before.
func (p *painter) clear(c color.NRGBA) {
	draw.Draw(p.canvas, p.canvas.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// fill paints the area enclosed by the traced shapes with c.
func (p *painter) fill(c color.NRGBA, shapes ...shapeFn) {
	b := p.canvas.Bounds()

	p.z.Reset(b.Dx(), b.Dy())
	p.z.DrawOp = draw.Src
	for _, shape := range shapes {
		shape(p.z)
	}
	p.z.Draw(p.mask, b, image.Opaque, image.Point{})

	for i, cov := range p.mask.Pix {
		o := i * 4
		p.layer.Pix[o+0] = c.R
		p.layer.Pix[o+1] = c.G
		p.layer.Pix[o+2] = c.B
		p.layer.Pix[o+3] = uint8((uint32(cov)*uint32(c.A) + 127) / 255)
	}
	p.comp.Draw(&imop.Bitmap{Img: p.canvas}, p.layer, p.canvas)
}

// circle traces a full circle. The rasterizer sums signed coverage, so a
// counter-clockwise circle inside a clockwise one punches a hole.
func circle(c Point, r float64, clockwise bool) shapeFn {
	return func(z *vector.Rasterizer) {
		dir := 1.0
		if !clockwise {
			dir = -1
		}
		k := kappa * r
		pt := func(dx, dy float64) (float32, float32) {
			return float32(c.X + dx), float32(c.Y + dir*dy)
		}
		cube := func(x1, y1, x2, y2, x3, y3 float64) {
			ax, ay := pt(x1, y1)
			bx, by := pt(x2, y2)
			cx, cy := pt(x3, y3)
			z.CubeTo(ax, ay, bx, by, cx, cy)
		}

		z.MoveTo(pt(r, 0))
		cube(r, k, k, r, 0, r)
		cube(-k, r, -r, k, -r, 0)
		cube(-r, -k, -k, -r, 0, -r)
		cube(k, -r, r, -k, r, 0)
		z.ClosePath()
	}
}

// disc traces a filled circle.
func disc(c Point, r float64) shapeFn {
	return circle(c, r, true)
}

// ring traces a circular outline of the given stroke width, drawn inwards
// from radius r. Strokes wider than the radius degenerate to a disc.
func ring(c Point, r, stroke float64) shapeFn {
	outer := circle(c, r, true)
	if r-stroke <= 0 {
		return outer
	}
	inner := circle(c, r-stroke, false)

	return func(z *vector.Rasterizer) {
		outer(z)
		inner(z)
	}
}

// polygon traces a closed polygon through the given vertices.
func polygon(pts ...Point) shapeFn {
	return func(z *vector.Rasterizer) {
		if len(pts) < 3 {
			return
		}
		z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}
}

// line traces a horizontal or slanted segment of the given width with butt caps.
func line(a, b Point, width float64) shapeFn {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return polygon()
	}
	// Unit normal scaled to half the width.
	nx, ny := -dy/n*width/2, dx/n*width/2

	return polygon(
		Point{X: a.X + nx, Y: a.Y + ny},
		Point{X: b.X + nx, Y: b.Y + ny},
		Point{X: b.X - nx, Y: b.Y - ny},
		Point{X: a.X - nx, Y: a.Y - ny},
	)
}
