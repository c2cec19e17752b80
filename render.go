package syncicon

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/tandemwatch/syncicon/utils"
)

// MaxSize is the largest icon side, in pixels, the renderer accepts.
const MaxSize = 4096

// ErrInvalidSize is returned when the requested icon size is out of range.
var ErrInvalidSize = errors.New("icon size out of range")

// Renderer options
type Renderer struct {
	Palette Palette
	// Supersample draws the icon at Supersample times the requested size
	// and downscales it with a Lanczos filter. Values below 2 disable it.
	Supersample int
}

// NewRenderer returns a renderer using the default palette.
func NewRenderer() *Renderer {
	return &Renderer{
		Palette:     DefaultPalette,
		Supersample: 1,
	}
}

// Render draws the icon on a new size x size canvas.
func (r *Renderer) Render(size int) (*image.NRGBA, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (expected 1..%d)", ErrInvalidSize, size, MaxSize)
	}

	n := utils.Clamp(r.Supersample, 1, MaxSize/size)
	if n == 1 {
		return r.draw(NewLayout(size)), nil
	}

	img := r.draw(NewLayout(size * n))
	return imaging.Resize(img, size, size, imaging.Lanczos), nil
}

// draw paints every element of the icon in back to front order.
func (r *Renderer) draw(l Layout) *image.NRGBA {
	pal := r.Palette
	if pal == (Palette{}) {
		pal = DefaultPalette
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, l.Size, l.Size))
	p := newPainter(canvas)

	p.clear(pal.Background)

	for _, c := range []Point{l.Left, l.Right} {
		p.fill(pal.Primary, ring(c, l.OuterRadius, l.OuterStroke))
		p.fill(pal.Secondary, ring(c, l.InnerRadius, l.InnerStroke))
	}
	for _, c := range []Point{l.Left, l.Right} {
		tri := l.Play(c)
		p.fill(pal.Highlight, polygon(tri[:]...))
	}
	p.fill(pal.Secondary, line(l.LineStart, l.LineEnd, l.LineWidth))
	p.fill(pal.Secondary, disc(l.Dot, l.DotRadius))

	return canvas
}
