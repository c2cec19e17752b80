package syncicon

import (
	"fmt"

	"github.com/tandemwatch/syncicon/utils"
)

// Reference design, in pixels of the 128x128 icon.
const (
	designSize = 128.0

	ringY          = 64.0
	ringX          = 35.0 // left ring; the right one is mirrored
	outerRadius    = 28.0
	innerRadius    = 22.0
	outerStroke    = 3.0
	innerStroke    = 2.5
	playHalfHeight = 14.0
	playWidth      = 20.0
	lineStartX     = 55.0
	lineWidth      = 2.0
	dotRadius      = 2.5
)

// Point is a position on the canvas in pixel units.
type Point struct {
	X, Y float64
}

// Layout contains the geometry of the icon for a given output size.
// All the values are derived from the reference design through a linear scale factor.
type Layout struct {
	Size  int
	Scale float64

	Left, Right Point // ring centers

	OuterRadius float64
	InnerRadius float64
	OuterStroke float64
	InnerStroke float64

	PlayHalfHeight float64
	PlayWidth      float64

	LineStart, LineEnd Point
	LineWidth          float64

	Dot       Point
	DotRadius float64
}

// NewLayout computes the icon geometry for a square canvas of the given size.
// Radii, strokes and glyph extents never go below one pixel, otherwise the
// smallest icons would lose shapes.
func NewLayout(size int) Layout {
	s := float64(size)
	scale := s / designSize
	y := ringY * scale

	l := Layout{
		Size:  size,
		Scale: scale,
		Left:  Point{X: ringX * scale, Y: y},
		Right: Point{X: s - ringX*scale, Y: y},

		OuterRadius: utils.Max(1, outerRadius*scale),
		InnerRadius: utils.Max(1, innerRadius*scale),
		OuterStroke: utils.AtLeastOne(outerStroke * scale),
		InnerStroke: utils.AtLeastOne(innerStroke * scale),

		PlayHalfHeight: utils.Max(1, playHalfHeight*scale),
		PlayWidth:      utils.Max(1, playWidth*scale),

		LineStart: Point{X: lineStartX * scale, Y: y},
		LineEnd:   Point{X: s - lineStartX*scale, Y: y},
		LineWidth: utils.AtLeastOne(lineWidth * scale),

		DotRadius: utils.AtLeastOne(dotRadius * scale),
	}
	l.Dot = Point{
		X: (l.LineStart.X + l.LineEnd.X) / 2,
		Y: (l.LineStart.Y + l.LineEnd.Y) / 2,
	}
	return l
}

// Play returns the vertices of the play glyph centered in the ring at c.
// The glyph always points to the right.
func (l Layout) Play(c Point) [3]Point {
	return [3]Point{
		{X: c.X - l.PlayWidth, Y: c.Y - l.PlayHalfHeight},
		{X: c.X - l.PlayWidth, Y: c.Y + l.PlayHalfHeight},
		{X: c.X + l.PlayWidth/2, Y: c.Y},
	}
}

// Validate reports the first extent that would be drawn thinner than one pixel.
func (l Layout) Validate() error {
	extents := []struct {
		name  string
		value float64
	}{
		{"outer radius", l.OuterRadius},
		{"inner radius", l.InnerRadius},
		{"outer stroke", l.OuterStroke},
		{"inner stroke", l.InnerStroke},
		{"play half height", l.PlayHalfHeight},
		{"play width", l.PlayWidth},
		{"line width", l.LineWidth},
		{"dot radius", l.DotRadius},
	}
	for _, e := range extents {
		if e.value < 1 {
			return fmt.Errorf("%s is %.3fpx at size %d", e.name, e.value, l.Size)
		}
	}
	return nil
}
