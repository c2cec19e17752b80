package syncicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout_SmallestIconHasVisibleShapes(t *testing.T) {
	l := NewLayout(16)

	assert.NoError(t, l.Validate())
	assert.GreaterOrEqual(t, l.OuterStroke, 1.0)
	assert.GreaterOrEqual(t, l.InnerStroke, 1.0)
	assert.GreaterOrEqual(t, l.LineWidth, 1.0)
	assert.GreaterOrEqual(t, l.DotRadius, 1.0)
	assert.GreaterOrEqual(t, l.InnerRadius, 1.0)
	assert.GreaterOrEqual(t, l.PlayHalfHeight, 1.0)
}

func TestLayout_DefaultIconsAreValid(t *testing.T) {
	for _, spec := range DefaultIcons {
		assert.NoError(t, NewLayout(spec.Size).Validate(), spec.Name)
	}
}

func TestLayout_ZeroValueIsInvalid(t *testing.T) {
	assert.Error(t, Layout{}.Validate())
}

func TestLayout_ReferenceDesign(t *testing.T) {
	l := NewLayout(128)

	assert.Equal(t, 1.0, l.Scale)
	assert.Equal(t, Point{X: 35, Y: 64}, l.Left)
	assert.Equal(t, Point{X: 93, Y: 64}, l.Right)
	assert.Equal(t, 28.0, l.OuterRadius)
	assert.Equal(t, 22.0, l.InnerRadius)
	assert.Equal(t, 3.0, l.OuterStroke)
	assert.Equal(t, 3.0, l.InnerStroke)
	assert.Equal(t, 2.0, l.LineWidth)
	assert.Equal(t, 3.0, l.DotRadius)
	assert.Equal(t, Point{X: 55, Y: 64}, l.LineStart)
	assert.Equal(t, Point{X: 73, Y: 64}, l.LineEnd)
	assert.Equal(t, Point{X: 64, Y: 64}, l.Dot)

	assert.Equal(t, [3]Point{{15, 50}, {15, 78}, {45, 64}}, l.Play(l.Left))
}

func TestLayout_RingsAreSymmetric(t *testing.T) {
	for size := 1; size <= 256; size++ {
		l := NewLayout(size)
		mid := float64(size) / 2

		assert.InDelta(t, mid-l.Left.X, l.Right.X-mid, 1e-9, "size %d", size)
		assert.Equal(t, l.Left.Y, l.Right.Y, "size %d", size)
		assert.InDelta(t, mid, l.Dot.X, 1e-9, "size %d", size)
	}
}

func TestLayout_PlayGlyphPointsRight(t *testing.T) {
	l := NewLayout(48)

	for _, c := range []Point{l.Left, l.Right} {
		tri := l.Play(c)
		assert.Equal(t, tri[0].X, tri[1].X)
		assert.Greater(t, tri[2].X, tri[0].X)
		assert.Equal(t, c.Y, tri[2].Y)
	}
}
