package syncicon

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tandemwatch/syncicon/utils"
)

func TestRender_Dimensions(t *testing.T) {
	r := NewRenderer()

	for _, spec := range DefaultIcons {
		img, err := r.Render(spec.Size)
		assert.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, spec.Size, spec.Size), img.Bounds())
	}
}

func TestRender_BackgroundAtOrigin(t *testing.T) {
	r := NewRenderer()

	for _, spec := range DefaultIcons {
		img, err := r.Render(spec.Size)
		assert.NoError(t, err)
		assert.Equal(t, DefaultPalette.Background, img.NRGBAAt(0, 0), spec.Name)
	}
}

func TestRender_InvalidSize(t *testing.T) {
	r := NewRenderer()

	for _, size := range []int{0, -16, MaxSize + 1} {
		img, err := r.Render(size)
		assert.Nil(t, img)
		assert.True(t, errors.Is(err, ErrInvalidSize), "size %d: %v", size, err)
	}
}

func TestRender_ShapesAtReferenceSize(t *testing.T) {
	img, err := NewRenderer().Render(128)
	assert.NoError(t, err)

	testCases := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{name: "left outer ring", x: 34, y: 37, want: DefaultPalette.Primary},
		{name: "right outer ring", x: 92, y: 37, want: DefaultPalette.Primary},
		{name: "left inner ring", x: 34, y: 43, want: DefaultPalette.Secondary},
		{name: "right inner ring", x: 92, y: 43, want: DefaultPalette.Secondary},
		{name: "left play glyph", x: 25, y: 64, want: DefaultPalette.Highlight},
		{name: "right play glyph", x: 83, y: 64, want: DefaultPalette.Highlight},
		{name: "connecting line", x: 58, y: 64, want: DefaultPalette.Secondary},
		{name: "dot", x: 63, y: 63, want: DefaultPalette.Secondary},
		{name: "above left ring", x: 35, y: 20, want: DefaultPalette.Background},
		{name: "between rings", x: 64, y: 20, want: DefaultPalette.Background},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertColorNear(t, tc.want, img.NRGBAAt(tc.x, tc.y), 2)
		})
	}
}

func TestRender_SmallestIconIsNotBlank(t *testing.T) {
	img, err := NewRenderer().Render(16)
	assert.NoError(t, err)

	painted := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if img.NRGBAAt(x, y) != DefaultPalette.Background {
				painted++
			}
		}
	}
	assert.Greater(t, painted, 40)
}

func TestRender_NewCanvasEachCall(t *testing.T) {
	r := NewRenderer()

	a, err := r.Render(48)
	assert.NoError(t, err)
	b, err := r.Render(48)
	assert.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestRender_ZeroRendererUsesDefaultPalette(t *testing.T) {
	img, err := (&Renderer{}).Render(16)
	assert.NoError(t, err)
	assert.Equal(t, DefaultPalette.Background, img.NRGBAAt(0, 0))
}

func TestRender_CustomPalette(t *testing.T) {
	pal := DefaultPalette
	pal.Background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	img, err := (&Renderer{Palette: pal}).Render(48)
	assert.NoError(t, err)
	assert.Equal(t, pal.Background, img.NRGBAAt(0, 0))
}

func TestRender_Supersample(t *testing.T) {
	r := NewRenderer()
	r.Supersample = 4

	for _, spec := range DefaultIcons {
		img, err := r.Render(spec.Size)
		assert.NoError(t, err)
		assert.Equal(t, spec.Size, img.Bounds().Dx())
		assert.Equal(t, spec.Size, img.Bounds().Dy())
		assertColorNear(t, DefaultPalette.Background, img.NRGBAAt(0, 0), 1)
	}

	// Factors below two render directly.
	plain, err := NewRenderer().Render(48)
	assert.NoError(t, err)
	for _, n := range []int{-1, 0, 1} {
		r.Supersample = n
		img, err := r.Render(48)
		assert.NoError(t, err)
		assert.Equal(t, plain.Pix, img.Pix)
	}
}

func assertColorNear(t *testing.T, want, got color.NRGBA, delta int) {
	t.Helper()

	channels := [][2]uint8{{want.R, got.R}, {want.G, got.G}, {want.B, got.B}, {want.A, got.A}}
	for _, ch := range channels {
		if utils.Abs(int(ch[0])-int(ch[1])) > delta {
			t.Errorf("color mismatch: want %v, got %v", want, got)
			return
		}
	}
}
