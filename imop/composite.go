// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// The image/draw core package implements only the source-over-destination
// and source operators; this package covers the rest of the Porter-Duff set.
//
// The icon renderer rasterizes every shape into its own layer and
// composites it onto the canvas with SrcOver.
package imop

import (
	"image"
	"math"

	"github.com/tandemwatch/syncicon/utils"
)

// Supported composition operations.
const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap holds the result of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap allocates a transparent bitmap of the given bounds.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp returns a Composite set to SrcOver.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Clear,
			Copy,
			Dst,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operations.
// Unknown operations are ignored.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// factors returns the Porter-Duff source and backdrop fractions
// for the given source and backdrop alpha values.
func (op *Composite) factors(as, ab float64) (fa, fb float64) {
	switch op.current {
	case Clear:
		return 0, 0
	case Copy:
		return 1, 0
	case Dst:
		return 0, 1
	case SrcOver:
		return 1, 1 - as
	case DstOver:
		return 1 - ab, 1
	case SrcIn:
		return ab, 0
	case DstIn:
		return 0, as
	case SrcOut:
		return 1 - ab, 0
	case DstOut:
		return 0, 1 - as
	case SrcAtop:
		return ab, 1 - as
	case DstAtop:
		return 1 - ab, as
	case Xor:
		return 1 - ab, 1 - as
	}
	return 1, 1 - as
}

// Draw composites src over the dst backdrop and stores the result in bitmap.
// The bitmap may share its image with dst, in which case dst is updated in place.
// Only the intersection of the three bounds is touched.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA) {
	if bitmap == nil {
		bitmap = NewBitmap(src.Bounds())
	}
	rect := src.Bounds().Intersect(dst.Bounds()).Intersect(bitmap.Img.Bounds())

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			si := src.PixOffset(x, y)
			di := dst.PixOffset(x, y)
			bi := bitmap.Img.PixOffset(x, y)

			s := src.Pix[si : si+4 : si+4]
			d := dst.Pix[di : di+4 : di+4]
			out := bitmap.Img.Pix[bi : bi+4 : bi+4]

			// Exact fast paths for the common source-over cases.
			if op.current == SrcOver {
				switch s[3] {
				case 0:
					copy(out, d)
					continue
				case 0xff:
					copy(out, s)
					continue
				}
			}

			as := float64(s[3]) / 255
			ab := float64(d[3]) / 255
			fa, fb := op.factors(as, ab)

			ao := as*fa + ab*fb
			if ao <= 0 {
				out[0], out[1], out[2], out[3] = 0, 0, 0, 0
				continue
			}
			for c := 0; c < 3; c++ {
				// Premultiplied mix, then back to straight alpha.
				cs := as * float64(s[c]) / 255
				cb := ab * float64(d[c]) / 255
				out[c] = toByte((cs*fa + cb*fb) / ao)
			}
			out[3] = toByte(ao)
		}
	}
}

func toByte(v float64) uint8 {
	return uint8(utils.Clamp(math.Round(v*255), 0, 255))
}
