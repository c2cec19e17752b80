package syncicon

import (
	"image/color"

	"github.com/tandemwatch/syncicon/utils"
)

// Palette holds the colors used to paint the icon.
type Palette struct {
	Background color.NRGBA
	Primary    color.NRGBA // outer rings
	Secondary  color.NRGBA // inner rings, connecting line and dot
	Highlight  color.NRGBA // play glyphs
}

// DefaultPalette is the dark slate theme of the extension.
var DefaultPalette = Palette{
	Background: utils.MustHexToNRGBA("#1E293B"),
	Primary:    utils.MustHexToNRGBA("#7C3AED"),
	Secondary:  utils.MustHexToNRGBA("#06B6D4"),
	Highlight:  utils.MustHexToNRGBA("#FF6B6B"),
}
