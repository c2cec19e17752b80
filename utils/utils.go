package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Contains returns true if the value is present in the collection.
func Contains[T comparable](collection []T, value T) bool {
	for _, v := range collection {
		if v == value {
			return true
		}
	}
	return false
}

// HexToNRGBA converts a hex color string (#rgb, #rrggbb or #rrggbbaa,
// with or without the leading hash) to a non-premultiplied color.
func HexToNRGBA(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(hex, "#")

	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]}) + "ff"
	case 6:
		s += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustHexToNRGBA is like HexToNRGBA but panics on malformed input.
// It is meant for package level color tables.
func MustHexToNRGBA(hex string) color.NRGBA {
	c, err := HexToNRGBA(hex)
	if err != nil {
		panic(err)
	}
	return c
}
