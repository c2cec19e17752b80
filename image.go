package syncicon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// encodeImg encodes an image as PNG to a destination of type io.Writer.
func encodeImg(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
}

// writeImg encodes img into the file at path, replacing any existing file.
// The file is removed again if the encoding fails half way.
func writeImg(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("unable to close the destination file: %w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := encodeImg(f, img); err != nil {
		return fmt.Errorf("could not encode the icon: %w", err)
	}
	return nil
}
