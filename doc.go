/*
Package syncicon draws the browser extension icon: two "sync" rings holding play
glyphs, joined by a line with a dot in the middle. The icon is drawn procedurally
from a 128px reference design, so every output size is rendered natively instead
of being scaled down from a bitmap.

The package provides a command line tool which writes the 16, 48 and 128 pixel
icons into the extension's images directory:

	$ syncicon

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/tandemwatch/syncicon"
	)

	func main() {
		r := syncicon.NewRenderer()

		img, err := r.Render(32)
		if err != nil {
			fmt.Printf("Error rendering icon: %s", err.Error())
		}
		_ = img
	}
*/
package syncicon
