package syncicon

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/tandemwatch/syncicon/utils"
)

// ImagesDir is the directory, relative to the extension root, holding the icons.
const ImagesDir = "images"

// IconSpec pairs an output file name with the icon side in pixels.
type IconSpec struct {
	Name string
	Size int
}

// DefaultIcons are the icon sizes required by the extension manifest.
var DefaultIcons = []IconSpec{
	{Name: "icon16.png", Size: 16},
	{Name: "icon48.png", Size: 48},
	{Name: "icon128.png", Size: 128},
}

// Generator renders a set of icons and writes them into the extension directory.
type Generator struct {
	Renderer *Renderer
	BaseDir  string
	Icons    []IconSpec
	Out      io.Writer // confirmation messages; nil discards them
}

// NewGenerator returns a generator writing the default icons under baseDir.
func NewGenerator(baseDir string) *Generator {
	return &Generator{
		Renderer: NewRenderer(),
		BaseDir:  baseDir,
		Icons:    DefaultIcons,
		Out:      io.Discard,
	}
}

// Path returns the destination file of the icon.
func (g *Generator) Path(spec IconSpec) string {
	return filepath.Join(g.BaseDir, ImagesDir, spec.Name)
}

// Run renders and writes every icon in order. It stops at the first failure,
// in which case no confirmation is printed for the failing icon.
// The images directory is expected to exist.
func (g *Generator) Run() ([]string, error) {
	out := g.Out
	if out == nil {
		out = io.Discard
	}
	r := g.Renderer
	if r == nil {
		r = NewRenderer()
	}

	paths := make([]string, 0, len(g.Icons))
	for _, spec := range g.Icons {
		path := g.Path(spec)

		img, err := r.Render(spec.Size)
		if err != nil {
			return paths, fmt.Errorf("%s: %w", path, err)
		}
		if err := writeImg(path, img); err != nil {
			return paths, fmt.Errorf("%s: %w", path, err)
		}
		paths = append(paths, path)

		fmt.Fprintf(out, "%s Created %s (%dx%d)\n",
			utils.DecorateText("✓", utils.SuccessMessage), path, spec.Size, spec.Size)
	}
	fmt.Fprintf(out, "\n%s\n", utils.DecorateText("All icons created successfully!", utils.SuccessMessage))

	return paths, nil
}
