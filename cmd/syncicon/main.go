package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tandemwatch/syncicon"
	"github.com/tandemwatch/syncicon/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┬ ┬┌┐┌┌─┐┬┌─┐┌─┐┌┐┌
└─┐└┬┘│││├  ││  │ ││││
└─┘ ┴ ┘└┘└─┘┴└─┘└─┘┘└┘

Extension icon generator.
    Version: %s

Writes icon16.png, icon48.png and icon128.png into %s.

`

// defaultBaseDir is the extension root, relative to the working directory.
const defaultBaseDir = "chrome-extension"

// Version indicates the current build version.
var Version string

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version, filepath.Join(defaultBaseDir, syncicon.ImagesDir))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	utils.Colorize = term.IsTerminal(int(os.Stdout.Fd()))

	now := time.Now()

	gen := syncicon.NewGenerator(defaultBaseDir)
	gen.Out = os.Stdout

	if _, err := gen.Run(); err != nil {
		log.Fatalf("%s\n\t%s",
			utils.DecorateText("Error generating the icons:", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("Reason: %v", err), utils.DefaultMessage),
		)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}
