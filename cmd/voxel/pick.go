//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sqweek/dialog"
)

// pickMaps asks for the colormap and heightmap with native file dialogs and
// feeds the choices in as if they were passed on the command line. Unless
// both are chosen the configured map is used. It runs before logging is set
// up, so failures go to stderr.
func pickMaps(fs *flag.FlagSet) {
	colorPath, err := pickImage("Select Colormap Image")
	if err != nil {
		return
	}
	heightPath, err := pickImage("Select Heightmap Image")
	if err != nil {
		return
	}
	_ = fs.Set("colormap", colorPath)
	_ = fs.Set("heightmap", heightPath)
}

func pickImage(title string) (string, error) {
	path, err := dialog.File().
		Filter("Image", "png", "jpg", "jpeg", "gif", "bmp", "tif", "tiff", "webp").
		Filter("All Files", "*").
		Title(title).
		Load()
	if err != nil && !errors.Is(err, dialog.ErrCancelled) {
		fmt.Fprintf(os.Stderr, "File dialog error: %v\n", err)
	}
	return path, err
}
