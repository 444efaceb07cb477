//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"voxel-space/internal/logger"
)

func main() {
	c := parseCLI()
	if !c.headless && c.flags.WriteConfig == "" {
		fmt.Fprintln(os.Stderr, "The windowed build of voxel requires the ebiten build tag.")
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/voxel`, or pass -headless.")
		os.Exit(2)
	}

	cfg, s := prepare(c)
	if cfg == nil {
		return
	}
	defer logger.Sync()
	runHeadless(c, s)
}
