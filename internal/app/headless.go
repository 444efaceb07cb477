package app

import (
	"context"
	"fmt"
	"time"

	"voxel-space/internal/core"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz       int
	Frames   uint64        // stop after this many frames; 0 runs until ctx is done
	Controls core.Controls // held for every frame
}

// RunHeadless renders frames at a fixed rate without opening a window. It
// returns nil once cfg.Frames frames are done, or ctx.Err() when cancelled.
func RunHeadless(ctx context.Context, s *Session, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	dt := float32(d.Seconds())

	t := time.NewTicker(d)
	defer t.Stop()

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.Advance(cfg.Controls, dt)
			frame++
			if cfg.Frames > 0 && frame >= cfg.Frames {
				return nil
			}
		}
	}
}
