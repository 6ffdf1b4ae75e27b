package ioextract

import (
	"github.com/cheggaaa/pb/v3"
)

// newProgressBar creates a progress bar with consistent settings.
// Returns nil for small row counts, where a bar is just noise.
func newProgressBar(total int, prefix string) *pb.ProgressBar {
	if total < progressThreshold {
		return nil
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
