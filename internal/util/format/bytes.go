package format

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Bytes converts a byte count into a human-readable string (e.g., "1.5 MiB").
func Bytes(b int64) string {
	if b < 0 {
		b = 0
	}
	return humanize.IBytes(uint64(b))
}

// Elapsed renders d as HH:MM:SS using whole seconds. Hours are not capped.
func Elapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
