package bitrate

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseKbps parses an ffmpeg bitrate token such as "192k", "1.5M" or
// "128000" into kilobits per second.
func ParseKbps(token string) (int, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return 0, fmt.Errorf("empty bitrate")
	}
	mult := 0.001
	switch s[len(s)-1] {
	case 'k', 'K':
		mult = 1
		s = s[:len(s)-1]
	case 'm', 'M':
		mult = 1000
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid bitrate %q", token)
	}
	return int(v*mult + 0.5), nil
}

// Clamp returns v constrained to [min, max].
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// SaneAudioKbps reports whether kbps is a plausible AAC stereo bitrate.
func SaneAudioKbps(kbps int) bool {
	return Clamp(kbps, 32, 512) == kbps
}
