package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Codec selects the video encoder family.
type Codec string

const (
	CodecAMF     Codec = "amf"
	CodecLibx264 Codec = "libx264"
	CodecLibx265 Codec = "libx265"
)

// DefaultCodec is used when no codec is given at all.
const DefaultCodec = CodecAMF

// DefaultAudioBitrate is the AAC bitrate token used when none is given.
const DefaultAudioBitrate = "192k"

// SurroundSuffix marks outputs remuxed from 5.1 to 2.1 audio.
const SurroundSuffix = "AAC2.1"

var lower = cases.Lower(language.Und)

// ParseCodec lower-cases s and matches it against the known codecs.
// Unknown values map to CodecLibx265 with ok=false.
func ParseCodec(s string) (c Codec, ok bool) {
	switch Codec(lower.String(strings.TrimSpace(s))) {
	case CodecAMF:
		return CodecAMF, true
	case CodecLibx264:
		return CodecLibx264, true
	case CodecLibx265:
		return CodecLibx265, true
	default:
		return CodecLibx265, false
	}
}

// IsHardware reports whether the codec drives a GPU encoder that may not
// tolerate concurrent sessions.
func (c Codec) IsHardware() bool {
	return c == CodecAMF
}

// CLIOptions holds user-configurable runtime options as parsed from flags,
// environment and config file.
type CLIOptions struct {
	Input          string
	Target         string // Output file or directory; empty = next to input.
	Scale          string // 1080p | 720p | anything else = no scaling
	AudioBitrate   string
	Codec          string // amf | libx264 | libx265
	ForceOverwrite bool
	DeleteInput    bool
	Surround       bool

	FFmpegPath string
	Verbose    bool
	LogFile    string
	LogLevel   string
	Lock       bool
	DryRun     bool
}

// Settings is the normalized, read-only form of CLIOptions shared by every
// file in a run.
type Settings struct {
	Codec          Codec
	AudioBitrate   string
	ScaleFilter    string // e.g. "-1:1080"; empty = no scaling
	ScaleToken     string // recognized token, e.g. "1080p"
	ForceOverwrite bool
	DeleteInput    bool
	Surround       bool
	Suffix         string // derived from Surround, AudioBitrate and ScaleToken
}
