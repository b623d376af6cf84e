package pipeline

import (
	"strings"

	"recode/internal/model"
)

// scaleFilters maps the recognized scale tokens to ffmpeg scale arguments.
var scaleFilters = map[string]string{
	"1080p": "-1:1080",
	"720p":  "-1:720",
}

// ScaleFilter returns the scale filter for token and whether token was
// recognized. Tokens are matched exactly.
func ScaleFilter(token string) (string, bool) {
	f, ok := scaleFilters[token]
	return f, ok
}

// Normalize turns raw options into Settings. It never fails: unrecognized
// values degrade to defaults.
func Normalize(opts model.CLIOptions) model.Settings {
	abr := strings.TrimSpace(opts.AudioBitrate)
	if abr == "" {
		abr = model.DefaultAudioBitrate
	}

	codec := model.DefaultCodec
	if strings.TrimSpace(opts.Codec) != "" {
		codec, _ = model.ParseCodec(opts.Codec)
	}

	filter, ok := ScaleFilter(opts.Scale)
	token := ""
	if ok {
		token = opts.Scale
	}

	return model.Settings{
		Codec:          codec,
		AudioBitrate:   abr,
		ScaleFilter:    filter,
		ScaleToken:     token,
		ForceOverwrite: opts.ForceOverwrite,
		DeleteInput:    opts.DeleteInput,
		Surround:       opts.Surround,
		Suffix:         Suffix(opts.Surround, abr, token),
	}
}

// Suffix derives the output filename suffix. Surround outputs always use
// model.SurroundSuffix regardless of bitrate or scale.
func Suffix(surround bool, abr, scaleToken string) string {
	if surround {
		return model.SurroundSuffix
	}
	s := "_" + abr
	if scaleToken != "" {
		s += "_" + scaleToken
	}
	return s
}
