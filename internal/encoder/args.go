package encoder

import "recode/internal/model"

// Executable is the program name placed at index 0 of built commands.
const Executable = "ffmpeg"

// AMF rate control is fixed policy: peak-constrained VBR around 2 Mbps.
const (
	amfTargetBitrate = "2M"
	amfMaxBitrate    = "3M"
	amfBufferSize    = "3M"
)

// BuildArgs constructs the full ffmpeg command for one file. Index 0 is the
// executable name; the output path is always the last token.
func BuildArgs(s model.Settings, inputPath, outputPath string) []string {
	args := []string{Executable, "-i", inputPath}

	switch s.Codec {
	case model.CodecAMF:
		args = append(args, amfArgs()...)
	case model.CodecLibx264:
		args = append(args, libx264Args()...)
	default:
		args = append(args, libx265Args()...)
	}

	// Audio is always stereo AAC.
	args = append(args,
		"-c:a", "aac",
		"-ac", "2",
		"-b:a", s.AudioBitrate,
	)

	if s.ScaleFilter != "" {
		args = append(args, "-vf", "scale="+s.ScaleFilter)
	}

	args = append(args, outputPath)

	// -y must precede the input so ffmpeg treats it as a global option.
	if s.ForceOverwrite {
		args = append(args[:1], append([]string{"-y"}, args[1:]...)...)
	}
	return args
}

func amfArgs() []string {
	return []string{
		"-pix_fmt", "yuv420p",
		"-c:v", "h264_amf",
		"-quality", "balanced",
		"-rc", "vbr_peak",
		"-b:v", amfTargetBitrate,
		"-maxrate", amfMaxBitrate,
		"-bufsize", amfBufferSize,
	}
}

func libx264Args() []string {
	return []string{
		"-c:v", "libx264",
		"-crf", "23",
		"-preset", "medium",
	}
}

func libx265Args() []string {
	return []string{
		"-c:v", "libx265",
		"-crf", "28",
		"-preset", "medium",
	}
}
