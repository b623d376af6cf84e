package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"recode/internal/config"
	"recode/internal/logging"
	"recode/internal/model"
)

// aliases maps the terse historical flag spellings (--t, --d, --c, --51) to
// their canonical names.
var aliases = map[string]string{
	"t":  config.KeyTarget,
	"d":  config.KeyDelete,
	"c":  config.KeyCodec,
	"51": config.KeySurround,
}

// NormalizeFlagName resolves aliases and accepts underscores in place of
// dashes, so --no_overwrite and --no-overwrite are the same flag.
func NormalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// BindRunFlags registers the recoding flags on fs.
func BindRunFlags(fs *pflag.FlagSet) {
	fs.StringP(config.KeyTarget, "t", "", "Output file or directory (default: next to the input)")
	fs.String(config.KeyScale, "", "Scale video to 1080p or 720p")
	fs.String(config.KeyAbr, model.DefaultAudioBitrate, "AAC audio bitrate")
	fs.Bool(config.KeyNoOverwrite, false, "Do not overwrite existing outputs (ffmpeg asks instead)")
	fs.BoolP(config.KeyDelete, "d", false, "Delete the source file after a successful recode")
	fs.Bool(config.KeySurround, false, "Name outputs as AAC5.1 to AAC2.1 remuxes")
	fs.StringP(config.KeyCodec, "c", string(model.DefaultCodec), "Video codec: amf, libx264, libx265")
}

// BindGlobalFlags registers flags shared by every subcommand.
func BindGlobalFlags(fs *pflag.FlagSet) {
	fs.BoolP(config.KeyVerbose, "v", false, "Debug logging and full ffmpeg output")
	fs.String(config.KeyLogFile, logging.DefaultFile, "Append-only log file")
	fs.String(config.KeyLogLevel, "info", "Log level: debug, info, warn, error")
	fs.String(config.KeyFFmpeg, "", "Path to ffmpeg (default: ffmpeg from PATH)")
	fs.String("config", "", "Config file (default: config.toml in the user config dir)")
}

// BindExecFlags registers flags only meaningful when recoding.
func BindExecFlags(fs *pflag.FlagSet) {
	fs.Bool(config.KeyNoLock, false, "Do not serialize hardware encoder use across processes")
	fs.Bool(config.KeyDryRun, false, "Show the plan without running ffmpeg")
}
