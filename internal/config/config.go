package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"recode/internal/dirs"
	"recode/internal/logging"
	"recode/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. RECODE_CODEC.
const EnvPrefix = "RECODE"

// Keys shared by flags, environment and config file.
const (
	KeyTarget      = "target"
	KeyScale       = "scale"
	KeyAbr         = "abr"
	KeyNoOverwrite = "no-overwrite"
	KeyDelete      = "delete"
	KeySurround    = "surround"
	KeyCodec       = "codec"
	KeyVerbose     = "verbose"
	KeyLogFile     = "log-file"
	KeyLogLevel    = "log-level"
	KeyFFmpeg      = "ffmpeg"
	KeyLock        = "lock"
	KeyNoLock      = "no-lock"
	KeyDryRun      = "dry-run"
)

// File is the on-disk shape of config.toml.
type File struct {
	Codec       string `toml:"codec" comment:"amf | libx264 | libx265"`
	Abr         string `toml:"abr" comment:"AAC audio bitrate"`
	Scale       string `toml:"scale" comment:"1080p | 720p | empty for no scaling"`
	NoOverwrite bool   `toml:"no-overwrite"`
	Delete      bool   `toml:"delete" comment:"delete the source after a successful recode"`
	Surround    bool   `toml:"surround"`
	FFmpeg      string `toml:"ffmpeg" comment:"ffmpeg binary; empty resolves ffmpeg from PATH"`
	LogFile     string `toml:"log-file"`
	LogLevel    string `toml:"log-level"`
	Lock        bool   `toml:"lock" comment:"serialize hardware encoder use across processes"`
}

// Defaults returns the built-in configuration.
func Defaults() File {
	return File{
		Codec:    string(model.DefaultCodec),
		Abr:      model.DefaultAudioBitrate,
		LogFile:  logging.DefaultFile,
		LogLevel: "info",
		Lock:     true,
	}
}

// Init builds a Viper instance layered as flag > env > file > default.
// cfgFile selects an explicit config file, which must then exist; otherwise
// config.{toml,yaml,json} is searched in the per-user config directory and
// may be absent.
func Init(flags *pflag.FlagSet, cfgFile string) (*viper.Viper, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault(KeyCodec, d.Codec)
	v.SetDefault(KeyAbr, d.Abr)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLock, d.Lock)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if cfgDir, err := dirs.ConfigDir(); err == nil {
			v.AddConfigPath(cfgDir)
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Options extracts run options from v. Input is left to the caller.
func Options(v *viper.Viper) model.CLIOptions {
	return model.CLIOptions{
		Target:         v.GetString(KeyTarget),
		Scale:          v.GetString(KeyScale),
		AudioBitrate:   v.GetString(KeyAbr),
		Codec:          v.GetString(KeyCodec),
		ForceOverwrite: !v.GetBool(KeyNoOverwrite),
		DeleteInput:    v.GetBool(KeyDelete),
		Surround:       v.GetBool(KeySurround),
		FFmpegPath:     v.GetString(KeyFFmpeg),
		Verbose:        v.GetBool(KeyVerbose),
		LogFile:        v.GetString(KeyLogFile),
		LogLevel:       v.GetString(KeyLogLevel),
		Lock:           v.GetBool(KeyLock) && !v.GetBool(KeyNoLock),
		DryRun:         v.GetBool(KeyDryRun),
	}
}

// WriteSample writes the default configuration as TOML to path. An existing
// file is only replaced when force is set.
func WriteSample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}
	data, err := toml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := dirs.Ensure(filepath.Dir(path)); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	header := "# recode configuration. Flags and RECODE_* environment variables override these values.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
