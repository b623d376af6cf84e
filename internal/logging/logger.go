// Package logging builds the process logger: human-readable lines mirrored
// to the console and appended to a log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"recode/internal/util"
)

// DefaultFile is the log file used when none is configured.
const DefaultFile = "recode.log"

const timeLayout = "2006-01-02 15:04:05"

// Options describes logger construction parameters.
type Options struct {
	Level   string    // debug | info | warn | error; empty = info
	Verbose bool      // forces debug level
	File    string    // append-only log file; empty disables the file sink
	Console io.Writer // defaults to os.Stderr
	// Color forces colored console levels on or off; nil = auto-detect.
	Color *bool
}

// New constructs a logger and a close func that flushes it and releases the
// log file. Callers own the returned logger for the whole process lifetime.
func New(opts Options) (*zap.Logger, func() error, error) {
	level := ParseLevel(opts.Level)
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	enabler := zap.NewAtomicLevelAt(level)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	color := useColor(console)
	if opts.Color != nil {
		color = *opts.Color
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig(color)), zapcore.AddSync(console), enabler),
	}

	var file *os.File
	if path := strings.TrimSpace(opts.File); path != "" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := util.EnsureDir(dir); err != nil {
				return nil, nil, fmt.Errorf("ensure log directory: %w", err)
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		file = f
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig(false)), zapcore.AddSync(f), enabler))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	closeFn := func() error {
		_ = logger.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return logger, closeFn, nil
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func encoderConfig(color bool) zapcore.EncoderConfig {
	levelEnc := bracketLevel
	if color {
		levelEnc = bracketColorLevel
	}
	return zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeLevel:      levelEnc,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

func bracketLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

var levelColors = map[zapcore.Level]string{
	zapcore.DebugLevel: "\033[1;96m",
	zapcore.InfoLevel:  "\033[1;94m",
	zapcore.WarnLevel:  "\033[1;93m",
	zapcore.ErrorLevel: "\033[1;91m",
}

func bracketColorLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	c, ok := levelColors[l]
	if !ok {
		c = "\033[1;91m"
	}
	enc.AppendString(c + "[" + l.CapitalString() + "]\033[0m")
}

func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
