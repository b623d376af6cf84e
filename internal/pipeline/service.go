// Package pipeline normalizes options and orchestrates the per-file recode
// workflow: resolve output → build command → run ffmpeg → finalize.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"recode/internal/encoder"
	"recode/internal/model"
	"recode/internal/util"
	"recode/internal/util/format"
	"recode/internal/util/media"
)

// ConfigError reports an unusable top-level input path. It aborts the whole
// run; every other failure is per-file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return "input path is required"
	}
	if e.Err != nil {
		return fmt.Sprintf("input path %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("input path %q is neither a file nor a directory", e.Path)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Service orchestrates recoding of a single file or a directory of files.
type Service struct {
	settings   model.Settings
	ffmpegPath string
	verbose    bool
	stdin      io.Reader
	lockPath   string
	runner     util.CmdRunner
	logger     *zap.Logger
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithSettings sets the normalized settings shared by every file.
func WithSettings(s model.Settings) Option {
	return func(svc *Service) {
		svc.settings = s
	}
}

// WithFFmpegPath sets the ffmpeg binary path.
func WithFFmpegPath(p string) Option {
	return func(s *Service) {
		s.ffmpegPath = p
	}
}

// WithVerbose streams ffmpeg output to the console.
func WithVerbose(v bool) Option {
	return func(s *Service) {
		s.verbose = v
	}
}

// WithStdin connects r to ffmpeg when overwriting is not forced, so ffmpeg
// can ask before replacing an existing output.
func WithStdin(r io.Reader) Option {
	return func(s *Service) {
		s.stdin = r
	}
}

// WithLockPath enables the hardware encoder lock at path.
func WithLockPath(p string) Option {
	return func(s *Service) {
		s.lockPath = p
	}
}

// WithRunner injects a custom command runner (useful for testing).
func WithRunner(r util.CmdRunner) Option {
	return func(s *Service) {
		s.runner = r
	}
}

// WithLogger sets the logger used for every log line of the run.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithClock overrides time.Now for elapsed-time measurement.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService constructs a new Service with the provided options.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, o := range opts {
		o(s)
	}
	if s.runner == nil {
		s.runner = util.NewDefaultRunner()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.settings.Suffix == "" {
		s.settings = Normalize(model.CLIOptions{})
	}
	return s
}

// Settings returns the settings the service runs with.
func (s *Service) Settings() model.Settings {
	return s.settings
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Outcomes    []model.JobOutcome
	Succeeded   int
	Skipped     int
	Failed      int
	Planned     int
	OutputBytes int64
	Interrupted bool
}

// Total is the number of files looked at.
func (s *Summary) Total() int {
	return len(s.Outcomes)
}

func (s *Summary) add(o model.JobOutcome) {
	s.Outcomes = append(s.Outcomes, o)
	switch {
	case o.Result == model.Succeeded:
		s.Succeeded++
		s.OutputBytes += o.Bytes
	case o.Result == model.SkippedNotVideo:
		s.Skipped++
	case o.Result == model.Planned:
		s.Planned++
	case o.Result.Failed():
		s.Failed++
	}
}

// Run recodes input, which must be a regular file or a directory. For a
// directory only its immediate regular files are considered. Per-file
// failures are recorded in the Summary; only a *ConfigError is returned.
func (s *Service) Run(ctx context.Context, input, target string) (Summary, error) {
	files, err := s.inputs(input)
	if err != nil {
		return Summary{}, err
	}

	if s.lockPath != "" && s.settings.Codec.IsHardware() {
		release, lerr := acquireEncoderLock(ctx, s.lockPath, s.logger)
		if lerr != nil {
			s.logger.Warn("running without encoder lock", zap.Error(lerr))
		} else {
			defer release()
		}
	}

	return s.each(ctx, files, func(path string) model.JobOutcome {
		return s.ProcessFile(ctx, path, target)
	}), nil
}

// Plan resolves outputs and commands for input without running ffmpeg.
func (s *Service) Plan(ctx context.Context, input, target string) (Summary, error) {
	files, err := s.inputs(input)
	if err != nil {
		return Summary{}, err
	}
	return s.each(ctx, files, func(path string) model.JobOutcome {
		o, ok := s.prepare(path, target)
		if ok {
			o.Result = model.Planned
		}
		return o
	}), nil
}

func (s *Service) inputs(input string) ([]string, error) {
	switch {
	case input == "":
		s.logger.Error("input path is required")
		return nil, &ConfigError{}
	case util.IsFile(input):
		s.logger.Debug("input is a file", zap.String("path", input))
		return []string{input}, nil
	case util.IsDir(input):
		s.logger.Debug("input is a directory", zap.String("path", input))
		files, err := util.ListFiles(input)
		if err != nil {
			s.logger.Error("cannot read input directory", zap.String("path", input), zap.Error(err))
			return nil, &ConfigError{Path: input, Err: err}
		}
		return files, nil
	default:
		err := &ConfigError{Path: input}
		s.logger.Error(err.Error())
		return nil, err
	}
}

func (s *Service) each(ctx context.Context, files []string, fn func(string) model.JobOutcome) Summary {
	var sum Summary
	for _, f := range files {
		if ctx.Err() != nil {
			s.logger.Warn("interrupted, remaining files not processed", zap.Int("remaining", len(files)-sum.Total()))
			sum.Interrupted = true
			break
		}
		sum.add(fn(f))
	}
	return sum
}

// ProcessFile recodes a single input file. It never returns an error; the
// outcome carries the result and any failure detail.
func (s *Service) ProcessFile(ctx context.Context, input, target string) model.JobOutcome {
	o, ok := s.prepare(input, target)
	if !ok {
		return o
	}

	s.logger.Debug("starting recode", zap.String("input", input))
	s.logger.Debug("output file", zap.String("output", o.Output))
	s.logger.Debug(util.ShellQuote(o.Command))
	s.logger.Info(fmt.Sprintf("START: %s -> %s", input, o.Output))

	encOpts := encoder.Options{
		FFmpegPath: s.ffmpegPath,
		Verbose:    s.verbose,
		Runner:     s.runner,
	}
	if !s.settings.ForceOverwrite {
		encOpts.Stdin = s.stdin
	}

	start := s.now()
	n, err := encoder.Encode(ctx, o.Command, encOpts)
	o.Elapsed = s.now().Sub(start)
	if err != nil {
		o.Err = err
		o.Result = s.logEncodeFailure(input, err)
		return o
	}
	s.logger.Info("Recoding completed in: " + format.Elapsed(o.Elapsed))
	o.Result = model.Succeeded
	o.Bytes = n

	if s.settings.DeleteInput {
		if err := os.Remove(input); err != nil {
			s.logger.Error("error deleting input file", zap.String("input", input), zap.Error(err))
			o.Warnings = append(o.Warnings, fmt.Sprintf("delete input: %v", err))
		} else {
			s.logger.Info("deleted input file", zap.String("input", input))
		}
	}

	_, errs := media.RelocateSubtitles(input, o.Output, s.logger)
	for _, e := range errs {
		o.Warnings = append(o.Warnings, e.Error())
	}
	return o
}

// prepare runs the checks that precede encoding and resolves the output path
// and command. ok is false when the file must not be encoded.
func (s *Service) prepare(input, target string) (model.JobOutcome, bool) {
	o := model.JobOutcome{Input: input}

	if !util.Exists(input) {
		s.logger.Error("input file not found", zap.String("input", input))
		o.Result = model.FailedMissingInput
		o.Err = fmt.Errorf("input file not found: %s", input)
		return o, false
	}
	if !util.IsVideoFile(input) {
		s.logger.Debug("skipped: not a recognized video file", zap.String("input", input))
		o.Result = model.SkippedNotVideo
		return o, false
	}

	o.Output = media.OutputPath(input, target, s.settings.Suffix)
	o.Command = encoder.BuildArgs(s.settings, input, o.Output)
	return o, true
}

func (s *Service) logEncodeFailure(input string, err error) model.JobResult {
	if errors.Is(err, encoder.ErrExecutorNotFound) {
		s.logger.Error("ffmpeg executable not found",
			zap.String("input", input),
			zap.String("ffmpeg", s.ffmpegPath),
			zap.Error(err))
		s.logger.Error("ensure ffmpeg is installed and in PATH, or pass --ffmpeg")
		return model.FailedExecutorNotFound
	}

	if errors.Is(err, encoder.ErrMissingOutput) {
		s.logger.Error("ffmpeg exited cleanly but the output is missing, keeping input",
			zap.String("input", input), zap.Error(err))
		return model.FailedExecutor
	}

	s.logger.Error("error during ffmpeg recoding", zap.String("input", input), zap.Error(err))
	var ee *encoder.ExecError
	if errors.As(err, &ee) {
		s.logger.Error("command: " + ee.Cmd)
		if ee.Stderr != "" {
			s.logger.Error("ffmpeg output", zap.String("stderr", ee.Stderr))
		}
	}
	return model.FailedExecutor
}
