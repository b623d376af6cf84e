package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recode/internal/cli"
	"recode/internal/config"
	"recode/internal/dirs"
	"recode/internal/logging"
	"recode/internal/model"
	"recode/internal/pipeline"
	"recode/internal/ui"
	"recode/internal/util/bitrate"
	"recode/internal/util/deps"
)

type runMode struct {
	DryRunOnly bool
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "run <input>",
		Short:         "Recode a video file or every video file in a directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExecute(cmd, args, runMode{})
		},
	}
	cli.BindRunFlags(cmd.Flags())
	cli.BindExecFlags(cmd.Flags())
	return cmd
}

// assembleRunInputs resolves options with precedence flag > env > config > default.
func assembleRunInputs(cmd *cobra.Command, args []string) (model.CLIOptions, error) {
	v, err := config.Init(cmd.Flags(), getPersistentString(cmd, "config", ""))
	if err != nil {
		return model.CLIOptions{}, err
	}
	opts := config.Options(v)
	opts.Input = inputArg(args)
	return opts, nil
}

func runExecute(cmd *cobra.Command, args []string, mode runMode) error {
	in, err := assembleRunInputs(cmd, args)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	if mode.DryRunOnly {
		in.DryRun = true
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:   in.LogLevel,
		Verbose: in.Verbose,
		File:    in.LogFile,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	defer func() { _ = closeLog() }()

	logger.Debug("recode run started",
		zap.String("run", uuid.NewString()),
		zap.String("input", in.Input),
		zap.Bool("dry_run", in.DryRun))
	warnOnOptions(logger, in)

	settings := pipeline.Normalize(in)
	svcOpts := []pipeline.Option{
		pipeline.WithSettings(settings),
		pipeline.WithFFmpegPath(resolveFFmpeg(logger, in)),
		pipeline.WithVerbose(in.Verbose),
		pipeline.WithStdin(cmd.InOrStdin()),
		pipeline.WithLogger(logger),
	}
	if in.Lock && !in.DryRun {
		if p, lerr := dirs.LockFile(); lerr == nil {
			svcOpts = append(svcOpts, pipeline.WithLockPath(p))
		} else {
			logger.Warn("no state directory for the encoder lock", zap.Error(lerr))
		}
	}
	svc := pipeline.NewService(svcOpts...)

	start := time.Now()
	var sum pipeline.Summary
	if in.DryRun {
		sum, err = svc.Plan(cmd.Context(), in.Input, in.Target)
	} else {
		sum, err = svc.Run(cmd.Context(), in.Input, in.Target)
	}
	if err != nil {
		var ce *pipeline.ConfigError
		if errors.As(err, &ce) {
			// Already logged by the service.
			return &ExitError{Code: ExitCLIError}
		}
		return &ExitError{Code: ExitCLIError, Err: err}
	}

	out := cmd.OutOrStdout()
	if in.DryRun {
		fmt.Fprintln(out, ui.PlanReport(sum, terminalWidth()))
		return nil
	}
	fmt.Fprintln(out, ui.SummaryReport(sum, time.Since(start), terminalWidth(), ui.DefaultStyles()))
	return nil
}

// warnOnOptions logs options that will silently fall back to a default.
func warnOnOptions(logger *zap.Logger, in model.CLIOptions) {
	if in.Codec != "" {
		if c, ok := model.ParseCodec(in.Codec); !ok {
			logger.Warn("unrecognized codec, falling back", zap.String("codec", in.Codec), zap.String("using", string(c)))
		}
	}
	if in.Scale != "" {
		if _, ok := pipeline.ScaleFilter(in.Scale); !ok {
			logger.Warn("unrecognized scale, video will not be scaled", zap.String("scale", in.Scale))
		}
	}
	kbps, err := bitrate.ParseKbps(in.AudioBitrate)
	switch {
	case in.AudioBitrate == "":
	case err != nil:
		logger.Warn("audio bitrate not understood, passing it to ffmpeg unchanged",
			zap.String("abr", in.AudioBitrate), zap.Error(err))
	case !bitrate.SaneAudioKbps(kbps):
		logger.Warn("unusual audio bitrate", zap.String("abr", in.AudioBitrate), zap.Int("kbps", kbps))
	}
}

// resolveFFmpeg locates ffmpeg up front. A missing binary is not fatal here;
// each file then fails with "ffmpeg not found".
func resolveFFmpeg(logger *zap.Logger, in model.CLIOptions) string {
	p, err := deps.FindFFmpeg(in.FFmpegPath)
	if err == nil {
		logger.Debug("using ffmpeg", zap.String("path", p))
		return p
	}
	if !in.DryRun {
		logger.Warn("ffmpeg lookup failed", zap.Error(err))
	}
	if in.FFmpegPath != "" {
		return in.FFmpegPath
	}
	return deps.FFmpegName
}
