package encoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"recode/internal/util"
)

// ErrExecutorNotFound means ffmpeg could not be launched at all, which points
// at a setup problem rather than a bad input file.
var ErrExecutorNotFound = errors.New("ffmpeg executable not found")

// ErrMissingOutput means ffmpeg exited zero without leaving the output file.
var ErrMissingOutput = errors.New("ffmpeg reported success but produced no output")

// ExecError is returned when ffmpeg ran but exited non-zero.
type ExecError struct {
	Code   int
	Cmd    string
	Stderr string
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("ffmpeg exited with status %d", e.Code)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Options control ffmpeg execution.
type Options struct {
	FFmpegPath string // Binary to run; empty = "ffmpeg" from PATH.
	Verbose    bool
	// Stdin is handed to ffmpeg so it can prompt before overwriting an
	// existing output. Nil disables prompting.
	Stdin  io.Reader
	Runner util.CmdRunner
}

// Encode runs a command built by BuildArgs and, on success, returns the size
// of the produced output file. args[0] is replaced by opts.FFmpegPath.
func Encode(ctx context.Context, args []string, opts Options) (int64, error) {
	if len(args) < 2 {
		return 0, errors.New("encode: empty command")
	}
	runner := opts.Runner
	if runner == nil {
		runner = util.NewDefaultRunner()
	}
	bin := opts.FFmpegPath
	if bin == "" {
		bin = Executable
	}

	res, err := runner.Run(ctx, util.CmdSpec{
		Path:    bin,
		Args:    args[1:],
		Verbose: opts.Verbose,
		Stdin:   opts.Stdin,
	})
	if err != nil {
		if !res.Started && (errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)) {
			return 0, fmt.Errorf("%w: %s", ErrExecutorNotFound, bin)
		}
		return 0, &ExecError{
			Code:   res.Code,
			Cmd:    util.ShellQuote(append([]string{bin}, args[1:]...)),
			Stderr: strings.TrimSpace(string(res.Stderr)),
			Err:    err,
		}
	}

	fi, err := os.Stat(args[len(args)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMissingOutput, err)
	}
	return fi.Size(), nil
}
