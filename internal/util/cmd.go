package util

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// defaultStderrTail bounds how much executor stderr is kept for diagnostics.
const defaultStderrTail = 16 * 1024

// CmdSpec describes a subprocess to run.
type CmdSpec struct {
	Path string   // Binary path
	Args []string // Arguments, not including Path
	Env  []string // Optional environment variables (KEY=VALUE). If nil, inherit.
	Dir  string   // Working directory; empty = inherit.

	// Verbose streams stdout/stderr to the console while still capturing
	// the stderr tail.
	Verbose bool
	// Stdin is connected to the child when non-nil, so interactive prompts
	// can be answered.
	Stdin io.Reader
	// StderrTail is the number of trailing stderr bytes to keep; 0 = 16 KiB.
	StderrTail int
}

// CmdResult contains captured output and exit status.
type CmdResult struct {
	Stderr  []byte
	Code    int
	Started bool // false when the process could not be launched at all
	Err     error
}

// CmdRunner runs subprocesses. Tests substitute a fake.
type CmdRunner interface {
	Run(ctx context.Context, spec CmdSpec) (CmdResult, error)
}

type execRunner struct{}

// NewDefaultRunner returns a CmdRunner backed by os/exec.
func NewDefaultRunner() CmdRunner {
	return execRunner{}
}

// Run executes the command and blocks until it exits.
// On non-zero exit, returns an error describing the exit code, while also
// populating CmdResult.Code and the captured stderr tail.
func (execRunner) Run(ctx context.Context, spec CmdSpec) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	if spec.Env != nil {
		cmd.Env = append(os.Environ(), spec.Env...)
	}
	if spec.Stdin != nil {
		cmd.Stdin = spec.Stdin
	}

	tail := newTailBuffer(spec.StderrTail)
	if spec.Verbose || spec.Stdin != nil {
		cmd.Stdout = os.Stdout
		cmd.Stderr = io.MultiWriter(tail, os.Stderr)
	} else {
		cmd.Stderr = tail
	}

	if err := cmd.Start(); err != nil {
		return CmdResult{Code: -1, Err: err}, fmt.Errorf("start %s: %w", spec.Path, err)
	}

	waitErr := cmd.Wait()

	code := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			code = exitErr.ExitCode()
		} else {
			code = -1
		}
	}

	res := CmdResult{
		Stderr:  tail.Bytes(),
		Code:    code,
		Started: true,
		Err:     waitErr,
	}
	if waitErr != nil {
		return res, fmt.Errorf("command failed (exit %d): %w", code, waitErr)
	}
	return res, nil
}

// tailBuffer keeps only the last max bytes written to it.
type tailBuffer struct {
	max int
	buf []byte
}

func newTailBuffer(max int) *tailBuffer {
	if max <= 0 {
		max = defaultStderrTail
	}
	return &tailBuffer{max: max}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) Bytes() []byte {
	return t.buf
}

// ShellQuote returns a printable shell-like command string for logging.
func ShellQuote(args []string) string {
	b := &strings.Builder{}
	for i, a := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(quote(a))
	}
	return b.String()
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	// Simple quoting: wrap in single quotes and escape existing single quotes.
	if strings.ContainsAny(s, " \t\n\"'\\$`(){}[]*&;|<>?!") {
		return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
	}
	return s
}
