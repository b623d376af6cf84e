package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"recode/internal/cli"
)

const (
	ExitOK         = 0
	ExitCLIError   = 1
	ExitMissingDep = 2
)

// ExitError wraps an error with a process exit code. A nil Err means the
// failure has already been reported.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "recode <input>",
		Short: "Batch re-encode video files with ffmpeg",
		Long: "recode re-encodes a video file, or every video file directly inside a directory, " +
			"to H.264/HEVC MP4 with stereo AAC audio. Outputs are named after the input with a " +
			"bitrate/scale suffix, and matching subtitle files are renamed to follow them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExecute(cmd, args, runMode{})
		},
	}
	root.SetGlobalNormalizationFunc(cli.NormalizeFlagName)

	// Persistent flags available to all subcommands
	cli.BindGlobalFlags(root.PersistentFlags())

	// Run flags also live on root so `recode <input>` works without `run`.
	cli.BindRunFlags(root.Flags())
	cli.BindExecFlags(root.Flags())

	root.AddCommand(newRunCmd())
	root.AddCommand(newPlanCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

// Helpers
func getPersistentString(cmd *cobra.Command, name, def string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil || v == "" {
		return def
	}
	return v
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// terminalWidth returns the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
