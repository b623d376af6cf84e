package cmd

import (
	"github.com/spf13/cobra"

	"recode/internal/cli"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "plan <input>",
		Short:         "Show outputs and ffmpeg commands without executing",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExecute(cmd, args, runMode{DryRunOnly: true})
		},
	}
	// Reuse same flags; plan ignores actual encode
	cli.BindRunFlags(cmd.Flags())
	return cmd
}
