package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"recode/internal/config"
	"recode/internal/dirs"
	"recode/internal/ui"
	"recode/internal/util/deps"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose external dependencies (ffmpeg) and config locations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := ui.DefaultStyles()
			out := cmd.OutOrStdout()

			v, err := config.Init(cmd.Flags(), getPersistentString(cmd, "config", ""))
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}

			fmt.Fprintln(out, st.Title.Render("recode doctor"))
			if f := v.ConfigFileUsed(); f != "" {
				fmt.Fprintf(out, "%s %s\n", st.Header.Render("Config:"), f)
			} else {
				fmt.Fprintf(out, "%s %s\n", st.Header.Render("Config:"), st.Faint.Render("none (defaults)"))
			}
			if lock, lerr := dirs.LockFile(); lerr == nil {
				fmt.Fprintf(out, "%s   %s\n", st.Header.Render("Lock:"), lock)
			}

			ff, ferr := deps.FindFFmpeg(v.GetString(config.KeyFFmpeg))
			if ferr != nil {
				fmt.Fprintf(out, "%s %s\n", st.Header.Render("FFmpeg:"), st.Error.Render("missing"))
				return &ExitError{Code: ExitMissingDep, Err: ferr}
			}
			fmt.Fprintf(out, "%s %s %s\n", st.Header.Render("FFmpeg:"), ff, st.Success.Render("ok"))
			return nil
		},
	}
}
