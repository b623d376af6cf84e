package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"recode/internal/config"
	"recode/internal/dirs"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the recode config file",
	}

	initCmd := &cobra.Command{
		Use:           "init",
		Short:         "Write a config file populated with the defaults",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			force, _ := cmd.Flags().GetBool("force")
			if err := config.WriteSample(path, force); err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	pathCmd := &cobra.Command{
		Use:           "path",
		Short:         "Print the config file location",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

func configPath(cmd *cobra.Command) (string, error) {
	if p := getPersistentString(cmd, "config", ""); p != "" {
		return p, nil
	}
	return dirs.ConfigFile()
}
