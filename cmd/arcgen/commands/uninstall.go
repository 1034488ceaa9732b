package commands

import (
	"github.com/spf13/cobra"

	"github.com/nubificus/arcgen/cmd/arcgen/handlers"
)

// Uninstall returns the uninstall command.
func Uninstall(global *globalFlags) *cobra.Command {
	var opts handlers.Options

	cmd := &cobra.Command{
		Use:   uninstallArg,
		Short: "Print helm uninstall commands for every combination",
		Long: `Uninstall prints one helm uninstall command per combination, including
combinations that install skips. No values files are read or written.

Example:
  arcgen uninstall | sh`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Uninstall(cmd.Context(), global.options(cmd, opts))
		},
	}

	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Do not print the generated combinations")

	return cmd
}
