package commands

import (
	"github.com/spf13/cobra"

	"github.com/nubificus/arcgen/cmd/arcgen/handlers"
)

// List returns the list command.
func List(global *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the runner matrix without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.List(global.configPath, format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", handlers.FormatText, "Output format: text, yaml or json")

	return cmd
}
