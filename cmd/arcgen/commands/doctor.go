package commands

import (
	"github.com/spf13/cobra"

	"github.com/nubificus/arcgen/cmd/arcgen/handlers"
)

// Doctor returns the doctor command.
func Doctor() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that helm is installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.OutOrStdout())
		},
	}
}
