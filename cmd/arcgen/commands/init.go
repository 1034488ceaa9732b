package commands

import (
	"github.com/spf13/cobra"

	"github.com/nubificus/arcgen/cmd/arcgen/handlers"
	"github.com/nubificus/arcgen/internal/config"
)

// Init returns the init command.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default arcgen.yaml",
		Long: `Init writes the built-in runner matrix to a configuration file so it can
be edited. The GitHub personal access token is never written; export
GITHUB_PAT when generating instead.

Example:
  arcgen init -o arcgen.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(outputPath, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFilename, "Output file path")

	return cmd
}
