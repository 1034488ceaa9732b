package commands

import (
	"github.com/spf13/cobra"

	"github.com/nubificus/arcgen/cmd/arcgen/handlers"
)

// Install returns the install command.
//
// It renders one values file per supported combination and prints the
// helm install command for each.
func Install(global *globalFlags) *cobra.Command {
	var opts handlers.Options

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Render values files and print helm install commands",
		Long: `Install renders the values template once per combination and writes
values{-dind}-{architecture}-{osname}-{flavor}.yaml files, overwriting
existing ones. Combinations matched by an exclude rule (arm/go by default)
are skipped.

Each written file is followed by its install command:

  helm install "<flavor>{-dind}-<osversion>-<architecture>" \
      --namespace "arc-runners" \
      --create-namespace \
      --set githubConfigUrl="<url>" \
      <chart> -f <values file>

Example:
  arcgen install -c arcgen.yaml -o out/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Install(cmd.Context(), global.options(cmd, opts))
		},
	}

	bindOutputFlags(cmd, &opts)

	return cmd
}
