// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/nubificus/arcgen/cmd/arcgen/handlers"
)

// uninstallArg selects teardown mode when passed as the only argument.
const uninstallArg = "uninstall"

// globalFlags are bound on the root command and shared by subcommands.
type globalFlags struct {
	configPath string
	verbose    bool
}

// Root returns the root command for the arcgen CLI.
//
// Run without a subcommand it behaves like install. The single positional
// argument "uninstall" is routed to the uninstall subcommand by cobra; any
// other argument is ignored and install runs.
func Root() *cobra.Command {
	var global globalFlags
	var opts handlers.Options

	cmd := &cobra.Command{
		Use:   "arcgen [uninstall]",
		Short: "Generate runner scale set values and helm commands",
		Long: `arcgen enumerates every combination of flavor, architecture, OS and
docker-in-docker toggle, renders a values file per combination and prints
the helm commands that install or remove the matching runner scale sets.

Without a subcommand arcgen runs install.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := newLogger(cmd.ErrOrStderr(), global.verbose)
			cmd.SetContext(logr.NewContext(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Install(cmd.Context(), global.options(cmd, opts))
		},
	}

	cmd.PersistentFlags().StringVarP(&global.configPath, "config", "c", "", "Path to arcgen.yaml (defaults are used when empty)")
	cmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "Log every generated file and skipped combination")
	bindOutputFlags(cmd, &opts)

	cmd.AddCommand(Init())
	cmd.AddCommand(Install(&global))
	cmd.AddCommand(Uninstall(&global))
	cmd.AddCommand(List(&global))
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// bindOutputFlags registers the flags shared by the generating commands.
func bindOutputFlags(cmd *cobra.Command, opts *handlers.Options) {
	cmd.Flags().StringVar(&opts.TemplatePath, "template", "", "Values template (overrides the config file)")
	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "Directory for rendered values files (overrides the config file)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print commands without writing values files")
	cmd.Flags().BoolVar(&opts.OneLine, "one-line", false, "Print each install command on a single line")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Do not print the generated combinations")
}

// options completes handler options with the global flags and the
// command's output streams.
func (g *globalFlags) options(cmd *cobra.Command, opts handlers.Options) handlers.Options {
	opts.ConfigPath = g.configPath
	opts.Out = cmd.OutOrStdout()
	opts.ErrOut = cmd.ErrOrStderr()
	return opts
}

// newLogger returns a logr.Logger writing key/value lines to w.
func newLogger(w io.Writer, verbose bool) logr.Logger {
	verbosity := 0
	if verbose {
		verbosity = 1
	}

	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}
