// Package main is the entry point for the arcgen CLI.
//
// arcgen generates Helm values files and helm install/uninstall commands
// for a matrix of GitHub Actions runner scale sets. It never talks to a
// cluster; the printed commands are meant to be run by an operator or a
// wrapper script.
//
// For detailed usage information, run:
//
//	arcgen --help
package main

import (
	"fmt"
	"os"

	"github.com/nubificus/arcgen/cmd/arcgen/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
