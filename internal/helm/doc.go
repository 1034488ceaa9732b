// Package helm derives release names, values file names and the helm
// install/uninstall command lines for runner scale sets.
//
// Nothing here runs helm. Commands are built as [Command] values and
// formatted for an operator or a wrapper script to execute.
package helm
