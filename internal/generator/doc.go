// Package generator runs the install and uninstall flows over a list of
// matrix records: filtering, rendering, writing values files and printing
// helm commands.
package generator
