// Package handlers implements the business logic for arcgen CLI commands.
//
// Each handler loads the configuration, enumerates the runner matrix and
// drives the generator. Dependencies are held in package-level function
// variables so tests can replace them.
package handlers
