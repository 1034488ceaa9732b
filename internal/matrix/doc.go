// Package matrix enumerates the runner parameter matrix.
//
// [Generate] expands a [config.Config] into the Cartesian product of its
// flavors, architectures, OS names and docker-in-docker toggles, producing
// one immutable [Record] per combination. Records carry every value a
// values template or a Helm command may refer to.
package matrix
