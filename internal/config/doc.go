// Package config defines the parameter matrix and deployment settings used
// to generate runner scale set values.
//
// The [Config] struct holds the parameter domains (flavors, architectures,
// OS names and docker-in-docker toggles), the OS name to version lookup,
// and the constants that end up in every rendered document and Helm
// command. [Default] reproduces the stock matrix; [Load] overlays a YAML
// file and environment variables on top of it.
package config
