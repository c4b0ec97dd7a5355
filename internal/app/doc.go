// Package app wires securedb dependencies for the CLI.
//
// It loads Config (optionally from a YAML file through viper), builds the
// logger, cipher, store and metrics from it, and exposes them via App for
// commands to use.
package app
