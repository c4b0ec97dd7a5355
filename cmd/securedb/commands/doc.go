// Package commands defines the securedb CLI.
//
// Commands
//
//   - init     Create the database file if it does not exist
//   - add      Set a key to a JSON value
//   - get      Print the value of a key
//   - delete   Remove a key
//   - clear    Replace the document with an empty one
//   - keys     List all keys
//   - dump     Print the whole document as JSON or YAML
//
// # Implementation
//
// The root command loads the config file, applies flag overrides and opens
// the store before any subcommand runs, so handlers share one App. Metrics
// are written to --metrics-file after the subcommand finishes.
package commands
