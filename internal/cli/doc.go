// Package cli hosts the opener and log facility behind a cobra command tree.
//
// The root command builds the runtime for every subcommand: it reads the
// settings from Fyne preferences, applies flag and RPW_* environment
// overrides through viper, initializes the log facility and wires an
// opener to it.
package cli
