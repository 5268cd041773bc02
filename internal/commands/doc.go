// Package commands implements the CLI command handlers for networkd-apply.
//
// Each command implements the Runner interface (Init parses flags and
// loads the configuration, Run executes) and is dispatched by name from
// the main package.
package commands
