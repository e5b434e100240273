// Package commands implements the devconf subcommands: serve (HTTP API
// server), get (print configuration), and set (one-shot update). Each command
// implements the Runner interface and is dispatched by the entrypoint.
package commands
