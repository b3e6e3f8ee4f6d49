// Package app loads configuration and wires the stores, services, and
// backend client together for the CLI.
package app
