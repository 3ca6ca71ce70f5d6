// Package app wires application dependencies for the CLI.
//
// It builds the logger, the Aadhaar decoder, the decode service and the
// result renderer from Config, exposing them via the Wire struct for
// commands to use.
package app
