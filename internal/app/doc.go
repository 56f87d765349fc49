// Package app wires application dependencies for the CLI.
//
// It builds the logger, the codec, the image store and the message service
// from Config, exposing them via the Wire struct for commands to use.
package app
