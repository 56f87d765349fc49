// Package commands defines the stegano CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encode <in> <data>   Hide data (or stdin with "-") in an image
//   - decode <in>          Print the data hidden in an image
//   - capacity <in>        Show how many bytes an image can hold
//   - keygen               Print a fresh random 32-byte key
//   - fingerprint          Print the fingerprint of a key
//
// Keys are given raw with -k (exactly 32 bytes), as hex with --key-hex, or
// through the STEGANO_KEY environment variable.
//
// # Implementation
//
// The root command builds the logger, codec, image store and message service
// before any subcommand runs, so handlers share one app.Wire.
package commands
