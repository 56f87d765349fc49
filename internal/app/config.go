package app

import (
	"os"

	"go.uber.org/zap"
)

// KeyEnv names the environment variable consulted when no key flag is given.
const KeyEnv = "STEGANO_KEY"

// Config holds runtime wiring options for building the app.
type Config struct {
	Verbose bool        // debug-level development logs on stderr
	Workers int         // goroutines for the embed/extract pass; <1 means 1
	Cipher  string      // envelope suite used when hiding, e.g. "aes-siv"
	Logger  *zap.Logger // optional; built from Verbose when nil
}

// KeyFromEnv returns the key from KeyEnv, or "" when unset.
func KeyFromEnv() string { return os.Getenv(KeyEnv) }
