package app

import "io"

// Config holds runtime wiring options for building the app. It is filled
// from command-line flags; there are no config files or environment variables.
type Config struct {
	LogLevel string    // debug, info, warn or error
	LogOut   io.Writer // diagnostics; stdout is reserved for the result
	Format   string    // json or table
	Pretty   bool      // indent JSON output
	NoColor  bool      // disable colour in table output
}
