// Package log builds the structured loggers used across the emulator.
package log

import (
	"github.com/retroenv/retrogolib/log"
)

// Logger is the structured logger handed to emulator components.
type Logger = log.Logger

// New returns a logger at the default level, raised to debug output when
// debug is set, or lowered to errors only when quiet is set.
func New(debug, quiet bool) *Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// NewQuiet returns a logger that only reports errors. Components use it
// when no logger was configured.
func NewQuiet() *Logger {
	return New(false, true)
}
