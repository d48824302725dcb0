// Package bootstrap initializes logging configuration before other packages.
//
// This package MUST be imported first (using a blank import) in every main
// package so its init() runs before anything logs through zerolog.
//
// Go's initialization order:
//  1. Imported packages initialize in dependency order (depth-first)
//  2. Within a package, files are sorted by name, init() runs in order
//  3. The main package initializes last
package bootstrap

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelEnv names the environment variable that selects the log level.
const LevelEnv = "LDM_LOG_LEVEL"

func init() {
	level := os.Getenv(LevelEnv)
	if level == "" {
		level = "info"
	}

	// Parse the level to respect user's setting (e.g., LDM_LOG_LEVEL=debug)
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Diagnostics go to stderr so stdout stays the list of generated files.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: os.Getenv("NO_COLOR") != ""})
}
