// Package logger provides verbose logging for the Quarry pipeline.
// When verbose mode is enabled, stage and chunking progress is printed
// to stderr through a zerolog console writer.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

var log = newLogger(os.Stderr, false)

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.Disabled
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}
	return zerolog.New(console).Level(level)
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	log = newLogger(output, verbose)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = newLogger(output, verbose)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Debug().Msgf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	log.Info().Msg("=== " + name + " ===")
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Info().Msgf(format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Warn().Msgf(format, args...)
}
