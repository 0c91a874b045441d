package logger

import (
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Options selects the level and an optional rotating log file.
type Options struct {
	Level string
	File  string
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Init configures the singleton logger. Only the first call has effect.
func Init(opts Options) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(opts)
	})
	return globalLogger
}

// Get returns the singleton logger, initializing it with level if needed.
func Get(level string) *Logger {
	return Init(Options{Level: level})
}
