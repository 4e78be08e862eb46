// ABOUTME: Logger implementation backed by sirupsen/logrus
// ABOUTME: Provides structured logging with level support

package logrus

import (
	"github.com/sirupsen/logrus"
)

// Logger implements the interfaces.Logger contract using logrus.
type Logger struct {
	entry *logrus.Logger
}

// NewLogger creates a logrus-backed logger with the default
// configuration.
func NewLogger() *Logger {
	return &Logger{entry: logrus.New()}
}

// NewLoggerWith wraps an existing logrus logger so callers can share
// one configured instance across the application.
func NewLoggerWith(l *logrus.Logger) *Logger {
	return &Logger{entry: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}
