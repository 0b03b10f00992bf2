package debug

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Fields is an alias so callers don't need to import logrus for structured entries
type Fields = logrus.Fields

var (
	logger  = newLogger()
	enabled bool
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// SetOutput sets the debug output destination
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
	enabled = w != io.Discard
}

// SetLevel sets the minimum level from a name (debug, info, warn, error)
// Unknown names leave the level unchanged
func SetLevel(name string) {
	switch strings.ToLower(name) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "info":
		logger.SetLevel(logrus.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	}
}

// Log writes a debug message
func Log(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn writes a warning message
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// WithFields returns an entry carrying structured fields
func WithFields(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// Enabled returns true if debug logging is enabled
func Enabled() bool {
	return enabled
}
