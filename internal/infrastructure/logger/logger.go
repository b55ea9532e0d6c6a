// Package logger builds the application's logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options controls logger construction. Empty fields fall back to
// the LOG_LEVEL and LOG_FORMAT environment variables, then to info/text.
type Options struct {
	Level  string
	Format string // "json" or "text"
	Output io.Writer
}

// New creates a configured logger
func New(opts Options) *logrus.Logger {
	log := logrus.New()

	levelName := opts.Level
	if levelName == "" {
		levelName = os.Getenv("LOG_LEVEL")
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	format := opts.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	return log
}

// Discard returns a logger that drops everything. Used by tests and headless runs.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}
