// Package logging hands out per-component logrus loggers sharing one
// configured base logger.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hailey21/notion-blog/internal/config"
)

var (
	base     = newBase(os.Stderr)
	loggers  = make(map[string]*logrus.Entry)
	loggerMu sync.Mutex
)

func newBase(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Configure applies level and format from cfg to every logger.
// Unknown levels fall back to info.
func Configure(cfg config.LogConfig) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	switch cfg.Format {
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// SetOutput redirects every logger to w.
func SetOutput(w io.Writer) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	base.SetOutput(w)
}

// NewLogger returns the logger for component, creating it on first use.
func NewLogger(component string) *logrus.Entry {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if logger, ok := loggers[component]; ok {
		return logger
	}
	logger := base.WithField("component", component)
	loggers[component] = logger
	return logger
}
