package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"setlist/internal/config"

	"github.com/sirupsen/logrus"
)

// New builds a logger from the logging config. When a log file is
// configured, entries go to that file and the returned close function
// releases it; otherwise logs go to stderr and close is a no-op.
func New(cfg config.LoggingConfig) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	noop := func() error { return nil }

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, noop, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		return nil, noop, fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	if cfg.File == "" {
		logger.SetOutput(os.Stderr)
		return logger, noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, noop, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(file)

	return logger, file.Close, nil
}

// Discard returns a logger that drops everything, handy for tests and
// quiet command-line runs
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}
