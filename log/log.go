// Package log provides structured logging with filesystem-based persistence.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/anisan-cli/anigraph/constant"
	"github.com/anisan-cli/anigraph/filesystem"
	"github.com/anisan-cli/anigraph/key"
	"github.com/anisan-cli/anigraph/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// logger is the process-wide backend. It discards everything until Setup enables it.
var logger = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup initializes the logging subsystem from the global configuration.
// When logs.write is false every emission is silently discarded.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		logger = newDiscard()
		return nil
	}

	filename := fmt.Sprintf("%s-%s.log", constant.Anigraph, time.Now().Format("2006-01-02"))
	path := filepath.Join(where.Logs(), filename)

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	return configure(f)
}

// configure points the logger at out and applies formatter and level settings.
func configure(out io.Writer) error {
	l := logrus.New()
	l.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger = l
	return nil
}

// WithFields returns an entry carrying structured fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...interface{}) {
	logger.Error(args...)
}

func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}
