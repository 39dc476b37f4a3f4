// Package log wraps logrus with the fields pulljira attaches to every entry.
package log

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	logger = logrus.New()
)

func init() {
	logger.Out = os.Stderr
	logger.Level = logrus.WarnLevel
}

// InitializeLogger resets the logger to write to out. Debug mode enables the
// debug level and a full timestamp; otherwise only warnings and errors are
// emitted.
func InitializeLogger(debug bool, out io.Writer) {
	logger = logrus.New()

	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	if debug {
		customFormatter.FullTimestamp = true
		logger.Level = logrus.DebugLevel
	} else {
		customFormatter.DisableTimestamp = true
		logger.Level = logrus.WarnLevel
	}
	logger.Formatter = customFormatter
	logger.Out = out
}

// Logger returns the current logger object.
func Logger() *logrus.Logger {
	return logger
}

type commandKey struct{}

// WithCommand returns a context whose log entries carry the command name.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey{}, name)
}

func entry(ctx context.Context, fields map[string]interface{}) *logrus.Entry {
	e := logrus.NewEntry(logger)
	if ctx != nil {
		if name, ok := ctx.Value(commandKey{}).(string); ok {
			e = e.WithField("cmd", name)
		}
	}
	return e.WithFields(fields)
}

// Error logs an error message. The fields parameter adds attributes to the
// entry; format and args build the message.
func Error(ctx context.Context, fields map[string]interface{}, format string, args ...interface{}) {
	if logger.IsLevelEnabled(logrus.ErrorLevel) {
		e := entry(ctx, fields).WithField("pid", os.Getpid())
		if len(args) > 0 {
			e.Errorf(format, args...)
		} else {
			e.Errorln(format)
		}
	}
}

// Warn logs a warning message.
func Warn(ctx context.Context, fields map[string]interface{}, format string, args ...interface{}) {
	if logger.IsLevelEnabled(logrus.WarnLevel) {
		if len(args) > 0 {
			entry(ctx, fields).Warnf(format, args...)
		} else {
			entry(ctx, fields).Warnln(format)
		}
	}
}

// Info logs an info message.
func Info(ctx context.Context, fields map[string]interface{}, format string, args ...interface{}) {
	if logger.IsLevelEnabled(logrus.InfoLevel) {
		if len(args) > 0 {
			entry(ctx, fields).Infof(format, args...)
		} else {
			entry(ctx, fields).Infoln(format)
		}
	}
}

// Debug logs a debug message.
func Debug(ctx context.Context, fields map[string]interface{}, format string, args ...interface{}) {
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		if len(args) > 0 {
			entry(ctx, fields).Debugf(format, args...)
		} else {
			entry(ctx, fields).Debugln(format)
		}
	}
}
