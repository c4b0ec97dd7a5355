// Package logger provides the logrus-backed logger used across securedb.
package logger

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Logger interface is used to allow tests to inject custom loggers.
type Logger interface {
	Debugf(string, ...interface{})
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debug(...interface{})
	Warn(...interface{})
	Info(...interface{})
	Writer() io.Writer
	SetWriter(io.Writer)
}

type logger struct {
	*log.Logger
}

// NewLogger returns a new Logger instance backed by Logrus.
func NewLogger(level uint32) Logger {
	l := log.New()
	l.SetLevel(log.Level(level))
	l.Formatter = &log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}
	return &logger{l}
}

// NewDiscard returns a Logger that drops everything.
func NewDiscard() Logger {
	l := NewLogger(uint32(log.PanicLevel))
	l.SetWriter(io.Discard)
	return l
}

func (l *logger) Writer() io.Writer {
	return l.Out
}

func (l *logger) SetWriter(writer io.Writer) {
	l.Out = writer
}

// ParseLevel converts the level string to its corresponding int value. It
// returns an error if the level is invalid.
func ParseLevel(level string) (uint32, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return uint32(log.DebugLevel), nil
	case "info":
		return uint32(log.InfoLevel), nil
	case "warn", "warning":
		return uint32(log.WarnLevel), nil
	case "error":
		return uint32(log.ErrorLevel), nil
	default:
		return 0, fmt.Errorf("invalid log level %q", level)
	}
}

// DefaultLevel is used when no level is configured.
const DefaultLevel = uint32(log.WarnLevel)
