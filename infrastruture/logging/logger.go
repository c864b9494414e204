// Package logging provides the prefixed, colored application logger.
package logging

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/davidvelascogarcia/hns-go/config"
)

var ErrEmptyPrefix = errors.New("logger prefix is empty")

// Logger tags every line with a colored subsystem prefix.
type Logger struct {
	log    *logrus.Logger
	prefix string
}

// New builds a logger writing to out with the given ANSI color prefix.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &Logger{
		log:    l,
		prefix: fmt.Sprintf("%s[%s]%s", color, prefix, config.ColorReset),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log.Infof("%s %s", l.prefix, msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.log.Warnf("%s %s", l.prefix, msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.log.Errorf("%s %s", l.prefix, msg)
}
