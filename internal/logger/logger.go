// Package logger writes user-facing output. Stdout is reserved for results;
// debug and error lines go to the error writer.
package logger

import (
	"fmt"
	"io"
)

type Logger struct {
	out   io.Writer
	err   io.Writer
	debug bool
}

func New(out io.Writer, err io.Writer, debug bool) *Logger {
	return &Logger{
		out:   out,
		err:   err,
		debug: debug,
	}
}

func (logger *Logger) DebugEnabled() bool {
	return logger.debug
}

func (logger *Logger) Log(message string) {
	if _, err := fmt.Fprintln(logger.out, message); err != nil {
		return
	}
}

func (logger *Logger) Debug(message string) {
	if !logger.debug {
		return
	}
	if _, err := fmt.Fprintln(logger.err, message); err != nil {
		return
	}
}

func (logger *Logger) Debugf(format string, args ...any) {
	logger.Debug(fmt.Sprintf(format, args...))
}

func (logger *Logger) Error(message string) {
	if _, err := fmt.Fprintln(logger.err, message); err != nil {
		return
	}
}
