// Package logging defines the printf-style logger shared by every pipeline stage.
package logging

import "reflect"

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Nop returns a logger that discards all output.
func Nop() Logger {
	return nopLogger{}
}

// OrNop returns logger when it is usable, otherwise a no-op logger.
// A typed nil pointer stored in the interface counts as unusable.
func OrNop(logger Logger) Logger {
	if logger == nil {
		return Nop()
	}
	v := reflect.ValueOf(logger)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return Nop()
	}
	return logger
}
