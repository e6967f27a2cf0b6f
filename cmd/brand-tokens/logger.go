package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// cliLogger implements brandtokens.Logger with colored terminal output on
// stderr and optional plain-text file sinks: app.log receives every line,
// error.log receives warnings and errors only.
type cliLogger struct {
	debug bool
	out   io.Writer

	mu     sync.Mutex
	appLog io.WriteCloser
	errLog io.WriteCloser
}

func newCLILogger(level, dir string, out io.Writer) (*cliLogger, error) {
	l := &cliLogger{
		debug: strings.EqualFold(level, "debug"),
		out:   out,
	}
	if dir == "" {
		return l, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	var err error
	if l.appLog, err = openLog(filepath.Join(dir, "app.log")); err != nil {
		return nil, err
	}
	if l.errLog, err = openLog(filepath.Join(dir, "error.log")); err != nil {
		l.appLog.Close()
		return nil, err
	}
	return l, nil
}

func openLog(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func (l *cliLogger) Debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	color.New(color.FgHiBlack).Fprintf(l.out, format+"\n", args...)
	l.write("DEBUG", false, format, args...)
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.out, format+"\n", args...)
	l.write("INFO", false, format, args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.out, "⚠ "+format+"\n", args...)
	l.write("WARN", true, format, args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.out, "✗ "+format+"\n", args...)
	l.write("ERROR", true, format, args...)
}

func (l *cliLogger) write(level string, isErr bool, format string, args ...any) {
	if l.appLog == nil {
		return
	}

	line := fmt.Sprintf("%s [%s] %s\n", time.Now().Format(time.RFC3339), level, fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.appLog, line)
	if isErr {
		io.WriteString(l.errLog, line)
	}
}

// Close flushes and closes the file sinks.
func (l *cliLogger) Close() error {
	if l.appLog == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err1 := l.appLog.Close()
	err2 := l.errLog.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
