// Package logging provides the leveled, optionally colored logger used for
// all progress and error output. INFO-family lines go to stdout, ERROR lines
// to stderr, and everything is mirrored plainly to an optional log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/backmassage/asciirename/internal/config"
)

// Level tag colors. [NewLogger] enables or disables them for the process
// based on the resolved color mode.
var (
	infoTag    = color.New(color.FgHiBlue, color.Bold)
	successTag = color.New(color.FgHiGreen, color.Bold)
	warnTag    = color.New(color.FgHiYellow, color.Bold)
	errorTag   = color.New(color.FgHiRed, color.Bold)
	debugTag   = color.New(color.FgHiCyan, color.Bold)
)

// Logger provides leveled, optionally colored logging with an optional file
// sink. The file sink always receives plain (uncolored) lines.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// NewLogger resolves colors from cfg and optionally opens cfg.LogFile in
// append mode. Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	l := &Logger{}

	tags := []*color.Color{infoTag, successTag, warnTag, errorTag, debugTag}
	if colorEnabled(cfg.ColorMode) {
		for _, tag := range tags {
			tag.EnableColor()
		}
	} else {
		for _, tag := range tags {
			tag.DisableColor()
		}
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// colorEnabled maps the configured mode to a concrete on/off decision. Auto
// mode requires a TTY on stdout and honors NO_COLOR (https://no-color.org)
// and dumb terminals.
func colorEnabled(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		fd := os.Stdout.Fd()
		return (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, tag *color.Color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	_, _ = io.WriteString(out, ts+" "+tag.Sprint("["+level+"]")+" "+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", infoTag, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", successTag, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", warnTag, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", errorTag, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", debugTag, fmt.Sprintf(format, args...))
}
