// Package logging sets up the debug log. The terminal belongs to the board
// while the game runs, so log records go to a file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
)

// maxLogSize is the size above which the log file is rotated on open.
const maxLogSize = 10 * 1024 * 1024

// Options configures the debug log.
type Options struct {
	Path  string // Log file; empty discards all records
	Debug bool   // Enable debug level records
}

// Log is a logger writing to a file.
type Log struct {
	*log.Logger
	file *os.File
	path string
}

// DefaultPath returns ~/.scoundrel/debug.log, or empty if home is unavailable.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scoundrel", "debug.log")
}

// Open creates the log directory and opens the log file for appending.
// A file larger than 10MB is moved aside first.
func Open(opts Options) (*Log, error) {
	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
	}

	if opts.Path == "" {
		return &Log{Logger: newLogger(io.Discard, level)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := openFile(opts.Path)
	if err != nil {
		return nil, err
	}

	// Rotate if file is too large
	if info, err := f.Stat(); err == nil && info.Size() > maxLogSize {
		_ = f.Close()
		backup := fmt.Sprintf("%s.%d", opts.Path, time.Now().Unix())
		_ = os.Rename(opts.Path, backup)
		if f, err = openFile(opts.Path); err != nil {
			return nil, err
		}
	}

	return &Log{
		Logger: newLogger(f, level),
		file:   f,
		path:   opts.Path,
	}, nil
}

func openFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "scoundrel",
		Level:           level,
	})
}

// Path returns the log file path, or empty when logs are discarded.
func (l *Log) Path() string {
	return l.path
}

// LogPanic records a recovered panic with its stack trace.
func (l *Log) LogPanic(r any) {
	l.Error("panic", "value", r, "stack", string(debug.Stack()))
}

// Close closes the log file.
func (l *Log) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
