// Package debug provides opt-in structured logging for userpicker.
// Nothing is written unless Init(true) runs (the --debug flag). The log goes
// to ~/.userpicker/debug.log and is truncated on each launch.
package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	LogFileName = "debug.log"
	LogDirName  = ".userpicker"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  *slog.Logger
	logFile *os.File

	// getLogPath is swapped out by tests.
	getLogPath = defaultGetLogPath
)

// Init sets up logging. With enable=false every call is a no-op.
func Init(enable bool) error {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable
	if !enable {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	logPath, err := getLogPath()
	if err != nil {
		return fmt.Errorf("determine log path: %w", err)
	}

	//nolint:gosec // G301: user config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	//nolint:gosec // G304: log path is derived from the user home
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f

	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("debug log started", "at", time.Now().Format(time.RFC3339))
	return nil
}

// Close closes the log file. Safe to call repeatedly.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Log records msg with key/value attributes in the manner of slog.
func Log(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled || logger == nil {
		return
	}
	logger.Debug(msg, args...)
}

// Enabled reports whether logging is on.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns where the log is written.
func GetLogPath() (string, error) {
	return getLogPath()
}
