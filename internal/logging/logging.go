// Package logging sets up the global structured logger. Output always
// goes to a rotating file, never to the terminal the editor is drawing
// on.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global structured logger
	Log *slog.Logger
	// logWriter is the rotating log writer
	logWriter *lumberjack.Logger
	// LogPath is the path to the current log file
	LogPath string
)

// Options tunes the log file. The zero value gets sane defaults.
type Options struct {
	// Path of the log file. Empty defaults to ~/.config/vellum/vellum.log.
	Path string
	// Debug lowers the level from INFO to DEBUG.
	Debug bool
	// MaxSizeMB and MaxBackups bound rotation. Zero means 5 MB and 2
	// backups.
	MaxSizeMB  int
	MaxBackups int
}

// Init initializes the global logger and installs it as the slog default.
func Init(opts Options) {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	logPath := opts.Path
	if logPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.TempDir()
		}
		logDir := filepath.Join(homeDir, ".config", "vellum")
		_ = os.MkdirAll(logDir, 0755)
		logPath = filepath.Join(logDir, "vellum.log")
	}
	LogPath = logPath

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 5
	}
	maxBackups := opts.MaxBackups
	if maxBackups < 0 {
		maxBackups = 0
	} else if opts.MaxBackups == 0 {
		maxBackups = 2
	}

	logWriter = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     7, // days
		Compress:   true,
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: level})
	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// Close closes the log file
func Close() {
	if logWriter != nil {
		logWriter.Close()
	}
}

func get() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	get().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	get().Error(msg, args...)
}
