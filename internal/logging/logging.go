// internal/logging/logging.go
// Package logging owns the process-wide zap logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *zap.Logger = zap.NewNop()
	stdout  io.Writer   = os.Stdout
)

// Options tunes Init.
type Options struct {
	// Quiet suppresses the console sink. The terminal UI sets it so log
	// lines do not corrupt the alt screen.
	Quiet bool
	// Debug lowers the level to debug.
	Debug bool
}

// Init replaces the global logger with one that writes to stdout and, when
// logPath is set, appends JSON lines to logPath.
func Init(logPath string, opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logger.Sync()
		_ = logFile.Close()
		logFile = nil
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	var cores []zapcore.Core
	if !opts.Quiet {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(stdout), level))
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(file), level))
	}

	if len(cores) == 0 {
		logger = zap.NewNop()
		return nil
	}
	logger = zap.New(zapcore.NewTee(cores...))
	return nil
}

// Close flushes the logger and releases the log file. Logging after Close is a no-op.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	logger = zap.NewNop()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// L returns the current logger. It is never nil.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// LogEvent records a formatted informational message.
func LogEvent(format string, args ...any) {
	L().Info(fmt.Sprintf(format, args...))
}

// Debugf records a formatted debug message.
func Debugf(format string, args ...any) {
	L().Debug(fmt.Sprintf(format, args...))
}
