package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "pongcore.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging configures the logger. When debug is false everything
// is discarded; when true, logs go to logs/pongcore.log with a simple
// size-based rotation. Returns the logger and the open file (nil when
// disabled); the caller closes the file on exit.
func setupLogging(debug bool) (*log.Logger, *os.File) {
	if !debug {
		return log.New(io.Discard, "", 0), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return log.New(io.Discard, "", 0), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("pongcore-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return log.New(io.Discard, "", 0), nil
	}

	return log.New(f, "", log.LstdFlags|log.Lmicroseconds), f
}
