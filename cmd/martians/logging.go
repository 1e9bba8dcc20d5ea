package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "martians.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate when the previous log exceeds 10MB
)

// setupLogging opens the debug log in dir, rotating an oversized previous log
// Without debug it returns a disabled logger and a nil file
// The terminal is in raw mode while the game runs, so logs never go to stdout or stderr
func setupLogging(debug bool, dir, level string) (zerolog.Logger, *os.File, error) {
	if !debug {
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("martians_%s.log", time.Now().Format("20060102_150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("rotating log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        file,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}).With().Timestamp().Logger().Level(parseLevel(level))

	return logger, file, nil
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
