package cmd

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogger returns a JSON logger writing to a rotated log file. The
// terminal belongs to the list, so without a file the logs are discarded.
func setupLogger(path string, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	if path != "" {
		w = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
		}
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
