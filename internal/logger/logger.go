// Package logger wraps log/slog with a console handler (text or JSON)
// and an optional rotating file handler, adapted from the teacher's
// internal/logger for wfcgen's own build-attempt reporting.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelSummary is a custom level above Error that always gets logged,
// used for the one-line "build succeeded after N tries" report even
// when the configured level would otherwise suppress it.
const LevelSummary = slog.Level(12)

var logger *slog.Logger

// Initialize sets up the package-level logger from config. Call once at
// process startup; the zero value (no Initialize call) makes every
// logging function a no-op, so library code can log unconditionally
// without requiring a caller to configure anything first.
func Initialize(config Config) error {
	var handlers []slog.Handler

	level := parseLogLevel(config.Level)
	replaceSummary := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelSummary {
				a.Value = slog.StringValue("SUMMARY")
			}
		}
		return a
	}

	if config.ConsoleEnabled {
		opts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceSummary}
		var h slog.Handler
		if config.ConsoleFormat == "json" {
			h = slog.NewJSONHandler(os.Stdout, opts)
		} else {
			h = slog.NewTextHandler(os.Stdout, opts)
		}
		handlers = append(handlers, h)
	}

	if config.FileEnabled {
		logFile := &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.FileMaxSizeMB,
			MaxBackups: config.FileMaxBackups,
			MaxAge:     config.FileMaxAgeDays,
			Compress:   false,
		}

		opts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceSummary}
		var h slog.Handler
		if config.FileFormat == "json" {
			h = slog.NewJSONHandler(logFile, opts)
		} else {
			h = slog.NewTextHandler(logFile, opts)
		}
		handlers = append(handlers, h)
	}

	if len(handlers) == 0 {
		handlers = append(handlers, slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}

	if len(handlers) == 1 {
		logger = slog.New(handlers[0])
	} else {
		logger = slog.New(newMultiHandler(handlers...))
	}

	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

func Debugf(format string, args ...any) {
	Debug(fmt.Sprintf(format, args...))
}

func Info(msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

func Infof(format string, args ...any) {
	Info(fmt.Sprintf(format, args...))
}

func Warning(msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

func Warningf(format string, args ...any) {
	Warning(fmt.Sprintf(format, args...))
}

func Error(msg string, args ...any) {
	if logger != nil {
		logger.Error(msg, args...)
	}
}

func Errorf(format string, args ...any) {
	Error(fmt.Sprintf(format, args...))
}

// Summary logs a message that bypasses level filtering. internal/builder
// uses it for the one line per completed build: tries and elapsed time,
// which should reach the log even when the configured level is ERROR.
func Summary(msg string, args ...any) {
	if logger != nil {
		logger.Log(nil, LevelSummary, msg, args...)
	}
}

func Summaryf(format string, args ...any) {
	Summary(fmt.Sprintf(format, args...))
}

// multiHandler fans a record out to every underlying handler, used when
// both console and file output are enabled simultaneously.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}
