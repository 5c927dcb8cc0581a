package config

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the --log-file sink.
const (
	logFileMaxSizeMB  = 15
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// newLogFileWriter opens a rotating log file at path.
func newLogFileWriter(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logFileMaxSizeMB, // megabytes
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays, // days
		Compress:   true,
	}
}

// buildLogHandler returns the console handler and, when logFile is set, fans
// records out to a JSON handler writing to a rotating file as well. The
// returned closer is nil when no file sink was opened.
func buildLogHandler(console io.Writer, level slog.Level, logFile string) (slog.Handler, io.Closer) {
	consoleHandler := slog.NewTextHandler(console, &slog.HandlerOptions{Level: level})
	if logFile == "" {
		return consoleHandler, nil
	}
	sink := newLogFileWriter(logFile)
	fileHandler := slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &fanoutHandler{handlers: []slog.Handler{consoleHandler, fileHandler}}, sink
}

// fanoutHandler forwards each record to every handler that accepts its level.
type fanoutHandler struct {
	handlers []slog.Handler
}

func (f *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: next}
}

func (f *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithGroup(name)
	}
	return &fanoutHandler{handlers: next}
}
