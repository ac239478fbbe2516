package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
)

// silent sits above every slog level so nothing is emitted.
const silent = slog.Level(100)

// StdLogger implements ports.Logger on top of log/slog. Output is suppressed
// unless verbose is set, so normal runs only print what the CLI renders.
type StdLogger struct {
	level *slog.LevelVar
	log   *slog.Logger
}

// NewStd creates a StdLogger writing text records to stderr.
func NewStd(verbose bool) *StdLogger {
	return New(os.Stderr, verbose)
}

// New creates a StdLogger writing to w.
func New(w io.Writer, verbose bool) *StdLogger {
	level := new(slog.LevelVar)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	l := &StdLogger{level: level, log: slog.New(handler)}
	l.SetVerbose(verbose)
	return l
}

// SetVerbose toggles debug output, e.g. once --debug has been parsed.
func (l *StdLogger) SetVerbose(verbose bool) {
	if verbose {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(silent)
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelDebug, msg, nil, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelInfo, msg, nil, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelWarn, msg, nil, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.emit(slog.LevelError, msg, err, fields)
}

func (l *StdLogger) emit(level slog.Level, msg string, err error, fields map[string]interface{}) {
	ctx := context.Background()
	if !l.log.Enabled(ctx, level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields)+1)
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		attrs = append(attrs, slog.Any(key, fields[key]))
	}
	l.log.LogAttrs(ctx, level, msg, attrs...)
}
