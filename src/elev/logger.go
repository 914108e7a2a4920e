package elev

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"sweepsim/src/config"
)

type LoggerOptions struct {
	Debug  bool
	File   string // also log to this file when set
	Pretty bool   // colored terminal output through charmbracelet/log
}

// InitLogger sets up the default slog logger. The returned func closes the log file, if any.
func InitLogger(opts LoggerOptions) (func() error, error) {
	var out io.Writer = os.Stderr
	closeFn := func() error { return nil }
	if opts.File != "" {
		logFile, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, logFile)
		closeFn = logFile.Close
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(newHandler(out, level, opts.Pretty)))
	return closeFn, nil
}

func newHandler(out io.Writer, level slog.Level, pretty bool) slog.Handler {
	if pretty {
		logger := log.NewWithOptions(out, log.Options{
			ReportTimestamp: true,
			TimeFormat:      config.LogTimeFormat,
			Level:           log.Level(level),
		})
		return logger
	}
	return slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:       level,
		AddSource:   level == slog.LevelDebug,
		ReplaceAttr: compactAttr,
	})
}

// compactAttr shortens timestamps to the clock time and source locations to file:line.
func compactAttr(groups []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			return slog.String(a.Key, t.Format(config.LogTimeFormat))
		}
	case slog.SourceKey:
		if source, ok := a.Value.Any().(*slog.Source); ok {
			return slog.String(a.Key, fmt.Sprintf("%s:%d", filepath.Base(source.File), source.Line))
		}
	}
	return a
}
