package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a structured logger. A nil *Logger is valid: debug and info
// messages are dropped and warnings and errors go to the default slog
// logger.
type Logger struct {
	*slog.Logger
	LogFile string
	Start   time.Time

	closer io.Closer
}

// New returns a Logger writing JSON records to a rotating starmap.slog in
// dir. An empty dir selects the user config directory.
func New(level string, dir string) *Logger {
	if dir == "" {
		cfg, err := os.UserConfigDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "no user config dir, logging to the working directory: %v\n", err)
			cfg = "."
		}
		dir = filepath.Join(cfg, "Starmap")
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "starmap.slog"),
		MaxSize:    8, // MB
		MaxBackups: 2,
	}

	l := NewWithWriter(w, ParseLevel(level))
	l.LogFile = w.Filename
	l.closer = w
	l.Info("starmap started", slog.String("level", level), slog.String("go", runtime.Version()),
		slog.String("os", runtime.GOOS+"/"+runtime.GOARCH))
	return l
}

// NewWithWriter returns a Logger that writes JSON records to w.
func NewWithWriter(w io.Writer, lvl slog.Level) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return &Logger{
		Logger: slog.New(h),
		Start:  time.Now(),
	}
}

// Close logs the session length and closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.Info("starmap stopped", slog.Duration("uptime", time.Since(l.Start).Round(time.Second)))
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// ParseLevel maps debug/info/warn/error to a slog level; anything else is
// reported on stderr and treated as info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "%s: invalid log level\n", level)
		return slog.LevelInfo
	}
}

func (l *Logger) enabled(lvl slog.Level) bool {
	return l != nil && l.Logger.Enabled(context.Background(), lvl)
}

func (l *Logger) Debug(msg string, args ...any) {
	if l.enabled(slog.LevelDebug) {
		l.Logger.Debug(msg, args...)
	}
}

func (l *Logger) Debugf(msg string, args ...any) {
	if l.enabled(slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l.enabled(slog.LevelInfo) {
		l.Logger.Info(msg, args...)
	}
}

// Warn and Error also record the caller's file:line.
func (l *Logger) Warn(msg string, args ...any) {
	args = append([]any{slog.String("caller", caller())}, args...)
	if l == nil {
		slog.Warn(msg, args...)
	} else {
		l.Logger.Warn(msg, args...)
	}
}

func (l *Logger) Error(msg string, args ...any) {
	args = append([]any{slog.String("caller", caller())}, args...)
	if l == nil {
		slog.Error(msg, args...)
	} else {
		l.Logger.Error(msg, args...)
	}
}

func (l *Logger) Errorf(msg string, args ...any) {
	l.Error(fmt.Sprintf(msg, args...))
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger:  l.Logger.With(args...),
		LogFile: l.LogFile,
		Start:   l.Start,
	}
}

// caller returns file:line of the first frame outside log.go.
func caller() string {
	var pcs [8]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		if filepath.Base(fr.File) != "log.go" || !more {
			return fmt.Sprintf("%s:%d", filepath.Base(fr.File), fr.Line)
		}
	}
}
