// Package logger builds zerolog loggers whose debug, info and warn events go
// to one writer and error, fatal and panic events to another.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New returns a console logger writing debug/info/warn events to out and
// error/fatal/panic events to errOut. Events below level are discarded.
func New(out, errOut io.Writer, level zerolog.Level) zerolog.Logger {
	writer := zerolog.MultiLevelWriter(
		SpecificLevelWriter{
			Writer: console(out),
			Levels: []zerolog.Level{
				zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel,
			},
		},
		SpecificLevelWriter{
			Writer: console(errOut),
			Levels: []zerolog.Level{
				zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel,
			},
		},
	)
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Default returns a logger writing every level to stderr, keeping stdout free
// for command results.
func Default(level zerolog.Level) zerolog.Logger {
	return New(os.Stderr, os.Stderr, level)
}

// Levels lists the names accepted by ParseLevel.
var Levels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// ParseLevel converts a level name such as "warn" into a zerolog level.
// The empty string maps to warn.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(s)
}

func console(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// SpecificLevelWriter forwards only events whose level is listed in Levels.
type SpecificLevelWriter struct {
	io.Writer
	Levels []zerolog.Level
}

func (w SpecificLevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	for _, l := range w.Levels {
		if l == level {
			return w.Write(p)
		}
	}
	return len(p), nil
}
