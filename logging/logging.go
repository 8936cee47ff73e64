// Package logging provides the engine's structured logger: a zerolog
// writer over a lumberjack rotating file sink, implementing the same
// SetLevel/Log contract the rest of this tree's orchestrators expect
// from a Logger.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level mirrors the int8 level values Log accepts: 0=debug/info,
// 1=warn, 2=error.
const (
	LevelDebug int8 = iota
	LevelWarn
	LevelError
)

// Logger wraps a zerolog.Logger and satisfies the engine-wide Logger
// interface (SetLevel(int8), Log(level int8, message string, params
// ...interface{})).
type Logger struct {
	zl    zerolog.Logger
	level int8
}

// Config controls where the logger writes and how its backing file
// rotates.
type Config struct {
	// Path is the log file path. Empty disables file rotation and writes
	// to stderr only.
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Console    bool // also mirror output to stderr in human-readable form
}

// New builds a Logger per cfg. With Path set, output is written through
// a lumberjack.Logger so log files rotate by size/age without the engine
// managing file handles itself.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stderr
	if cfg.Path != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    orDefault(cfg.MaxSizeMB, 50),
			MaxBackups: orDefault(cfg.MaxBackups, 5),
			MaxAge:     orDefault(cfg.MaxAgeDays, 28),
		}
		if cfg.Console {
			w = zerolog.MultiLevelWriter(lj, zerolog.ConsoleWriter{Out: os.Stderr})
		} else {
			w = lj
		}
	}

	zl := zerolog.New(w).With().Timestamp().Logger()
	return &Logger{zl: zl, level: LevelDebug}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// SetLevel sets the minimum level that will be emitted; levels below it
// are silently dropped.
func (l *Logger) SetLevel(level int8) {
	l.level = level
}

// Log writes message at level, with params appended as alternating
// key/value pairs (unpaired trailing params are logged under "extra").
func (l *Logger) Log(level int8, message string, params ...interface{}) {
	if level < l.level {
		return
	}

	var ev *zerolog.Event
	switch {
	case level >= LevelError:
		ev = l.zl.Error()
	case level >= LevelWarn:
		ev = l.zl.Warn()
	default:
		ev = l.zl.Debug()
	}

	for i := 0; i+1 < len(params); i += 2 {
		key, ok := params[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, params[i+1])
	}
	if len(params)%2 == 1 {
		ev = ev.Interface("extra", params[len(params)-1])
	}
	ev.Msg(message)
}
