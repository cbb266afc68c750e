package logger

import (
	"io"
	"log"
	"os"
)

type LogLevel int

const (
	LevelWarn LogLevel = iota
	LevelInfo
	LevelDebug
)

// Logger is a thin leveled wrapper around the standard library logger.
// Progress bars and reports write to stdout directly; everything else
// goes through here.
type Logger struct {
	*log.Logger
	level LogLevel
}

type Option func(*Logger)

func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.Logger = log.New(w, l.Logger.Prefix(), l.Logger.Flags())
	}
}

func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		l.Logger = log.New(l.Logger.Writer(), prefix, l.Logger.Flags())
	}
}

func WithFlags(flags int) Option {
	return func(l *Logger) {
		l.Logger = log.New(l.Logger.Writer(), l.Logger.Prefix(), flags)
	}
}

func New(options ...Option) *Logger {
	l := &Logger{
		Logger: log.New(os.Stderr, "", log.LstdFlags),
		level:  LevelInfo,
	}

	for _, opt := range options {
		opt(l)
	}

	return l
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *Logger) Level() LogLevel {
	return l.level
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.Printf("WARN: "+format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LevelInfo {
		l.Printf("INFO: "+format, args...)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LevelDebug {
		l.Printf("DEBUG: "+format, args...)
	}
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.Fatalf("FATAL: "+format, args...)
}
