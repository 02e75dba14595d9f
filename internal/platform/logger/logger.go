package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type zlLogger struct {
	zl zerolog.Logger
}

type Options struct {
	Level  Level
	Format Format
	App    string
}

// New crea un logger sobre zerolog.
// format=text usa ConsoleWriter (dev); json escribe NDJSON (prod).
func New(opts Options) Logger {
	var zl zerolog.Logger
	switch opts.Format {
	case FormatJSON:
		zl = zerolog.New(os.Stdout)
	default:
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	zl = zl.Level(opts.Level.zerolog()).With().Timestamp().Logger()

	if app := strings.TrimSpace(opts.App); app != "" {
		zl = zl.With().Str("app", app).Logger()
	}

	return &zlLogger{zl: zl}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

func (l *zlLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}

	ctx := l.zl.With()
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		ctx = ctx.Interface(k, v)
	}
	return &zlLogger{zl: ctx.Logger()}
}

func (l *zlLogger) Debug(msg string, fields map[string]any) { l.emit(l.zl.Debug(), msg, fields) }
func (l *zlLogger) Info(msg string, fields map[string]any)  { l.emit(l.zl.Info(), msg, fields) }
func (l *zlLogger) Warn(msg string, fields map[string]any)  { l.emit(l.zl.Warn(), msg, fields) }
func (l *zlLogger) Error(msg string, fields map[string]any) { l.emit(l.zl.Error(), msg, fields) }

func (l *zlLogger) emit(ev *zerolog.Event, msg string, fields map[string]any) {
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
