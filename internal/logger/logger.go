package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultMaxSizeMB  = 50
	DefaultMaxBackups = 5
	DefaultMaxAgeDays = 30
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Options configures the global logger. Format is "pretty" or "json".
// A non-empty File adds a rotating log file next to the console output.
type Options struct {
	Level  string
	Format string
	File   string
}

// Init configures the global logger with info level pretty console output.
func Init() {
	Setup(Options{Level: "info", Format: "pretty"})
}

func Setup(opts Options) {
	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var console io.Writer = os.Stdout
	if opts.Format != "json" {
		console = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	writer := console
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err == nil {
			writer = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    DefaultMaxSizeMB,
				MaxBackups: DefaultMaxBackups,
				MaxAge:     DefaultMaxAgeDays,
				Compress:   true,
			})
		}
	}

	log = New(writer)
}

// New builds a JSON logger writing to w with the same context fields as the
// global logger.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		With().
		Timestamp().
		CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 1).
		Logger()
}

// SetOutput redirects the global logger, mainly for tests.
func SetOutput(w io.Writer) {
	log = New(w)
}

// L returns the global logger.
func L() *zerolog.Logger {
	return &log
}

// Info logs msg with optional key/value pairs.
func Info(msg string, kv ...any) {
	withFields(log.Info(), kv).Msg(msg)
}

func Infof(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func Warn(msg string, kv ...any) {
	withFields(log.Warn(), kv).Msg(msg)
}

func Error(msg string, kv ...any) {
	withFields(log.Error(), kv).Msg(msg)
}

func Errorf(format string, v ...any) {
	log.Error().Msgf(format, v...)
}

func Debug(msg string, kv ...any) {
	withFields(log.Debug(), kv).Msg(msg)
}

func Debugf(format string, v ...any) {
	log.Debug().Msgf(format, v...)
}

func Fatal(msg string, kv ...any) {
	withFields(log.Fatal(), kv).Msg(msg)
}

func Fatalf(format string, v ...any) {
	log.Fatal().Msgf(format, v...)
}

func withFields(e *zerolog.Event, kv []any) *zerolog.Event {
	if len(kv) == 0 {
		return e
	}
	return e.Fields(kv)
}
