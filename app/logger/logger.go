package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global logger. Development gets a console writer,
// everything else JSON on stderr.
func Init(env, level string) {
	InitWithWriter(env, level, os.Stderr)
}

// InitWithWriter is Init with an explicit output.
func InitWithWriter(env, level string, w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// BadgerLogger routes badger's internal logging through zerolog.
type BadgerLogger struct {
	logger zerolog.Logger
}

// NewBadgerLogger returns a badger logger tagged with component=badger.
func NewBadgerLogger() *BadgerLogger {
	return &BadgerLogger{logger: log.With().Str("component", "badger").Logger()}
}

func (l *BadgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msg(trim(format, args))
}

func (l *BadgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msg(trim(format, args))
}

func (l *BadgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msg(trim(format, args))
}

func (l *BadgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Trace().Msg(trim(format, args))
}

// badger terminates most of its messages with a newline
func trim(format string, args []interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
