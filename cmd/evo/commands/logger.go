package commands

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// log is the package logger. Tables go to stdout; logs stay on stderr so
// piped output remains clean.
//
//nolint:gochecknoglobals // intentionally global for command-wide logging
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	Level(zerolog.WarnLevel).
	With().Timestamp().Logger()

// initLogging raises the log level according to --verbose / --debug.
func initLogging() {
	level := zerolog.WarnLevel

	if viper.GetBool("verbose") {
		level = zerolog.InfoLevel
	}

	if viper.GetBool("debug") {
		level = zerolog.DebugLevel
	}

	log = log.Level(level)
}

// fieldLogger adapts the zerolog logger to the map-of-fields Logger
// interfaces the transport and config expect.
type fieldLogger struct {
	logger zerolog.Logger
}

func newFieldLogger() *fieldLogger {
	return &fieldLogger{logger: log}
}

func (l *fieldLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *fieldLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *fieldLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *fieldLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
