// Package logger configures the global zerolog logger for the CLI.
package logger

import (
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

// TimeFormat is used for console timestamps.
const TimeFormat = "2006-01-02 15:04:05"

// Setup points the global logger at a human-readable console writer on w and
// sets the global level. debug forces debug level regardless of level.
// Call sites should use .Stack() on error events to include stacks.
func Setup(w io.Writer, level string, debug bool) zerolog.Logger {
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)

	l := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: TimeFormat, NoColor: true}).
		With().
		Timestamp().
		Str("service", "inkwell").
		Logger()
	log.Logger = l
	return l
}
