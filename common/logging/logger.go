package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Level zerolog.Level

const (
	DebugLevel = Level(zerolog.DebugLevel)
	InfoLevel  = Level(zerolog.InfoLevel)
)

func (l Level) toZerolog() zerolog.Level {
	return zerolog.Level(l)
}

func (l Level) String() string {
	return l.toZerolog().String()
}

// Setup installs the global logger. Output goes to stderr so stdout stays
// free for the scan report.
func Setup(level Level) {
	SetupWriter(level, os.Stderr)
}

// SetupWriter sets the level on log.Logger only. The global zerolog level is
// left alone so the scan report from ConsoleLogger is never filtered.
func SetupWriter(level Level, out io.Writer) {
	log.Logger = zerolog.
		New(writerFor(level, out)).
		Level(level.toZerolog()).
		With().
		Timestamp().
		Logger()
	if level.toZerolog() == zerolog.DebugLevel {
		log.Logger = log.Logger.With().Caller().Logger()
	}
}

// ConsoleLogger builds a human-readable logger used for the scan report.
func ConsoleLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.TimeFormat = time.TimeOnly
	})).With().Timestamp().Logger()
}

func writerFor(level Level, out io.Writer) io.Writer {
	switch level.toZerolog() {
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = out
			w.TimeFormat = time.RFC3339
		})
	default:
		return out
	}
}

func ParseLevel(lvl string) Level {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(lvl)))
	if err != nil || parsedLevel == zerolog.NoLevel {
		return InfoLevel
	}
	return Level(parsedLevel)
}
