package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the service logger. JSON by default; set LOG_FORMAT=console
// for human-readable output.
func New(service, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if os.Getenv("LOG_FORMAT") == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).
		With().
		Timestamp().
		Str("service", service).
		Logger().
		Level(lvl)
}
