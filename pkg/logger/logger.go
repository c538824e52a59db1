package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the application logger. Development gets human-readable console
// output, production gets JSON. The zerolog global logger is redirected too
// so libraries that use it stay consistent.
func New(env string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if env != "production" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	log.Logger = zl
	return zl
}
