package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the application logger. Development gets the console writer,
// everything else plain JSON on stdout.
func New(level string, environment string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)

	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if environment == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(lvl).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
