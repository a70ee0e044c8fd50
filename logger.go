package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

//
// newLogger - logger for diagnostics on w. Console format unless jsonOutput;
// debug level with debug set or DEBUG=1 in the environment.
//
func newLogger(w io.Writer, debug, jsonOutput bool) zerolog.Logger {

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "time"

	logger := zerolog.New(w).With().Timestamp().Logger()

	if !jsonOutput {
		logger = logger.Output(zerolog.ConsoleWriter{Out: w})
	}

	level := zerolog.InfoLevel
	if debug || os.Getenv("DEBUG") == "1" {
		level = zerolog.DebugLevel
	}
	return logger.Level(level)
}
