package main

import (
	"os"

	"github.com/9seconds/selfip/selflib"
	"github.com/rs/zerolog"
)

func newLogger(debug bool) (zerolog.Logger, selflib.Logger) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	base := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	return base.With().Str("event_name", "app").Logger(),
		selflib.NewLogger(base.With().Str("event_name", "resolve").Logger())
}
