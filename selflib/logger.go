package selflib

import "github.com/rs/zerolog"

type zerologLogger struct {
	log zerolog.Logger
}

func (z zerologLogger) LookupError(name, next string, err error) {
	event := z.log.Warn().Str("provider", name).Err(err)

	if next != "" {
		event = event.Str("next_provider", next)
	}

	event.Msg("Provider has failed")
}

func (z zerologLogger) ResolveError(err error) {
	z.log.Error().Err(err).Msg("Cannot resolve public IP address")
}

// NewLogger returns Logger which writes into a given zerolog logger.
// Provider failures are warnings, exhausted chain is an error.
func NewLogger(log zerolog.Logger) Logger {
	return zerologLogger{
		log: log,
	}
}

// NoopLogger drops everything.
type NoopLogger struct{}

func (NoopLogger) LookupError(string, string, error) {}

func (NoopLogger) ResolveError(error) {}
