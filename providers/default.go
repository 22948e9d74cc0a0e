package providers

import (
	"context"
	"net/http"
	"os"
	"sync"

	"github.com/9seconds/selfip/selflib"
	"github.com/rs/zerolog"
)

var (
	defaultResolver     *selflib.Resolver
	defaultResolverOnce sync.Once
)

// DefaultResolver returns a resolver which asks built-in providers
// with default timeouts and logs warnings to stderr.
func DefaultResolver() *selflib.Resolver {
	defaultResolverOnce.Do(func() {
		client := selflib.NewHTTPClient(&http.Client{}, selflib.DefaultUserAgent, 0, 1)
		logger := zerolog.New(os.Stderr).
			Level(zerolog.WarnLevel).
			With().
			Timestamp().
			Str("event_name", "resolve").
			Logger()

		defaultResolver = selflib.NewResolver(Default(client),
			selflib.NewLogger(logger),
			selflib.DefaultProviderTimeout)
	})

	return defaultResolver
}

// GetUserIP returns a public IP address using built-in providers.
// The second value is false if address cannot be detected.
func GetUserIP(ctx context.Context) (string, bool) {
	return DefaultResolver().GetUserIP(ctx)
}

// GetHeadersWithIP returns JSON content type header and X-Real-IP if
// public IP address is known.
func GetHeadersWithIP(ctx context.Context) selflib.Headers {
	return DefaultResolver().GetHeadersWithIP(ctx)
}

// AddIPToHeaders returns a copy of existing with X-Real-IP if public
// IP address is known.
func AddIPToHeaders(ctx context.Context, existing selflib.Headers) selflib.Headers {
	return DefaultResolver().AddIPToHeaders(ctx, existing)
}
