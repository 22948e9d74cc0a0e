package selflib

import (
	"context"
	"net/http"
)

// Provider is a single IP lookup service. Lookup has to respect
// a deadline of the given context.
type Provider interface {
	Name() string
	Lookup(context.Context) (string, error)
}

// HTTPClient is an interface for HTTP client which is used by
// providers.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Logger is used by Resolver to report failures. None of these
// failures is propagated to the caller.
//
// LookupError is called when a provider has failed. next is a name
// of the provider which is going to be asked after. It is empty if
// the failed provider was the last one.
//
// ResolveError is called when resolving has finished without any
// result.
type Logger interface {
	LookupError(name, next string, err error)
	ResolveError(err error)
}
