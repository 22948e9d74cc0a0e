package providers

import "errors"

var (
	// ErrNoIPInResponse is returned if provider has responded with
	// a valid JSON but there is no IP address in the expected field.
	ErrNoIPInResponse = errors.New("cannot find ip address in response")

	// ErrUnknownProvider is returned if there is no provider with a
	// given name.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrEndpointIsRequired is returned if custom provider is built
	// without an endpoint.
	ErrEndpointIsRequired = errors.New("endpoint is required")
)
