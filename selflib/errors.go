package selflib

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	// ErrNoProviders is reported if resolver has nothing to ask.
	ErrNoProviders = errors.New("no providers are configured")

	// ErrEmptyIP is reported if provider has responded without an
	// error but has returned an empty address.
	ErrEmptyIP = errors.New("provider has returned an empty ip")

	// ErrAllProvidersFailed is reported when a chain of providers was
	// exhausted.
	ErrAllProvidersFailed = errors.New("all providers have failed")

	// ErrUnexpectedFailure is reported when resolving has panicked.
	ErrUnexpectedFailure = errors.New("unexpected failure")
)

type jsonHTTPError struct {
	Error struct {
		Message string `json:"message"`
		Context string `json:"context"`
	} `json:"error"`
}

type httpError struct {
	message    string
	err        error
	statusCode int
}

func (h *httpError) Message() string {
	if h == nil {
		return ""
	}

	return h.message
}

func (h *httpError) Err() string {
	if err := errors.Unwrap(h); err != nil {
		return err.Error()
	}

	return ""
}

func (h *httpError) StatusCode() int {
	if h != nil && h.statusCode != 0 {
		return h.statusCode
	}

	return http.StatusInternalServerError
}

func (h *httpError) Unwrap() error {
	if h == nil {
		return nil
	}

	return h.err
}

func (h *httpError) Error() string {
	switch {
	case h == nil:
		return ""
	case h.err != nil && h.message != "":
		return h.message + ": " + h.err.Error()
	case h.err != nil:
		return h.err.Error()
	}

	return h.message
}

func (h *httpError) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("null"), nil
	}

	value := jsonHTTPError{}
	value.Error.Message = h.Message()
	value.Error.Context = h.Err()

	return json.Marshal(&value)
}
