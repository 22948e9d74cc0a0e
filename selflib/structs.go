package selflib

import "net/http"

const (
	HeaderContentType = "Content-Type"
	HeaderRealIP      = "X-Real-IP"

	ContentTypeJSON = "application/json"
)

// ResolveResult is an outcome of the resolving. Zero value means that
// IP address cannot be detected.
type ResolveResult struct {
	IP       string `json:"ip"`
	Provider string `json:"provider"`
}

func (r ResolveResult) OK() bool {
	return r.IP != ""
}

// Headers is a mapping from header name to its value.
type Headers map[string]string

// Copy returns a shallow copy of headers. A copy of nil is an empty
// map.
func (h Headers) Copy() Headers {
	rv := make(Headers, len(h)+1)

	for k, v := range h {
		rv[k] = v
	}

	return rv
}

// Apply sets all headers into given http.Header.
func (h Headers) Apply(header http.Header) {
	for k, v := range h {
		header.Set(k, v)
	}
}
