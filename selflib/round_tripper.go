package selflib

import "net/http"

type roundTripper struct {
	resolver *Resolver
	next     http.RoundTripper
}

func (r roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	headers := r.resolver.AddIPToHeaders(req.Context(), nil)
	if len(headers) == 0 {
		return r.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	headers.Apply(req.Header)

	return r.next.RoundTrip(req)
}

// NewRoundTripper wraps next transport so each outgoing request gets
// X-Real-IP header with a public IP address. A request is sent as is
// if address cannot be detected.
//
// Do not use this transport in HTTP client of the providers: each
// lookup would trigger resolving again.
func NewRoundTripper(resolver *Resolver, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripper{
		resolver: resolver,
		next:     next,
	}
}
