package selflib

import (
	"context"
	"strings"
)

// Headers returns a new map of headers with X-Real-IP set if public
// IP address was resolved. If existing is nil, base headers contain
// only JSON content type. existing is never modified.
//
// Header names are case-insensitive so any spelling of X-Real-IP from
// existing is replaced, not duplicated.
func (r *Resolver) Headers(ctx context.Context, existing Headers) Headers {
	var rv Headers

	if existing == nil {
		rv = Headers{HeaderContentType: ContentTypeJSON}
	} else {
		rv = existing.Copy()
	}

	if ip, ok := r.GetUserIP(ctx); ok {
		for k := range rv {
			if strings.EqualFold(k, HeaderRealIP) {
				delete(rv, k)
			}
		}

		rv[HeaderRealIP] = ip
	}

	return rv
}

// GetHeadersWithIP returns JSON content type header and X-Real-IP if
// it is known.
func (r *Resolver) GetHeadersWithIP(ctx context.Context) Headers {
	return r.Headers(ctx, nil)
}

// AddIPToHeaders returns a copy of existing headers with X-Real-IP if
// it is known.
func (r *Resolver) AddIPToHeaders(ctx context.Context, existing Headers) Headers {
	if existing == nil {
		existing = Headers{}
	}

	return r.Headers(ctx, existing)
}
