package selflib

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// DefaultProviderTimeout is a time given to each provider to respond.
const DefaultProviderTimeout = 3 * time.Second

// Resolver asks providers one by one until some of them returns an IP
// address. It has no mutable state which affects resolving so it is
// safe to use it concurrently.
type Resolver struct {
	logger     Logger
	providers  []Provider
	usageStats []*UsageStats
	timeout    time.Duration
}

// Resolve returns an IP address of the first provider which has
// managed to detect it. Providers are asked strictly in order, next
// one only after a failure of the previous one. If all of them have
// failed, the result is empty.
//
// Resolve never panics: any unexpected failure is logged and
// converted into an empty result.
func (r *Resolver) Resolve(ctx context.Context) (rv ResolveResult) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.logger.ResolveError(fmt.Errorf("%w: %v", ErrUnexpectedFailure, recovered))

			rv = ResolveResult{}
		}
	}()

	if len(r.providers) == 0 {
		r.logger.ResolveError(ErrNoProviders)

		return rv
	}

	var errs error

	for i, prov := range r.providers {
		if err := ctx.Err(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("resolving is cancelled: %w", err))

			break
		}

		ip, err := r.attempt(ctx, i)
		if err == nil {
			rv.IP = ip
			rv.Provider = prov.Name()

			return rv
		}

		r.logger.LookupError(prov.Name(), r.nextProviderName(i), err)
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", prov.Name(), err))
	}

	r.logger.ResolveError(fmt.Errorf("%w: %w", ErrAllProvidersFailed, errs))

	return rv
}

func (r *Resolver) attempt(ctx context.Context, idx int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ip, err := r.providers[idx].Lookup(ctx)
	if err == nil && ip == "" {
		err = ErrEmptyIP
	}

	r.usageStats[idx].Used(err)

	return ip, err
}

func (r *Resolver) nextProviderName(idx int) string {
	if idx+1 < len(r.providers) {
		return r.providers[idx+1].Name()
	}

	return ""
}

// GetUserIP returns a public IP address. The second value is false
// if address cannot be detected.
func (r *Resolver) GetUserIP(ctx context.Context) (string, bool) {
	res := r.Resolve(ctx)

	return res.IP, res.OK()
}

// Providers returns names of providers in order they are asked.
func (r *Resolver) Providers() []string {
	rv := make([]string, len(r.providers))

	for i, v := range r.providers {
		rv[i] = v.Name()
	}

	return rv
}

// UsageStats returns stats of each provider in order they are asked.
func (r *Resolver) UsageStats() []*UsageStats {
	rv := make([]*UsageStats, len(r.usageStats))

	copy(rv, r.usageStats)

	return rv
}

// NewResolver creates a new Resolver which asks given providers in the
// given order.
//
// If logger is nil, nothing is logged. If timeout is not positive,
// DefaultProviderTimeout is used.
func NewResolver(providers []Provider, logger Logger, timeout time.Duration) *Resolver {
	if logger == nil {
		logger = NoopLogger{}
	}

	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}

	rv := &Resolver{
		logger:     logger,
		providers:  make([]Provider, len(providers)),
		usageStats: make([]*UsageStats, len(providers)),
		timeout:    timeout,
	}

	copy(rv.providers, providers)

	for i, v := range providers {
		rv.usageStats[i] = &UsageStats{
			Name: v.Name(),
		}
	}

	return rv
}
