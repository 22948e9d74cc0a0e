package main

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/9seconds/selfip/providers"
	"github.com/9seconds/selfip/selflib"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeProviders(conf *config) ([]selflib.Provider, error) {
	httpClient := makeNewHTTPClient(conf)
	rv := make([]selflib.Provider, 0, len(conf.GetProviders()))

	for _, v := range conf.GetProviders() {
		prov, err := providers.New(v.GetName(), httpClient, v.GetSpecificParameters())
		if err != nil {
			return nil, fmt.Errorf("cannot create provider %s: %w", v.GetDisplayName(), err)
		}

		rv = append(rv, prov)
	}

	return rv, nil
}

func makeNewHTTPClient(conf *config) selflib.HTTPClient {
	return selflib.NewHTTPClient(&http.Client{},
		conf.GetUserAgent(),
		conf.GetRateLimitInterval(),
		conf.GetRateLimitBurst())
}

func makeResolver(conf *config, logger selflib.Logger) (*selflib.Resolver, error) {
	provs, err := makeProviders(conf)
	if err != nil {
		return nil, err
	}

	return selflib.NewResolver(provs, logger, conf.GetTimeout()), nil
}

func parseHeaders(values []string) (selflib.Headers, error) {
	if len(values) == 0 {
		return nil, nil
	}

	rv := selflib.Headers{}

	for _, v := range values {
		name, value, ok := strings.Cut(v, ":")
		name = strings.TrimSpace(name)

		if !ok || name == "" {
			return nil, fmt.Errorf("incorrect header %q, expected 'Name: Value'", v)
		}

		rv[http.CanonicalHeaderKey(name)] = strings.TrimSpace(value)
	}

	return rv, nil
}

func makeHeaders(ctx context.Context, resolver *selflib.Resolver, values []string) (selflib.Headers, error) {
	existing, err := parseHeaders(values)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return resolver.GetHeadersWithIP(ctx), nil
	}

	return resolver.AddIPToHeaders(ctx, existing), nil
}

func basicAuth(auth configBasicAuth) func(http.Handler) http.Handler {
	user := []byte(auth.User)
	password := []byte(auth.Password)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			reqUser, reqPassword, _ := req.BasicAuth()

			if subtle.ConstantTimeCompare(user, []byte(reqUser))+
				subtle.ConstantTimeCompare(password, []byte(reqPassword)) == 2 {
				next.ServeHTTP(w, req)

				return
			}

			w.Header().Set("WWW-Authenticate", `Basic realm="selfip"`)
			http.Error(w, "Authentication is required", http.StatusUnauthorized)
		})
	}
}
