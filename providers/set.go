package providers

import (
	"fmt"

	"github.com/9seconds/selfip/selflib"
)

// New builds a provider by its name. parameters are provider specific:
//
//	ipinfo: auth_token
//	custom: endpoint (required), field
func New(name string, client selflib.HTTPClient, parameters map[string]string) (selflib.Provider, error) {
	switch name {
	case NameUserAgentInfo:
		return NewUserAgentInfo(client), nil
	case NameIPInfo:
		return NewIPInfo(client, parameters), nil
	case NameIPify:
		return NewIPify(client), nil
	case NameCustom:
		endpoint := parameters["endpoint"]
		if endpoint == "" {
			return nil, ErrEndpointIsRequired
		}

		displayName := parameters["name"]
		if displayName == "" {
			displayName = NameCustom
		}

		return NewJSON(displayName, endpoint, parameters["field"], client), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
}

// Default returns built-in providers in their priority order. It
// panics if DefaultNames has a name New cannot build.
func Default(client selflib.HTTPClient) []selflib.Provider {
	rv := make([]selflib.Provider, 0, len(DefaultNames))

	for _, name := range DefaultNames {
		prov, err := New(name, client, nil)
		if err != nil {
			panic(err)
		}

		rv = append(rv, prov)
	}

	return rv
}
