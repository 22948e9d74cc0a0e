package providers

import "github.com/9seconds/selfip/selflib"

const endpointIPInfo = "https://ipinfo.io/json"

// NewIPInfo returns a provider for ipinfo.io. It works without a token
// but 'auth_token' parameter lifts rate limits.
func NewIPInfo(client selflib.HTTPClient, parameters map[string]string) selflib.Provider {
	prov := jsonProvider{
		name:      NameIPInfo,
		endpoint:  endpointIPInfo,
		fieldPath: parseFieldPath("ip"),
		client:    client,
	}

	if token := parameters["auth_token"]; token != "" {
		prov.headers = map[string]string{
			"Authorization": "Bearer " + token,
		}
	}

	return prov
}
