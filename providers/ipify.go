package providers

import "github.com/9seconds/selfip/selflib"

const endpointIPify = "https://api.ipify.org?format=json"

func NewIPify(client selflib.HTTPClient) selflib.Provider {
	return NewJSON(NameIPify, endpointIPify, "ip", client)
}
