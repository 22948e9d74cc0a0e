package providers

import "github.com/9seconds/selfip/selflib"

const endpointUserAgentInfo = "https://ip.useragentinfo.com/json"

func NewUserAgentInfo(client selflib.HTTPClient) selflib.Provider {
	return NewJSON(NameUserAgentInfo, endpointUserAgentInfo, "ip", client)
}
