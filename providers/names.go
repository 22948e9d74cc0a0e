package providers

const (
	// Identifier for ip.useragentinfo.com.
	NameUserAgentInfo = "useragentinfo"

	// Identifier for ipinfo.io.
	NameIPInfo = "ipinfo"

	// Identifier for ipify.org.
	NameIPify = "ipify"

	// Identifier for a user-defined JSON endpoint.
	NameCustom = "custom"
)

// DefaultNames is an order in which built-in providers are asked.
var DefaultNames = []string{
	NameUserAgentInfo,
	NameIPInfo,
	NameIPify,
}
