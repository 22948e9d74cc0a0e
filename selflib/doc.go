// This package provides a set of structs and functions which are used
// to detect a public IP address of the current host.
//
// selflib is a core of the selfip project. The rest of the application
// is an example on how to use this library: how to build providers,
// how to pass parameters from the config, how to serve results over
// HTTP.
//
// Resolver is a main entity of the selflib. It has an ordered list
// of providers and asks them one by one until some of them returns
// an IP address. Each provider has its own deadline. A failure of
// the provider is never an error for a caller: it is logged and the
// next provider is asked. If every provider has failed, Resolver
// returns an empty ResolveResult.
//
// Resolver also knows how to put a resolved address into HTTP
// headers (X-Real-IP) and can act as an http.RoundTripper wrapper or
// as an http.Handler.
package selflib
