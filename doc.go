// Selfip is a tool to detect a public IP address of the current host.
//
// It asks several public IP lookup services one by one: if the first
// one fails or does not respond within a timeout, the next one is
// asked. Failures are never fatal, they are only logged.
//
// Tool itself is organized into 3 logical parts:
//
// Selflib
//
// selflib is a main package of the application which contains Resolver
// and all logic of the fallback chain. It also knows how to add
// resolved address to HTTP headers and has its own HTTP API.
//
// Providers
//
// This package has implementations of the lookup services and the
// default chain. It also has package-level shortcuts which use this
// default chain.
//
// Selfip
//
// A main package itself is an example of how to wire both selflib and
// providers. It is a CLI which can print an IP address, print headers
// or start an HTTP server.
package main
