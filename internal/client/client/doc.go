// Package client talks to the todokeeper backend.
//
// GRPCClient implements the Client interface over gRPC. It keeps the
// current session token in a TokenStore, attaches it to every call through
// a unary interceptor and maps gRPC status codes onto the sentinel errors of
// this package, so callers can match them with errors.Is.
//
// A call rejected as "unauthenticated" while a token was attached means the
// session was revoked or expired; the client forgets the token in that case.
package client
