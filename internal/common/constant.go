// Package common contains shared constants and sentinel errors used across
// todokeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// session token on inbound and outbound requests.
const AccessTokenHeaderName = "x-auth"

// AccessScopeAuth is the access scope of interactive login sessions. It is
// the only scope issued today; sessions store the scope as free text.
const AccessScopeAuth = "auth"
