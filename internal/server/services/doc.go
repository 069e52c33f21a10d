// Package services contains server-side business logic: the session
// registry, the authenticator that turns bearer tokens into principals,
// user account operations and the owner-scoped todo service.
//
// Services return the sentinels from internal/common. Any other failure is
// logged and collapsed to common.ErrorInternal.
package services
