// Package common contains shared constants and sentinel errors used across
// storefront components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// BearerPrefix is prepended to the token in the Authorization header.
	BearerPrefix = "Bearer "

	ContentTypeHeaderName = "Content-Type"
	JSONContentType       = "application/json"
)
