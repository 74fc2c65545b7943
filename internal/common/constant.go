// Package common contains shared constants, sentinel errors and small helpers
// used across the moneyboy client and the development API server.
package common

// AuthorizationHeaderName is the HTTP header that carries the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName correlates client log lines with server log lines.
const RequestIDHeaderName = "X-Request-ID"
