// Package client contains the client-side transport for the Pesca API.
//
// # Overview
//
// The package provides:
//  1. The Transport contract used by the session services: plain requests
//     and bearer-authenticated requests.
//  2. HTTPTransport, an implementation over net/http that reads tokens from
//     a secrets.Store, and on a 401 refreshes the access token once and
//     retries the original request.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying the embedded goose migrations.
//
// # Error Handling
//
// Transport failures (no HTTP response at all) are reported as errors
// wrapping ErrUnavailable. Any HTTP response, whatever its status, is
// returned as a *Response with a nil error.
package client
