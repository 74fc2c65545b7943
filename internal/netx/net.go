// Package netx contains small networking helpers for the API transport.
package netx

import (
	"context"
	"errors"
	"net"
	"strings"
)

// JoinURL concatenates a base URL and a relative API path with exactly one
// slash between them, so "https://api.example/" + "/users" and
// "https://api.example" + "users" produce the same URL.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// FailureKind classifies a transport-level error for logging only. Callers of
// the transport never branch on it.
func FailureKind(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "dns"
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "connection"
	}

	return "other"
}
