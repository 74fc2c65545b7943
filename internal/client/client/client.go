package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Store keys shared by the transport and the session services.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
	UserKey         = "user"
)

// SessionKeys lists every key that belongs to an authenticated session.
var SessionKeys = []string{AccessTokenKey, RefreshTokenKey, UserKey}

type Transport interface {
	Request(ctx context.Context, path string, opts RequestOptions) (*Response, error)
	RequestWithAuth(ctx context.Context, path string, opts RequestOptions) (*Response, error)
}

// RequestOptions describes a single API call. Method defaults to GET.
// When JSON is set it is marshaled and takes precedence over Body.
type RequestOptions struct {
	Method string
	Header http.Header
	Body   []byte
	JSON   any
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Status returns the HTTP status or 0 for a nil response.
func (r *Response) Status() int {
	if r == nil {
		return 0
	}
	return r.StatusCode
}

// DecodeJSON unmarshals the response body into v.
func (r *Response) DecodeJSON(v any) error {
	if r == nil {
		return fmt.Errorf("decode response: %w", ErrUnavailable)
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
