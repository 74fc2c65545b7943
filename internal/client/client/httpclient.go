package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/moneyboy/internal/client/repositories/secrets"
	"github.com/dmitrijs2005/moneyboy/internal/common"
	"github.com/dmitrijs2005/moneyboy/internal/logging"
	"github.com/dmitrijs2005/moneyboy/internal/netx"
	"github.com/google/uuid"
)

const refreshPath = "auth/refresh"

type attempt int

const (
	attemptInitial attempt = iota
	attemptRetried
	attemptDone
)

type HTTPTransport struct {
	baseURL string
	http    *http.Client
	store   secrets.Store
	logger  logging.Logger
}

// NewHTTPTransport returns a transport for baseURL. A nil httpClient means
// http.DefaultClient.
func NewHTTPTransport(baseURL string, httpClient *http.Client, store secrets.Store, logger logging.Logger) *HTTPTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPTransport{
		baseURL: baseURL,
		http:    httpClient,
		store:   store,
		logger:  logger.With("module", "transport"),
	}
}

func (t *HTTPTransport) BaseURL() string {
	return t.baseURL
}

// Request performs an unauthenticated call. A non-nil error means no HTTP
// response was obtained.
func (t *HTTPTransport) Request(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	body := opts.Body
	header := opts.Header.Clone()
	if header == nil {
		header = http.Header{}
	}

	if opts.JSON != nil {
		b, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = b
		header.Set("Content-Type", "application/json")
	}
	if header.Get("Accept") == "" {
		header.Set("Accept", "application/json")
	}

	requestID := uuid.NewString()
	header.Set(common.RequestIDHeaderName, requestID)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, netx.JoinURL(t.baseURL, path), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header = header

	resp, err := t.http.Do(req)
	if err != nil {
		t.logger.Debug(ctx, "request failed", "method", method, "path", path,
			"request_id", requestID, "kind", netx.FailureKind(err), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.logger.Debug(ctx, "reading response failed", "method", method, "path", path,
			"request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	t.logger.Debug(ctx, "request done", "method", method, "path", path,
		"status", resp.StatusCode, "request_id", requestID)

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (t *HTTPTransport) readToken(ctx context.Context, key string) string {
	v, err := t.store.Get(ctx, key)
	if err != nil {
		t.logger.Warn(ctx, "failed to read token", "key", key, "error", err)
		return ""
	}
	return string(v)
}

func withBearer(h http.Header, token string) http.Header {
	out := h.Clone()
	if out == nil {
		out = http.Header{}
	}
	out.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	return out
}

// RequestWithAuth performs the call with the stored access token. On a 401 it
// exchanges the refresh token for a new access token and retries once; if the
// refresh fails the original 401 response is returned.
func (t *HTTPTransport) RequestWithAuth(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	opts.Header = withBearer(opts.Header, t.readToken(ctx, AccessTokenKey))

	var (
		resp *Response
		err  error
	)

	for state := attemptInitial; state != attemptDone; {
		resp, err = t.Request(ctx, path, opts)
		if err != nil || resp.StatusCode != http.StatusUnauthorized || state == attemptRetried {
			break
		}

		token, ok := t.refresh(ctx)
		if !ok {
			state = attemptDone
			continue
		}

		opts.Header = withBearer(opts.Header, token)
		state = attemptRetried
	}

	return resp, err
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

func (t *HTTPTransport) refresh(ctx context.Context) (string, bool) {
	resp, err := t.Request(ctx, refreshPath, RequestOptions{
		Method: http.MethodPost,
		JSON:   refreshRequest{RefreshToken: t.readToken(ctx, RefreshTokenKey)},
	})
	if err != nil {
		t.logger.Info(ctx, "token refresh failed", "error", err)
		return "", false
	}
	if resp.StatusCode != http.StatusCreated {
		t.logger.Info(ctx, "token refresh rejected", "status", resp.StatusCode)
		return "", false
	}

	var r refreshResponse
	if err := resp.DecodeJSON(&r); err != nil {
		t.logger.Warn(ctx, "token refresh returned malformed body", "error", err)
		return "", false
	}

	if err := t.store.Set(ctx, AccessTokenKey, []byte(r.AccessToken)); err != nil {
		t.logger.Error(ctx, "failed to persist refreshed token", "error", err)
	}

	return r.AccessToken, true
}
