package netx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"https://moneyboy.pesca.dev", "auth/login", "https://moneyboy.pesca.dev/auth/login"},
		{"https://moneyboy.pesca.dev/", "auth/login", "https://moneyboy.pesca.dev/auth/login"},
		{"https://moneyboy.pesca.dev", "/users", "https://moneyboy.pesca.dev/users"},
		{"http://127.0.0.1:8080/api/", "/payments", "http://127.0.0.1:8080/api/payments"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinURL(tt.base, tt.path))
	}
}

func TestFailureKind(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "", FailureKind(nil))
	})

	t.Run("context errors", func(t *testing.T) {
		assert.Equal(t, "canceled", FailureKind(fmt.Errorf("do: %w", context.Canceled)))
		assert.Equal(t, "timeout", FailureKind(fmt.Errorf("do: %w", context.DeadlineExceeded)))
	})

	t.Run("dns", func(t *testing.T) {
		err := fmt.Errorf("dial: %w", &net.DNSError{Err: "no such host", Name: "nowhere.invalid"})
		assert.Equal(t, "dns", FailureKind(err))
	})

	t.Run("connection refused", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		_, err := http.Get(url)
		require.Error(t, err)
		assert.Equal(t, "connection", FailureKind(err))
	})

	t.Run("client timeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer ts.Close()

		c := &http.Client{Timeout: 20 * time.Millisecond}
		_, err := c.Get(ts.URL)
		require.Error(t, err)
		assert.Equal(t, "timeout", FailureKind(err))
	})

	t.Run("other", func(t *testing.T) {
		assert.Equal(t, "other", FailureKind(errors.New("boom")))
	})
}
