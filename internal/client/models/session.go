package models

import "time"

// SessionStatus describes locally stored credentials. Claims are decoded
// without signature verification and are informational only.
type SessionStatus struct {
	HasAccessToken  bool
	HasRefreshToken bool
	HasCachedUser   bool
	Subject         string
	ExpiresAt       time.Time
}

// Expired reports whether the access token carries an expiry in the past.
func (s SessionStatus) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
