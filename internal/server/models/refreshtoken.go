package models

import "time"

// RefreshToken is an opaque server-side token that can mint new access
// tokens until it expires or its owner logs out.
type RefreshToken struct {
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.Expires)
}
