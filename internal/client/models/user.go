// Package models defines client-side data models used by the moneyboy CLI.
package models

// UserProfile is the authenticated user as returned by users/profile.
type UserProfile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`

	// Cached is set when the profile was served from local storage because
	// the server could not be reached.
	Cached bool `json:"-"`
}

// UserInfo is a single entry of the /users listing.
type UserInfo struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// Registration is the auth/register payload.
type Registration struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// Credentials is the auth/login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Tokens is the auth/login response.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
