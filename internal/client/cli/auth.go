package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/moneyboy/internal/client/models"
	"github.com/dmitrijs2005/moneyboy/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var (
	ErrMissingFields    = errors.New("all fields are required")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Register prompts for the account fields and creates the account. All
// fields are required and the password must be entered twice.
func (a *App) Register(ctx context.Context) error {
	var r models.Registration
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter email", &r.Email},
		{"Enter username", &r.Username},
		{"Enter display name", &r.DisplayName},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if r.Email == "" || r.Username == "" || r.DisplayName == "" || len(password) == 0 {
		a.println(ErrMissingFields.Error())
		return ErrMissingFields
	}
	if string(password) != string(confirm) {
		a.println(ErrPasswordMismatch.Error())
		return ErrPasswordMismatch
	}
	r.Password = string(password)

	if err := a.session.Register(ctx, r); err != nil {
		a.println("Registration failed:", err.Error())
		return err
	}

	a.println("Registered, you can log in now.")
	return nil
}

// Login prompts for credentials, logs in and then loads the profile of the
// freshly authenticated user.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.login(ctx, userName, string(password))
}

func (a *App) login(ctx context.Context, userName, password string) error {
	if err := a.session.Login(ctx, userName, password); err != nil {
		a.println("Login unsuccessful:", err.Error())
		return err
	}

	a.refreshUser(ctx)
	if a.user != nil {
		a.printf("Logged in as %s\n", a.user.DisplayName)
	}
	return nil
}

// Logout always succeeds locally, even when the server is unreachable.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.user = nil
	a.setMode(ctx, ModeSignedOut)
	a.println("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.whoAmI(ctx); errors.Is(err, ErrNotLoggedIn) {
		a.println("Not logged in")
	}
	return nil
}

// whoAmI prints the current user or returns ErrNotLoggedIn without
// printing anything, leaving the report to the caller.
func (a *App) whoAmI(ctx context.Context) error {
	a.refreshUser(ctx)
	if a.user == nil {
		return ErrNotLoggedIn
	}

	suffix := ""
	if a.user.Cached {
		suffix = " (cached, server unreachable)"
	}
	a.printf("%s (@%s, id %s)%s\n", a.user.DisplayName, a.user.Username, a.user.ID, suffix)
	return nil
}

// Status prints what is stored locally without talking to the server.
func (a *App) Status(ctx context.Context) error {
	st, err := a.session.SessionStatus(ctx)
	if err != nil {
		a.println("Cannot read session:", err.Error())
		return err
	}

	a.printf("API:           %s\n", a.config.APIBaseURL)
	a.printf("Access token:  %s\n", yesNo(st.HasAccessToken))
	a.printf("Refresh token: %s\n", yesNo(st.HasRefreshToken))
	a.printf("Cached user:   %s\n", yesNo(st.HasCachedUser))
	if st.Subject != "" {
		a.printf("Subject:       %s\n", st.Subject)
	}
	if !st.ExpiresAt.IsZero() {
		state := "valid"
		if st.Expired(time.Now()) {
			state = "expired, will refresh on next request"
		}
		a.printf("Expires at:    %s (%s)\n", st.ExpiresAt.Format(time.RFC3339), state)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
