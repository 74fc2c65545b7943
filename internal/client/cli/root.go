package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Username + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the interactive shell. The stored session, if any, is resumed
// before the first prompt.
func (a *App) Root(ctx context.Context) {
	a.println("Welcome to moneyboy (type 'help' for commands)")

	a.refreshUser(ctx)
	if a.user != nil {
		a.printf("Welcome back, %s\n", a.user.DisplayName)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
