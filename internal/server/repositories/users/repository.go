// Package users declares the server-side user repository and its in-memory
// implementation.
package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/moneyboy/internal/common"
	"github.com/dmitrijs2005/moneyboy/internal/server/models"
)

var (
	ErrUsernameTaken = fmt.Errorf("username %w", common.ErrorAlreadyExists)
	ErrEmailTaken    = fmt.Errorf("email %w", common.ErrorAlreadyExists)
)

type Repository interface {
	// Create assigns an id to user and stores it. Usernames and emails must
	// be unique; emails are compared case-insensitively.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// List returns users in registration order.
	List(ctx context.Context) ([]models.User, error)
}
