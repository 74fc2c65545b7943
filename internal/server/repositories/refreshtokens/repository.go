// Package refreshtokens declares the server-side repository for refresh
// tokens and its in-memory implementation.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/moneyboy/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking refresh tokens.
type Repository interface {
	// Create stores a new refresh token for userID with an expiry of now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a single token. Deleting a missing token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteByUser revokes every token issued to userID.
	DeleteByUser(ctx context.Context, userID string) error
}
