// Package payments stores payments for the development API server.
package payments

import (
	"context"

	"github.com/dmitrijs2005/moneyboy/internal/server/models"
)

type Repository interface {
	// Create assigns an id to p and stores a copy.
	Create(ctx context.Context, p *models.Payment) (*models.Payment, error)
	// ListForUser returns the payments userID paid or takes part in,
	// newest first.
	ListForUser(ctx context.Context, userID string) ([]models.Payment, error)
}
