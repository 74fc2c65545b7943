package payments

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/dmitrijs2005/moneyboy/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	payments []models.Payment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	stored := *p
	stored.ID = uuid.NewString()
	stored.Participants = slices.Clone(p.Participants)

	r.mu.Lock()
	r.payments = append(r.payments, stored)
	r.mu.Unlock()

	out := stored
	out.Participants = slices.Clone(stored.Participants)
	return &out, nil
}

func (r *MemoryRepository) ListForUser(ctx context.Context, userID string) ([]models.Payment, error) {
	r.mu.RLock()
	out := make([]models.Payment, 0)
	for i := range r.payments {
		if r.payments[i].Involves(userID) {
			p := r.payments[i]
			p.Participants = slices.Clone(p.Participants)
			out = append(out, p)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
