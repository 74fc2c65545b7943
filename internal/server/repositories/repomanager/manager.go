// Package repomanager bundles the repositories the server services use.
package repomanager

import (
	"github.com/dmitrijs2005/moneyboy/internal/server/repositories/payments"
	"github.com/dmitrijs2005/moneyboy/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/moneyboy/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	RefreshTokens() refreshtokens.Repository
	Payments() payments.Repository
}

type memoryManager struct {
	users         *users.MemoryRepository
	refreshTokens *refreshtokens.MemoryRepository
	payments      *payments.MemoryRepository
}

// NewMemoryRepositoryManager returns repositories that live only as long as
// the process.
func NewMemoryRepositoryManager() RepositoryManager {
	return &memoryManager{
		users:         users.NewMemoryRepository(),
		refreshTokens: refreshtokens.NewMemoryRepository(),
		payments:      payments.NewMemoryRepository(),
	}
}

func (m *memoryManager) Users() users.Repository                 { return m.users }
func (m *memoryManager) RefreshTokens() refreshtokens.Repository { return m.refreshTokens }
func (m *memoryManager) Payments() payments.Repository           { return m.payments }
