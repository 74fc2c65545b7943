package services

import (
	"github.com/dmitrijs2005/moneyboy/internal/client/client"
	"github.com/dmitrijs2005/moneyboy/internal/client/repositories/secrets"
	"github.com/dmitrijs2005/moneyboy/internal/logging"
)

// Pesca bundles everything the API offers behind one value.
type Pesca struct {
	SessionService
	Payments PaymentService
}

func NewPesca(transport client.Transport, store secrets.Store, logger logging.Logger) *Pesca {
	return &Pesca{
		SessionService: NewSessionService(transport, store, logger),
		Payments:       NewPaymentService(transport, logger),
	}
}
