package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dmitrijs2005/moneyboy/internal/common"
	"github.com/dmitrijs2005/moneyboy/internal/server/models"
	"github.com/dmitrijs2005/moneyboy/internal/server/repositories/repomanager"
)

type NewPayment struct {
	Amount       float64
	Description  string
	Participants []string
}

type PaymentService struct {
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewPaymentService(m repomanager.RepositoryManager) *PaymentService {
	return &PaymentService{repomanager: m, now: time.Now}
}

// Create records a payment made by userID. Every participant must be a
// registered user.
func (s *PaymentService) Create(ctx context.Context, userID string, in NewPayment) (*models.Payment, error) {
	if in.Amount <= 0 || math.IsInf(in.Amount, 0) || math.IsNaN(in.Amount) {
		return nil, fmt.Errorf("%w: amount must be positive", common.ErrorValidation)
	}

	participants := make([]string, 0, len(in.Participants))
	for _, id := range in.Participants {
		if _, err := s.repomanager.Users().GetByID(ctx, id); err != nil {
			return nil, fmt.Errorf("%w: unknown participant %q", common.ErrorValidation, id)
		}
		participants = append(participants, id)
	}

	return s.repomanager.Payments().Create(ctx, &models.Payment{
		Amount:       in.Amount,
		Description:  strings.TrimSpace(in.Description),
		Participants: participants,
		CreatedBy:    userID,
		Date:         s.now().UTC(),
	})
}

func (s *PaymentService) List(ctx context.Context, userID string) ([]models.Payment, error) {
	return s.repomanager.Payments().ListForUser(ctx, userID)
}
