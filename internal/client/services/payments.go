package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/moneyboy/internal/client/client"
	"github.com/dmitrijs2005/moneyboy/internal/client/models"
	"github.com/dmitrijs2005/moneyboy/internal/logging"
)

const paymentsPath = "payments"

type PaymentService interface {
	// Create reports whether the server accepted the payment (HTTP 201).
	Create(ctx context.Context, p models.PaymentCreate) bool
	GetAll(ctx context.Context) ([]models.Payment, error)
}

type paymentService struct {
	transport client.Transport
	logger    logging.Logger
}

func NewPaymentService(transport client.Transport, logger logging.Logger) PaymentService {
	return &paymentService{transport: transport, logger: logger.With("module", "payments")}
}

func (s *paymentService) Create(ctx context.Context, p models.PaymentCreate) bool {
	if p.Participants == nil {
		p.Participants = []string{}
	}

	resp, err := s.transport.RequestWithAuth(ctx, paymentsPath, client.RequestOptions{
		Method: http.MethodPost,
		JSON:   p,
	})
	if err != nil {
		s.logger.Warn(ctx, "create payment failed", "error", err)
		return false
	}
	return resp.StatusCode == http.StatusCreated
}

// wirePayment keeps date raw: the server may send it as a string.
type wirePayment struct {
	models.Payment
	Date json.RawMessage `json:"date"`
}

// GetAll lists payments with each date coerced to an integer. A date that
// cannot be read becomes 0.
func (s *paymentService) GetAll(ctx context.Context) ([]models.Payment, error) {
	resp, err := s.transport.RequestWithAuth(ctx, paymentsPath, client.RequestOptions{})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus("list payments", resp.StatusCode)
	}

	var wire []wirePayment
	if err := resp.DecodeJSON(&wire); err != nil {
		return nil, err
	}

	out := make([]models.Payment, 0, len(wire))
	for _, w := range wire {
		p := w.Payment
		date, err := models.ParseTimestamp(w.Date)
		if err != nil {
			s.logger.Warn(ctx, "payment has unreadable date", "id", p.ID, "error", err)
		}
		p.Date = date
		out = append(out, p)
	}
	return out, nil
}
