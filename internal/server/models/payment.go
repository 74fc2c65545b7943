package models

import "time"

// Payment is an expense paid by CreatedBy and shared with Participants.
type Payment struct {
	ID           string
	Amount       float64
	Description  string
	Participants []string
	CreatedBy    string
	Date         time.Time
}

// Involves reports whether userID paid or shares the payment.
func (p *Payment) Involves(userID string) bool {
	if p.CreatedBy == userID {
		return true
	}
	for _, id := range p.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
