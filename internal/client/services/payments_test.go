package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/moneyboy/internal/client/client"
	"github.com/dmitrijs2005/moneyboy/internal/client/models"
	"github.com/dmitrijs2005/moneyboy/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentsCreate(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"created", http.StatusCreated, true},
		{"ok is not created", http.StatusOK, false},
		{"unauthorized", http.StatusUnauthorized, false},
		{"no response", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newFakeTransport()
			if tt.status != 0 {
				tr.respond(paymentsPath, tt.status, ``)
			}
			svc := NewPaymentService(tr, logging.NewNopLogger())

			got := svc.Create(context.Background(), models.PaymentCreate{Amount: 12.5, Description: "pizza"})
			assert.Equal(t, tt.want, got)

			require.Len(t, tr.calls, 1)
			assert.True(t, tr.calls[0].Auth)
			assert.Equal(t, http.MethodPost, tr.calls[0].Method)
			assert.Equal(t, models.PaymentCreate{Amount: 12.5, Description: "pizza", Participants: []string{}}, tr.calls[0].JSON)
		})
	}
}

func TestPaymentsGetAll_CoercesDate(t *testing.T) {
	tr := newFakeTransport()
	tr.respond(paymentsPath, http.StatusOK, `[
		{"id":"p1","amount":10,"description":"a","participants":["u2"],"date":"1700000000000"},
		{"id":"p2","amount":-2.5,"description":"b","participants":[],"date":1700000000001},
		{"id":"p3","amount":1,"description":"c","participants":null,"date":"soon"}
	]`)

	got, err := NewPaymentService(tr, logging.NewNopLogger()).GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Payment{
		{ID: "p1", Amount: 10, Description: "a", Participants: []string{"u2"}, Date: 1700000000000},
		{ID: "p2", Amount: -2.5, Description: "b", Participants: []string{}, Date: 1700000000001},
		{ID: "p3", Amount: 1, Description: "c", Date: 0},
	}, got)
	assert.True(t, tr.calls[0].Auth)
}

func TestPaymentsGetAll_Failures(t *testing.T) {
	svc := func(tr *fakeTransport) PaymentService { return NewPaymentService(tr, logging.NewNopLogger()) }

	tr := newFakeTransport()
	got, err := svc(tr).GetAll(context.Background())
	assert.Nil(t, got)
	require.ErrorIs(t, err, client.ErrUnavailable)

	tr.respond(paymentsPath, http.StatusInternalServerError, `{}`)
	got, err = svc(tr).GetAll(context.Background())
	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrUnexpectedStatus)

	tr.respond(paymentsPath, http.StatusOK, `{"not":"a list"}`)
	got, err = svc(tr).GetAll(context.Background())
	assert.Nil(t, got)
	require.Error(t, err)
}
