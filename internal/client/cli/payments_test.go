package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/moneyboy/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	v, err := parseAmount(" 12,50 ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	v, err = parseAmount("-3.2")
	require.NoError(t, err)
	assert.Equal(t, -3.2, v)

	_, err = parseAmount("lots")
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"u1", "u2"}, splitList(" u1, ,u2 ,"))
	assert.Equal(t, []string{}, splitList(""))
}

func TestPay(t *testing.T) {
	p := &fakePayments{accept: true}
	a, out := newTestApp(&fakeSession{}, p)
	stubInputs(t, []string{"9.99", "pizza", "u2, u3"})

	require.NoError(t, a.Pay(context.Background()))
	assert.Equal(t, []models.PaymentCreate{{Amount: 9.99, Description: "pizza", Participants: []string{"u2", "u3"}}}, p.created)
	assert.Contains(t, out.String(), "Payment created")
}

func TestPay_Refused(t *testing.T) {
	p := &fakePayments{accept: false}
	a, out := newTestApp(&fakeSession{}, p)
	stubInputs(t, []string{"1", "x", ""})

	require.ErrorIs(t, a.Pay(context.Background()), ErrPaymentRefused)
	assert.Contains(t, out.String(), "not created")
}

func TestPay_BadAmountStopsEarly(t *testing.T) {
	p := &fakePayments{accept: true}
	a, _ := newTestApp(&fakeSession{}, p)
	stubInputs(t, []string{"ten"})

	require.ErrorIs(t, a.Pay(context.Background()), ErrInvalidAmount)
	assert.Empty(t, p.created)
}

func TestListPayments(t *testing.T) {
	ts := time.Date(2023, 11, 14, 22, 13, 0, 0, time.Local).UnixMilli()
	p := &fakePayments{list: []models.Payment{
		{ID: "p1", Amount: 12.5, Description: "pizza", Participants: []string{"u2"}, Date: ts},
		{ID: "p2", Amount: 3, Description: "coffee"},
	}}
	a, out := newTestApp(&fakeSession{}, p)

	require.NoError(t, a.ListPayments(context.Background()))
	assert.Contains(t, out.String(), "2023-11-14 22:13")
	assert.Contains(t, out.String(), "12.50")
	assert.Contains(t, out.String(), "pizza")
	assert.Contains(t, out.String(), "coffee")
}

func TestListPayments_EmptyAndError(t *testing.T) {
	p := &fakePayments{}
	a, out := newTestApp(&fakeSession{}, p)
	require.NoError(t, a.ListPayments(context.Background()))
	assert.Contains(t, out.String(), "No payments yet")

	p.listErr = errors.New("server unavailable")
	require.Error(t, a.ListPayments(context.Background()))
}

func TestUsers(t *testing.T) {
	s := &fakeSession{users: []models.UserInfo{{ID: "1", Username: "alice", DisplayName: "Alice"}}}
	a, out := newTestApp(s, &fakePayments{})

	require.NoError(t, a.Users(context.Background()))
	assert.Contains(t, out.String(), "USERNAME")
	assert.Contains(t, out.String(), "alice")

	s.usersErr = errors.New("nope")
	require.Error(t, a.Users(context.Background()))
}
