package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/moneyboy/internal/client/models"
)

var (
	ErrInvalidAmount  = errors.New("amount must be a number")
	ErrPaymentRefused = errors.New("payment was not created")
)

func (a *App) Users(ctx context.Context) error {
	users, err := a.session.GetUsers(ctx)
	if err != nil {
		a.println("Cannot list users:", err.Error())
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\n", u.ID, u.Username, u.DisplayName)
	}
	return w.Flush()
}

func (a *App) ListPayments(ctx context.Context) error {
	payments, err := a.payments.GetAll(ctx)
	if err != nil {
		a.println("Cannot list payments:", err.Error())
		return err
	}
	if len(payments) == 0 {
		a.println("No payments yet")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tDESCRIPTION\tPARTICIPANTS")
	for _, p := range payments {
		date := "-"
		if p.Date != 0 {
			date = time.UnixMilli(p.Date).Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n", date, p.Amount, p.Description, strings.Join(p.Participants, ", "))
	}
	return w.Flush()
}

// Pay prompts for a new payment and submits it.
func (a *App) Pay(ctx context.Context) error {
	amountText, err := getSimpleText(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		a.println(err.Error())
		return err
	}

	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	who, err := getSimpleText(a.reader, "Participants (comma separated user ids)", a.out)
	if err != nil {
		return err
	}

	return a.createPayment(ctx, models.PaymentCreate{
		Amount:       amount,
		Description:  description,
		Participants: splitList(who),
	})
}

func (a *App) createPayment(ctx context.Context, p models.PaymentCreate) error {
	if !a.payments.Create(ctx, p) {
		a.println("Payment was not created")
		return ErrPaymentRefused
	}
	a.println("Payment created")
	return nil
}

// parseAmount accepts a decimal comma as well as a point.
func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return v, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
