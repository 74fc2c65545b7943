package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCredentials   = errors.New("username and password must not be empty")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternal           = errors.New("internal error")
	ErrUnexpectedStatus   = errors.New("unexpected response status")
	ErrEmptyProfile       = errors.New("empty profile")
)

const defaultRegistrationMessage = "error during registration"

// RegistrationError carries the server message for a rejected registration.
// Status is 0 when no response was received.
type RegistrationError struct {
	Status  int
	Message string
}

func (e *RegistrationError) Error() string {
	return e.Message
}

func unexpectedStatus(op string, status int) error {
	return fmt.Errorf("%s: %w %d", op, ErrUnexpectedStatus, status)
}
