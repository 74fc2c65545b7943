// Package models holds the records kept by the development API server.
package models

import "time"

type User struct {
	ID           string
	UserName     string
	DisplayName  string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
