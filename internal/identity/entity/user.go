package entity

import "time"

// User is a verified account.
type User struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	Provider     AuthProvider
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser carries the fields required to create an account.
type NewUser struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	Provider     AuthProvider
}
