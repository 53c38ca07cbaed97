package entity

import "time"

// PendingSignup is an unverified signup awaiting its emailed code.
//
// At most one row exists per email; a repeated signup replaces the previous
// one wholesale.
type PendingSignup struct {
	Email        string
	FullName     string
	PasswordHash string
	Code         string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// Expired reports whether the code can no longer be used at the given time.
// A code expires exactly at ExpiresAt.
func (p PendingSignup) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
