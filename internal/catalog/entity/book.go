package entity

import "time"

// Book is a catalog entry owned by a single user.
type Book struct {
	ID        int64
	UserID    int64
	Title     string
	Author    string
	Genre     string
	CoverKey  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook carries the fields required to add a book.
type NewBook struct {
	ID     int64
	UserID int64
	Title  string
	Author string
	Genre  string
}
