package inbound

import "time"

type BookResponse struct {
	ID        int64     `json:"id,string"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre"`
	CoverURL  string    `json:"cover_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type BookListResponse struct {
	Books []BookResponse `json:"books"`
}

type BookCreateRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

type BookCreateResponse struct {
	ID     int64  `json:"id,string"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

func (BookCreateResponse) StatusCode() int {
	return 201
}

func (BookCreateResponse) Message() string {
	return "Book added to your catalog."
}

type BookCoverUploadResponse struct {
	CoverURL string `json:"cover_url,omitempty"`
}

func (BookCoverUploadResponse) Message() string {
	return "Cover uploaded."
}
