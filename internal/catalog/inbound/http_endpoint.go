package inbound

import (
	"github.com/samber/lo"

	"bookrack/internal/catalog/usecase"
	"bookrack/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the book catalog.
type HTTPEndpoint struct {
	uc uc
}

// BookList returns the caller's books, newest first.
func (h *HTTPEndpoint) BookList(r *router.Request) (any, error) {
	resp, err := h.uc.BookList(r.Context())
	if err != nil {
		return nil, err
	}

	return &BookListResponse{
		Books: lo.Map(resp.Books, func(b usecase.BookItem, _ int) BookResponse {
			return BookResponse{
				ID:        b.ID,
				Title:     b.Title,
				Author:    b.Author,
				Genre:     b.Genre,
				CoverURL:  b.CoverURL,
				CreatedAt: b.CreatedAt,
			}
		}),
	}, nil
}

// BookCreate adds a book to the caller's catalog.
func (h *HTTPEndpoint) BookCreate(r *router.Request) (any, error) {
	var req BookCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.BookCreate(r.Context(), usecase.BookCreateInput{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
	})
	if err != nil {
		return nil, err
	}

	return &BookCreateResponse{
		ID:     resp.ID,
		Title:  resp.Title,
		Author: resp.Author,
		Genre:  resp.Genre,
	}, nil
}

// BookDelete removes a book from the caller's catalog.
func (h *HTTPEndpoint) BookDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.BookDelete(r.Context(), usecase.BookDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}

// BookCoverUpload stores a cover image for one of the caller's books.
func (h *HTTPEndpoint) BookCoverUpload(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	file, err := r.StreamSingleFile("cover")
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	resp, err := h.uc.BookCoverUpload(r.Context(), usecase.BookCoverUploadInput{
		BookID:      id,
		ContentType: file.ContentType,
		File:        file,
	})
	if err != nil {
		return nil, err
	}

	return &BookCoverUploadResponse{CoverURL: resp.CoverURL}, nil
}
