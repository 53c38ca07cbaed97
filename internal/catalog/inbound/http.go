package inbound

import (
	"context"

	"bookrack/internal/catalog/usecase"
	"bookrack/internal/pkg/router"
)

type uc interface {
	BookList(ctx context.Context) (*usecase.BookListOutput, error)
	BookCreate(ctx context.Context, in usecase.BookCreateInput) (*usecase.BookCreateOutput, error)
	BookDelete(ctx context.Context, in usecase.BookDeleteInput) error
	BookCoverUpload(ctx context.Context, in usecase.BookCoverUploadInput) (*usecase.BookCoverUploadOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// All routes need authentication.
	r.GET("/api/v1/books", end.BookList)
	r.POST("/api/v1/books", end.BookCreate)
	r.DELETE("/api/v1/books/:id", end.BookDelete)
	r.PUT("/api/v1/books/:id/cover", end.BookCoverUpload)
}
