package usecase

import (
	"context"
	"log/slog"
	"strings"

	"bookrack/internal/catalog/entity"
	"bookrack/internal/pkg/goerror"
)

// BookCreateInput adds a book to the caller's catalog.
type BookCreateInput struct {
	Title  string `validate:"required,min=1,max=255"`
	Author string `validate:"required,min=1,max=255"`
	Genre  string `validate:"required,min=1,max=100"`
}

// BookCreateOutput is the created entry.
type BookCreateOutput struct {
	ID     int64
	Title  string
	Author string
	Genre  string
}

// BookCreate stores a new book owned by the authenticated user.
func (s *Usecase) BookCreate(ctx context.Context, in BookCreateInput) (*BookCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "BookCreate")
	defer span.End()

	userID, err := s.authenticatedUserID(ctx)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Genre = strings.TrimSpace(in.Genre)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	book, err := s.repoDB.CreateBook(ctx, entity.NewBook{
		ID:     s.uid.Generate(),
		UserID: userID,
		Title:  in.Title,
		Author: in.Author,
		Genre:  in.Genre,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create book", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BookCreateOutput{
		ID:     book.ID,
		Title:  book.Title,
		Author: book.Author,
		Genre:  book.Genre,
	}, nil
}
