package usecase

import (
	"context"
	"errors"
	"log/slog"

	"bookrack/internal/pkg/goerror"
)

// BookDeleteInput removes a book from the caller's catalog.
type BookDeleteInput struct {
	ID int64 `validate:"required"`
}

// BookDelete deletes the book when it exists and belongs to the
// authenticated user; otherwise it reports not found. The stored cover, if
// any, is removed best-effort.
func (s *Usecase) BookDelete(ctx context.Context, in BookDeleteInput) error {
	ctx, span := s.startSpan(ctx, "BookDelete")
	defer span.End()

	userID, err := s.authenticatedUserID(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	book, err := s.repoDB.GetBookByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Book not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get book", "book_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}
	if book.UserID != userID {
		// Ownership is not revealed to other users.
		return goerror.NewBusiness("Book not found", goerror.CodeNotFound)
	}

	if err := s.repoDB.DeleteBook(ctx, in.ID, userID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete book", "book_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if book.CoverKey != "" {
		if err := s.storage.Delete(ctx, book.CoverKey); err != nil {
			slog.WarnContext(ctx, "failed to delete cover object", "book_id", in.ID, "error", err)
		}
	}

	return nil
}
