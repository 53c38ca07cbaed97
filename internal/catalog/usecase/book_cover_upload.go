package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"bookrack/internal/pkg/goerror"
)

// BookCoverUploadInput streams a cover image for one of the caller's books.
type BookCoverUploadInput struct {
	BookID      int64
	ContentType string
	File        io.Reader
}

// BookCoverUploadOutput carries a presigned URL for the freshly stored cover.
type BookCoverUploadOutput struct {
	CoverURL string
}

// BookCoverUpload stores the image in object storage under a per-book key
// and records the key on the book. Re-uploading overwrites the previous
// cover in place.
func (s *Usecase) BookCoverUpload(ctx context.Context, in BookCoverUploadInput) (*BookCoverUploadOutput, error) {
	ctx, span := s.startSpan(ctx, "BookCoverUpload")
	defer span.End()

	userID, err := s.authenticatedUserID(ctx)
	if err != nil {
		return nil, err
	}

	if in.File == nil {
		return nil, goerror.NewInvalidFormat("Cover file is required")
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return nil, goerror.NewInvalidFormat("Cover must be an image")
	}

	book, err := s.repoDB.GetBookByID(ctx, in.BookID)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Book not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get book", "book_id", in.BookID, "error", err)
		return nil, goerror.NewServer(err)
	}
	if book.UserID != userID {
		return nil, goerror.NewBusiness("Book not found", goerror.CodeNotFound)
	}

	maxBytes := s.cfg.GetInt64("modules.catalog.cover_max_bytes")
	limited := io.LimitReader(in.File, maxBytes+1)

	key := fmt.Sprintf("covers/%d", book.ID)
	obj, err := s.storage.Upload(ctx, key, in.ContentType, -1, limited)
	if err != nil {
		slog.ErrorContext(ctx, "failed to upload cover", "book_id", book.ID, "error", err)
		return nil, goerror.NewServer(err)
	}
	if obj.Size > maxBytes {
		if err := s.storage.Delete(ctx, key); err != nil {
			slog.WarnContext(ctx, "failed to delete oversized cover", "book_id", book.ID, "error", err)
		}
		return nil, goerror.NewInvalidFormat("Cover image is too large")
	}

	if err := s.repoDB.UpdateBookCover(ctx, book.ID, userID, key); err != nil {
		slog.ErrorContext(ctx, "failed to repo update book cover", "book_id", book.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	url, err := s.storage.PresignedURL(ctx, key, s.cfg.GetMinute("modules.catalog.cover_url_ttl_minutes"))
	if err != nil {
		slog.WarnContext(ctx, "failed to presign cover url", "book_id", book.ID, "error", err)
		return &BookCoverUploadOutput{}, nil
	}

	return &BookCoverUploadOutput{CoverURL: url}, nil
}
