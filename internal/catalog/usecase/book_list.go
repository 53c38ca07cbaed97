package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"bookrack/internal/catalog/entity"
	"bookrack/internal/pkg/goerror"
)

// BookItem is one catalog entry in a listing.
type BookItem struct {
	ID        int64
	Title     string
	Author    string
	Genre     string
	CoverURL  string
	CreatedAt time.Time
}

// BookListOutput is the caller's full catalog, newest first.
type BookListOutput struct {
	Books []BookItem
}

// BookList returns the authenticated user's books. Cover URLs are
// presigned and short-lived.
func (s *Usecase) BookList(ctx context.Context) (*BookListOutput, error) {
	ctx, span := s.startSpan(ctx, "BookList")
	defer span.End()

	userID, err := s.authenticatedUserID(ctx)
	if err != nil {
		return nil, err
	}

	books, err := s.repoDB.ListBooksByUser(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list books", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	coverTTL := s.cfg.GetMinute("modules.catalog.cover_url_ttl_minutes")

	items := lo.Map(books, func(b entity.Book, _ int) BookItem {
		item := BookItem{
			ID:        b.ID,
			Title:     b.Title,
			Author:    b.Author,
			Genre:     b.Genre,
			CreatedAt: b.CreatedAt,
		}
		if b.CoverKey != "" {
			url, err := s.storage.PresignedURL(ctx, b.CoverKey, coverTTL)
			if err != nil {
				slog.WarnContext(ctx, "failed to presign cover url", "book_id", b.ID, "error", err)
			} else {
				item.CoverURL = url
			}
		}
		return item
	})

	return &BookListOutput{Books: items}, nil
}
