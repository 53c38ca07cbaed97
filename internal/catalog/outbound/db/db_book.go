package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"bookrack/internal/catalog/entity"
)

func (s *DB) ListBooksByUser(ctx context.Context, userID int64) (books []entity.Book, err error) {
	ctx, span := s.startSpan(ctx, "ListBooksByUser")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, user_id, title, author, genre, cover_key, created_at, updated_at
		FROM books
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.conn.Query(ctx, query, userID)
	if err != nil {
		return nil, s.mapError(err)
	}

	books, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Book, error) {
		var b entity.Book
		err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.Genre, &b.CoverKey, &b.CreatedAt, &b.UpdatedAt)
		return b, err
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return books, nil
}

func (s *DB) GetBookByID(ctx context.Context, id int64) (book *entity.Book, err error) {
	ctx, span := s.startSpan(ctx, "GetBookByID")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, user_id, title, author, genre, cover_key, created_at, updated_at
		FROM books
		WHERE id = $1`

	var b entity.Book
	err = s.conn.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.UserID, &b.Title, &b.Author, &b.Genre, &b.CoverKey, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &b, nil
}

func (s *DB) CreateBook(ctx context.Context, in entity.NewBook) (book *entity.Book, err error) {
	ctx, span := s.startSpan(ctx, "CreateBook")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO books (id, user_id, title, author, genre, cover_key)
		VALUES ($1, $2, $3, $4, $5, '')
		RETURNING id, user_id, title, author, genre, cover_key, created_at, updated_at`

	var b entity.Book
	err = s.conn.QueryRow(ctx, query, in.ID, in.UserID, in.Title, in.Author, in.Genre).Scan(
		&b.ID, &b.UserID, &b.Title, &b.Author, &b.Genre, &b.CoverKey, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &b, nil
}

func (s *DB) DeleteBook(ctx context.Context, id, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteBook")
	defer func() { s.endSpan(span, err) }()

	const query = `DELETE FROM books WHERE id = $1 AND user_id = $2`

	tag, err := s.conn.Exec(ctx, query, id, userID)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return s.mapError(pgx.ErrNoRows)
	}
	return nil
}

func (s *DB) UpdateBookCover(ctx context.Context, id, userID int64, coverKey string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateBookCover")
	defer func() { s.endSpan(span, err) }()

	const query = `
		UPDATE books
		SET cover_key = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2`

	tag, err := s.conn.Exec(ctx, query, id, userID, coverKey)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return s.mapError(pgx.ErrNoRows)
	}
	return nil
}
