package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"bookrack/internal/identity/entity"
)

func (s *DB) GetPendingSignupByEmail(ctx context.Context, email string) (pending *entity.PendingSignup, err error) {
	ctx, span := s.startSpan(ctx, "GetPendingSignupByEmail")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT email, full_name, password_hash, code, expires_at, created_at
		FROM pending_signups
		WHERE email = $1`

	var p entity.PendingSignup
	err = s.conn.QueryRow(ctx, query, email).Scan(
		&p.Email, &p.FullName, &p.PasswordHash, &p.Code, &p.ExpiresAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &p, nil
}

func (s *DB) SavePendingSignup(ctx context.Context, in entity.PendingSignup) (err error) {
	ctx, span := s.startSpan(ctx, "SavePendingSignup")
	defer func() { s.endSpan(span, err) }()

	// One row per email: a repeated signup replaces the previous attempt
	// atomically instead of delete-then-insert.
	const query = `
		INSERT INTO pending_signups (email, full_name, password_hash, code, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			password_hash = EXCLUDED.password_hash,
			code = EXCLUDED.code,
			expires_at = EXCLUDED.expires_at,
			created_at = EXCLUDED.created_at`

	_, err = s.conn.Exec(ctx, query,
		in.Email, in.FullName, in.PasswordHash, in.Code, in.ExpiresAt, in.CreatedAt,
	)
	return s.mapError(err)
}

func (s *DB) ResetPendingSignupCode(ctx context.Context, email, code string, expiresAt time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "ResetPendingSignupCode")
	defer func() { s.endSpan(span, err) }()

	const query = `
		UPDATE pending_signups
		SET code = $2, expires_at = $3
		WHERE email = $1`

	tag, err := s.conn.Exec(ctx, query, email, code, expiresAt)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return s.mapError(pgx.ErrNoRows)
	}
	return nil
}

func (s *DB) PromotePendingSignup(ctx context.Context, in entity.NewUser) (err error) {
	ctx, span := s.startSpan(ctx, "PromotePendingSignup")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	const insertUser = `
		INSERT INTO users (id, email, full_name, password_hash, provider)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := tx.Exec(ctx, insertUser,
		in.ID, in.Email, in.FullName, in.PasswordHash, in.Provider,
	); err != nil {
		return s.mapError(err)
	}

	// Deleting the pending row in the same transaction makes the code
	// single-use even under concurrent verification attempts.
	const deletePending = `DELETE FROM pending_signups WHERE email = $1`

	if _, err := tx.Exec(ctx, deletePending, in.Email); err != nil {
		return s.mapError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}
