package db

import (
	"context"

	"bookrack/internal/identity/entity"
)

func (s *DB) GetUserByEmail(ctx context.Context, email string) (user *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, email, full_name, password_hash, provider, created_at, updated_at
		FROM users
		WHERE email = $1`

	var u entity.User
	err = s.conn.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Provider, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &u, nil
}

func (s *DB) UpsertOAuthUser(ctx context.Context, in entity.NewUser) (user *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "UpsertOAuthUser")
	defer func() { s.endSpan(span, err) }()

	// On a repeated sign-in the insert conflicts and only refreshes the name,
	// returning the stored row with its original id and provider.
	const query = `
		INSERT INTO users (id, email, full_name, password_hash, provider)
		VALUES ($1, $2, $3, '', $4)
		ON CONFLICT (email) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			updated_at = now()
		RETURNING id, email, full_name, password_hash, provider, created_at, updated_at`

	var u entity.User
	err = s.conn.QueryRow(ctx, query, in.ID, in.Email, in.FullName, in.Provider).Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Provider, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &u, nil
}
