package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"bookrack/internal/pkg/goerror"
)

// LoginInput authenticates an existing account.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginOutput carries the issued access token.
type LoginOutput struct {
	UserID      int64
	Email       string
	AccessToken string
}

// Login verifies the password against the stored hash and issues an access
// token. Accounts created through OAuth carry no password and cannot log in
// this way.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Email or password is incorrect", goerror.CodeUnauthorized)
		}
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if user.PasswordHash == "" || !s.bcrypt.Verify(user.PasswordHash, in.Password) {
		return nil, goerror.NewBusiness("Email or password is incorrect", goerror.CodeUnauthorized)
	}

	token, err := s.issueAccessToken(user)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue access token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		UserID:      user.ID,
		Email:       user.Email,
		AccessToken: token,
	}, nil
}
