package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"bookrack/internal/identity/entity"
	"bookrack/internal/pkg/goerror"
)

// SignupInput begins email verification for a new account.
type SignupInput struct {
	FullName string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

// Signup stores a pending signup and emails a 6-digit verification code.
//
// An unverified signup for the same email is replaced wholesale: new password
// hash, new code, new expiry. A verified account causes a conflict error.
func (s *Usecase) Signup(ctx context.Context, in SignupInput) error {
	ctx, span := s.startSpan(ctx, "Signup")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return goerror.NewBusiness("User already exists with this email", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	code := s.codes.Generate()
	now := s.clock.Now()
	pending := entity.PendingSignup{
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: string(hashedPassword),
		Code:         code,
		ExpiresAt:    now.Add(s.cfg.GetMinute("modules.identity.signup_code_ttl_minutes")),
		CreatedAt:    now,
	}

	if err := s.repoDB.SavePendingSignup(ctx, pending); err != nil {
		slog.ErrorContext(ctx, "failed to repo save pending signup", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	// The pending row stays in place on delivery failure so a later resend
	// can pick it up.
	if err := s.mailer.SendVerificationCode(ctx, in.Email, in.FullName, code); err != nil {
		slog.ErrorContext(ctx, "failed to send verification code", "email", in.Email, "error", err)
		return goerror.NewServer(err, "Failed to send OTP email. Please try again.")
	}

	return nil
}
