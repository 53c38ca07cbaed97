package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"bookrack/internal/identity/entity"
	"bookrack/internal/pkg/goerror"
)

// SignupVerifyInput carries the emailed code back to the server.
type SignupVerifyInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6,numeric"`
}

// SignupVerifyOutput is returned on successful verification.
type SignupVerifyOutput struct {
	UserID      int64
	Email       string
	AccessToken string
}

// SignupVerify checks the submitted code against the pending signup and, on
// success, creates the account and deletes the pending row in one
// transaction. A code can therefore be used at most once; a wrong or expired
// code leaves the pending signup untouched.
func (s *Usecase) SignupVerify(ctx context.Context, in SignupVerifyInput) (*SignupVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "SignupVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	// A missing pending row gets the same answer as a wrong code, so the
	// response does not reveal whether a signup is in progress.
	pending, err := s.repoDB.GetPendingSignupByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewInvalidFormat("Invalid or expired OTP")
		}
		slog.ErrorContext(ctx, "failed to repo get pending signup", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	codeMatch := subtle.ConstantTimeCompare([]byte(pending.Code), []byte(in.Code)) == 1
	if !codeMatch || pending.Expired(s.clock.Now()) {
		return nil, goerror.NewInvalidFormat("Invalid or expired OTP")
	}

	user := &entity.User{
		ID:           s.uid.Generate(),
		Email:        pending.Email,
		FullName:     pending.FullName,
		PasswordHash: pending.PasswordHash,
		Provider:     entity.ProviderLocal,
	}

	if err := s.repoDB.PromotePendingSignup(ctx, entity.NewUser{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: user.PasswordHash,
		Provider:     user.Provider,
	}); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("User already exists with this email", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo promote pending signup", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.issueAccessToken(user)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue access token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishUserVerified(ctx, UserVerifiedEvent{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user verified", "user_id", user.ID, "error", err)
	}

	return &SignupVerifyOutput{
		UserID:      user.ID,
		Email:       user.Email,
		AccessToken: token,
	}, nil
}
