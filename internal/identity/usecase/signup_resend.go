package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"bookrack/internal/pkg/goerror"
)

// SignupResendInput requests a fresh verification code.
type SignupResendInput struct {
	Email string `validate:"required,email"`
}

// SignupResend replaces the code and expiry of an existing pending signup and
// emails the new code. The previous code stops working immediately.
//
// Resends are throttled per email; a request inside the cooldown window is
// rejected before any state changes.
func (s *Usecase) SignupResend(ctx context.Context, in SignupResendInput) error {
	ctx, span := s.startSpan(ctx, "SignupResend")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	cooldown := s.cfg.GetSecond("modules.identity.resend_cooldown_seconds")
	ok, err := s.throttle.Acquire(ctx, "signup_resend:"+in.Email, cooldown)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check resend cooldown", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}
	if !ok {
		return goerror.NewBusiness("Please wait before requesting another code", goerror.CodeTooManyRequest)
	}

	pending, err := s.repoDB.GetPendingSignupByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("No pending verification found for this email", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get pending signup", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	code := s.codes.Generate()
	expiresAt := s.clock.Now().Add(s.cfg.GetMinute("modules.identity.signup_code_ttl_minutes"))

	if err := s.repoDB.ResetPendingSignupCode(ctx, pending.Email, code, expiresAt); err != nil {
		slog.ErrorContext(ctx, "failed to repo reset pending signup code", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.mailer.SendVerificationCode(ctx, in.Email, pending.FullName, code); err != nil {
		slog.ErrorContext(ctx, "failed to send verification code", "email", in.Email, "error", err)
		return goerror.NewServer(err, "Failed to send OTP email. Please try again.")
	}

	return nil
}
