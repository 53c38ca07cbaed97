package usecase

import (
	"context"
	"log/slog"

	"github.com/sethvargo/go-retry"
)

// ConsumeUserVerifiedInput is the payload of a user verification event.
type ConsumeUserVerifiedInput struct {
	UserID   int64  `validate:"required,gt=0"`
	Email    string `validate:"required,email"`
	FullName string `validate:"required"`
}

// ConsumeUserVerified sends the welcome email for a freshly verified
// account. Delivery happens off the request path, so transient failures are
// retried with backoff before giving up.
func (s *Usecase) ConsumeUserVerified(ctx context.Context, in ConsumeUserVerifiedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserVerified")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "validation failed", "error", err)
		return nil
	}

	backoff := retry.WithMaxRetries(
		uint64(s.cfg.GetInt64("modules.notification.welcome_email_max_retries")),
		retry.NewExponential(s.cfg.GetSecond("modules.notification.welcome_email_retry_base_seconds")),
	)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.repoMail.SendWelcome(ctx, in.Email, in.FullName); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to send welcome email", "user_id", in.UserID, "error", err)
		return err
	}

	return nil
}
