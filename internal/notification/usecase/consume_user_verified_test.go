package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"bookrack/internal/pkg/config"
	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/validator"
)

type fakeRepoMail struct {
	mu       sync.Mutex
	sent     []string
	failures int
	calls    int
}

func (f *fakeRepoMail) SendWelcome(_ context.Context, email, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.calls <= f.failures {
		return errors.New("smtp connection refused")
	}
	f.sent = append(f.sent, email)
	return nil
}

func newTestUsecase(t *testing.T, repoMail *fakeRepoMail, maxRetries int) *Usecase {
	t.Helper()

	yaml := fmt.Sprintf(`
modules:
  notification:
    welcome_email_max_retries: %d
    welcome_email_retry_base_seconds: 1
`, maxRetries)

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	return NewNotification(Dependency{
		RepoMail:   repoMail,
		Validator:  v10,
		Config:     cfg,
		Instrument: instrument.NewNoop(),
	})
}

func TestConsumeUserVerified(t *testing.T) {
	ctx := context.Background()

	validInput := ConsumeUserVerifiedInput{
		UserID:   42,
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
	}

	t.Run("sends the welcome email", func(t *testing.T) {
		repoMail := &fakeRepoMail{}
		uc := newTestUsecase(t, repoMail, 0)

		if err := uc.ConsumeUserVerified(ctx, validInput); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repoMail.sent) != 1 || repoMail.sent[0] != "ada@example.com" {
			t.Fatalf("sent = %v", repoMail.sent)
		}
	})

	t.Run("retries a transient delivery failure", func(t *testing.T) {
		repoMail := &fakeRepoMail{failures: 1}
		uc := newTestUsecase(t, repoMail, 2)

		if err := uc.ConsumeUserVerified(ctx, validInput); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repoMail.calls != 2 {
			t.Fatalf("calls = %d, want 2", repoMail.calls)
		}
		if len(repoMail.sent) != 1 {
			t.Fatalf("sent = %v", repoMail.sent)
		}
	})

	t.Run("returns the error when all attempts fail", func(t *testing.T) {
		repoMail := &fakeRepoMail{failures: 10}
		uc := newTestUsecase(t, repoMail, 0)

		if err := uc.ConsumeUserVerified(ctx, validInput); err == nil {
			t.Fatal("expected an error after exhausting retries")
		}
		if len(repoMail.sent) != 0 {
			t.Fatalf("sent = %v, want none", repoMail.sent)
		}
	})

	t.Run("drops an invalid payload without error", func(t *testing.T) {
		repoMail := &fakeRepoMail{}
		uc := newTestUsecase(t, repoMail, 0)

		err := uc.ConsumeUserVerified(ctx, ConsumeUserVerifiedInput{Email: "not-an-email"})
		if err != nil {
			t.Fatalf("invalid payloads must be acknowledged, got %v", err)
		}
		if repoMail.calls != 0 {
			t.Fatal("no mail should be sent for an invalid payload")
		}
	})
}
