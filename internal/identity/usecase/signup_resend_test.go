package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestSignupResend(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the code and resets the expiry", func(t *testing.T) {
		fx := newFixture(t)
		signupAda(t, fx)
		oldCode := fx.mailer.lastSent(t).code

		fx.clock.now = fx.clock.now.Add(5 * time.Minute)

		if err := fx.uc.SignupResend(ctx, SignupResendInput{Email: "ada@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resent := fx.mailer.lastSent(t)
		newCode := resent.code
		if newCode == oldCode {
			t.Fatal("resend must generate a fresh code")
		}
		if resent.name != "Ada Lovelace" {
			t.Fatalf("resend greeting name = %q, want the stored name", resent.name)
		}

		pending := fx.repo.pendings["ada@example.com"]
		if pending.Code != newCode {
			t.Fatalf("stored code = %q, want %q", pending.Code, newCode)
		}
		if want := fx.clock.now.Add(10 * time.Minute); !pending.ExpiresAt.Equal(want) {
			t.Fatalf("expiry = %v, want %v", pending.ExpiresAt, want)
		}

		// The superseded code stops working immediately.
		_, err := fx.uc.SignupVerify(ctx, SignupVerifyInput{Email: "ada@example.com", Code: oldCode})
		gerr := assertGoError(t, err)
		if gerr.Msg() != "Invalid or expired OTP" {
			t.Fatalf("old code: message = %q", gerr.Msg())
		}

		if _, err := fx.uc.SignupVerify(ctx, SignupVerifyInput{Email: "ada@example.com", Code: newCode}); err != nil {
			t.Fatalf("new code: %v", err)
		}
	})

	t.Run("rejects requests inside the cooldown window", func(t *testing.T) {
		fx := newFixture(t)
		signupAda(t, fx)
		fx.throttle.allow = false

		err := fx.uc.SignupResend(ctx, SignupResendInput{Email: "ada@example.com"})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want 429", gerr.StatusCode())
		}
		if gerr.Msg() != "Please wait before requesting another code" {
			t.Fatalf("message = %q", gerr.Msg())
		}
		if fx.mailer.calls != 1 {
			t.Fatal("no mail should be sent while throttled")
		}
	})

	t.Run("throttles before touching state", func(t *testing.T) {
		fx := newFixture(t)
		fx.throttle.allow = false

		err := fx.uc.SignupResend(ctx, SignupResendInput{Email: "ghost@example.com"})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want 429 even without a pending signup", gerr.StatusCode())
		}
	})

	t.Run("fails when no signup is pending", func(t *testing.T) {
		fx := newFixture(t)

		err := fx.uc.SignupResend(ctx, SignupResendInput{Email: "ghost@example.com"})

		gerr := assertGoError(t, err)
		if gerr.Msg() != "No pending verification found for this email" {
			t.Fatalf("message = %q", gerr.Msg())
		}
		if gerr.StatusCode() != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", gerr.StatusCode())
		}
	})

	t.Run("keys the cooldown by normalized email", func(t *testing.T) {
		fx := newFixture(t)
		signupAda(t, fx)

		if err := fx.uc.SignupResend(ctx, SignupResendInput{Email: "  Ada@Example.COM "}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fx.throttle.keys) == 0 || fx.throttle.keys[0] != "signup_resend:ada@example.com" {
			t.Fatalf("throttle keys = %v", fx.throttle.keys)
		}
	})
}
