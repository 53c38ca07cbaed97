package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"bookrack/internal/identity/entity"
)

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("stores pending signup and emails the code", func(t *testing.T) {
		fx := newFixture(t)

		err := fx.uc.Signup(ctx, SignupInput{
			FullName: "Ada Lovelace",
			Email:    "Ada@Example.com",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		pending, ok := fx.repo.pendings["ada@example.com"]
		if !ok {
			t.Fatal("pending signup was not stored")
		}
		if pending.Code != "123456" {
			t.Fatalf("pending code = %q, want %q", pending.Code, "123456")
		}
		if want := fx.clock.now.Add(10 * time.Minute); !pending.ExpiresAt.Equal(want) {
			t.Fatalf("pending expiry = %v, want %v", pending.ExpiresAt, want)
		}
		if pending.PasswordHash == "secret123" || pending.PasswordHash == "" {
			t.Fatal("password was not hashed")
		}

		sent := fx.mailer.lastSent(t)
		if sent.email != "ada@example.com" || sent.code != "123456" {
			t.Fatalf("mail sent to %q with code %q", sent.email, sent.code)
		}
		if sent.name != "Ada Lovelace" {
			t.Fatalf("mail greeting name = %q, want %q", sent.name, "Ada Lovelace")
		}
	})

	t.Run("rejects an already registered email", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.users["ada@example.com"] = &entity.User{ID: 1, Email: "ada@example.com"}

		err := fx.uc.Signup(ctx, SignupInput{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "secret123",
		})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusConflict {
			t.Fatalf("status = %d, want %d", gerr.StatusCode(), http.StatusConflict)
		}
		if gerr.Msg() != "User already exists with this email" {
			t.Fatalf("message = %q", gerr.Msg())
		}
	})

	t.Run("replaces a previous unverified signup wholesale", func(t *testing.T) {
		fx := newFixture(t)

		if err := fx.uc.Signup(ctx, SignupInput{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "first-pass",
		}); err != nil {
			t.Fatalf("first signup: %v", err)
		}
		firstHash := fx.repo.pendings["ada@example.com"].PasswordHash

		if err := fx.uc.Signup(ctx, SignupInput{
			FullName: "Ada L",
			Email:    "ada@example.com",
			Password: "second-pass",
		}); err != nil {
			t.Fatalf("second signup: %v", err)
		}

		pending := fx.repo.pendings["ada@example.com"]
		if pending.Code != "654321" {
			t.Fatalf("code = %q, want the newly generated one", pending.Code)
		}
		if pending.PasswordHash == firstHash {
			t.Fatal("password hash was not replaced")
		}
		if pending.FullName != "Ada L" {
			t.Fatalf("full name = %q, want %q", pending.FullName, "Ada L")
		}
	})

	t.Run("keeps the pending row when email delivery fails", func(t *testing.T) {
		fx := newFixture(t)
		fx.mailer.fail = true

		err := fx.uc.Signup(ctx, SignupInput{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "secret123",
		})

		gerr := assertGoError(t, err)
		if gerr.Msg() != "Failed to send OTP email. Please try again." {
			t.Fatalf("message = %q", gerr.Msg())
		}
		if gerr.StatusCode() != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", gerr.StatusCode(), http.StatusInternalServerError)
		}
		if _, ok := fx.repo.pendings["ada@example.com"]; !ok {
			t.Fatal("pending row should survive a delivery failure")
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		fx := newFixture(t)

		tests := []SignupInput{
			{FullName: "Ada", Email: "not-an-email", Password: "secret123"},
			{FullName: "Ada", Email: "ada@example.com", Password: "short"},
			{FullName: "A", Email: "ada@example.com", Password: "secret123"},
			{FullName: "", Email: "", Password: ""},
		}

		for _, in := range tests {
			err := fx.uc.Signup(ctx, in)
			gerr := assertGoError(t, err)
			if gerr.StatusCode() != http.StatusUnprocessableEntity {
				t.Fatalf("input %+v: status = %d, want 422", in, gerr.StatusCode())
			}
		}

		if fx.mailer.calls != 0 {
			t.Fatal("no mail should be sent for invalid input")
		}
	})
}
