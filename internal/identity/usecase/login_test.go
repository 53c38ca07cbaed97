package usecase

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"bookrack/internal/identity/entity"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	registerAda := func(t *testing.T, fx *fixture) *SignupVerifyOutput {
		t.Helper()

		signupAda(t, fx)
		out, err := fx.uc.SignupVerify(ctx, SignupVerifyInput{
			Email: "ada@example.com",
			Code:  fx.mailer.lastSent(t).code,
		})
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		return out
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		fx := newFixture(t)
		created := registerAda(t, fx)

		out, err := fx.uc.Login(ctx, LoginInput{Email: "Ada@Example.com", Password: "secret123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.UserID != created.UserID {
			t.Fatalf("user id = %d, want %d", out.UserID, created.UserID)
		}

		claims, err := fx.jwt.Verify(out.AccessToken)
		if err != nil {
			t.Fatalf("access token does not verify: %v", err)
		}
		if claims.Subject != strconv.FormatInt(out.UserID, 10) {
			t.Fatalf("token subject = %q", claims.Subject)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		fx := newFixture(t)
		registerAda(t, fx)

		_, err := fx.uc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "wrong-pass"})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", gerr.StatusCode())
		}
		if gerr.Msg() != "Email or password is incorrect" {
			t.Fatalf("message = %q", gerr.Msg())
		}
	})

	t.Run("rejects an unknown email with the same message", func(t *testing.T) {
		fx := newFixture(t)

		_, err := fx.uc.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "secret123"})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", gerr.StatusCode())
		}
		if gerr.Msg() != "Email or password is incorrect" {
			t.Fatalf("message = %q", gerr.Msg())
		}
	})

	t.Run("rejects password login for oauth accounts", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.users["ada@example.com"] = &entity.User{
			ID:       7,
			Email:    "ada@example.com",
			Provider: entity.ProviderGoogle,
		}

		_, err := fx.uc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "secret123"})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", gerr.StatusCode())
		}
	})

	t.Run("signup alone does not allow login", func(t *testing.T) {
		fx := newFixture(t)
		signupAda(t, fx)

		_, err := fx.uc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "secret123"})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401 before verification", gerr.StatusCode())
		}
	})
}
