package inbound

import (
	"context"

	"bookrack/internal/identity/usecase"
	"bookrack/internal/pkg/router"
)

type uc interface {
	Signup(ctx context.Context, in usecase.SignupInput) error
	SignupResend(ctx context.Context, in usecase.SignupResendInput) error
	SignupVerify(ctx context.Context, in usecase.SignupVerifyInput) (*usecase.SignupVerifyOutput, error)

	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)

	GoogleAuthURL(ctx context.Context) (*usecase.GoogleAuthURLOutput, error)
	GoogleCallback(ctx context.Context, in usecase.GoogleCallbackInput) (*usecase.GoogleCallbackOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/auth/signup", end.Signup)
	r.POST("/api/v1/auth/signup/resend", end.SignupResend)
	r.POST("/api/v1/auth/signup/verify", end.SignupVerify)
	r.POST("/api/v1/auth/login", end.Login)

	r.GET("/api/v1/auth/google", end.GoogleAuthURL)
	r.GET("/api/v1/auth/google/callback", end.GoogleCallback)
}
