package inbound

import (
	"bookrack/internal/identity/usecase"
	"bookrack/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for signup, verification, and login.
type HTTPEndpoint struct {
	uc uc
}

// Signup starts email verification for a new account and sends the code.
func (h *HTTPEndpoint) Signup(r *router.Request) (any, error) {
	var req SignupRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Signup(r.Context(), usecase.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return nil, err
	}

	return &SignupResponse{}, nil
}

// SignupResend emails a fresh verification code for a pending signup.
func (h *HTTPEndpoint) SignupResend(r *router.Request) (any, error) {
	var req SignupResendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.SignupResend(r.Context(), usecase.SignupResendInput{
		Email: req.Email,
	}); err != nil {
		return nil, err
	}

	return &SignupResendResponse{}, nil
}

// SignupVerify checks the emailed code and activates the account.
func (h *HTTPEndpoint) SignupVerify(r *router.Request) (any, error) {
	var req SignupVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.SignupVerify(r.Context(), usecase.SignupVerifyInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return nil, err
	}

	return &SignupVerifyResponse{
		Email:       resp.Email,
		AccessToken: resp.AccessToken,
	}, nil
}

// Login authenticates with email and password.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Email:       resp.Email,
		AccessToken: resp.AccessToken,
	}, nil
}

// GoogleAuthURL returns the Google consent-screen URL.
func (h *HTTPEndpoint) GoogleAuthURL(r *router.Request) (any, error) {
	resp, err := h.uc.GoogleAuthURL(r.Context())
	if err != nil {
		return nil, err
	}

	return &GoogleAuthURLResponse{URL: resp.URL}, nil
}

// GoogleCallback completes the OAuth flow and issues an access token.
func (h *HTTPEndpoint) GoogleCallback(r *router.Request) (any, error) {
	resp, err := h.uc.GoogleCallback(r.Context(), usecase.GoogleCallbackInput{
		State: r.GetQuery("state"),
		Code:  r.GetQuery("code"),
	})
	if err != nil {
		return nil, err
	}

	return &GoogleCallbackResponse{
		Email:       resp.Email,
		AccessToken: resp.AccessToken,
	}, nil
}
