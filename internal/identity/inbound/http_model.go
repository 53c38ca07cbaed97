package inbound

type SignupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupResponse struct{}

func (SignupResponse) Message() string {
	return "OTP sent to your email. Please verify to complete registration."
}

type SignupResendRequest struct {
	Email string `json:"email"`
}

type SignupResendResponse struct{}

func (SignupResendResponse) Message() string {
	return "New OTP sent to your email."
}

type SignupVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type SignupVerifyResponse struct {
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

func (SignupVerifyResponse) Message() string {
	return "Email verified successfully. Account created."
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

type GoogleAuthURLResponse struct {
	URL string `json:"url"`
}

type GoogleCallbackResponse struct {
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}
