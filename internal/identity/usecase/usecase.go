package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"

	"bookrack/internal/identity/entity"
	"bookrack/internal/pkg/clock"
	"bookrack/internal/pkg/config"
	"bookrack/internal/pkg/hash"
	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/jwt"
	"bookrack/internal/pkg/otp"
	"bookrack/internal/pkg/throttle"
	"bookrack/internal/pkg/uid"
	"bookrack/internal/pkg/validator"
)

// UserVerifiedEvent is emitted after a signup code is verified and the
// account exists.
type UserVerifiedEvent struct {
	UserID   int64
	Email    string
	FullName string
}

type repoMessaging interface {
	PublishUserVerified(ctx context.Context, msg UserVerifiedEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetPendingSignupByEmail(ctx context.Context, email string) (*entity.PendingSignup, error)

	// SavePendingSignup inserts or fully replaces the pending signup for its
	// email, including password hash, code, and expiry.
	SavePendingSignup(ctx context.Context, in entity.PendingSignup) error

	// ResetPendingSignupCode replaces the code and expiry of an existing
	// pending signup.
	ResetPendingSignupCode(ctx context.Context, email, code string, expiresAt time.Time) error

	// PromotePendingSignup creates the user and removes the pending signup
	// row in one transaction.
	PromotePendingSignup(ctx context.Context, in entity.NewUser) error

	// UpsertOAuthUser creates the user on first OAuth sign-in and returns the
	// stored account on subsequent ones.
	UpsertOAuthUser(ctx context.Context, in entity.NewUser) (*entity.User, error)
}

type mailer interface {
	SendVerificationCode(ctx context.Context, email, fullName, code string) error
}

// Usecase implements the identity operations: signup with email
// verification, login, and Google OAuth sign-in.
type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	mailer        mailer
	throttle      throttle.Throttle
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	hmac          hash.Hash
	codes         otp.Generator
	uid           uid.NumberID
	nonce         uid.StringID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	oauthGoogle   *oauth2.Config
}

// Dependency lists everything Usecase needs; all fields are required unless
// noted otherwise.
type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Mailer        mailer
	Throttle      throttle.Throttle
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	HMAC          hash.Hash
	Codes         otp.Generator
	UID           uid.NumberID
	Nonce         uid.StringID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	// OAuthGoogle may be nil when Google sign-in is disabled.
	OAuthGoogle *oauth2.Config
}

// New constructs the identity usecase.
func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		mailer:        dep.Mailer,
		throttle:      dep.Throttle,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		hmac:          dep.HMAC,
		codes:         dep.Codes,
		uid:           dep.UID,
		nonce:         dep.Nonce,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		oauthGoogle:   dep.OAuthGoogle,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}
