package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/oauth2"

	"bookrack/internal/identity/inbound"
	"bookrack/internal/identity/outbound/db"
	"bookrack/internal/identity/outbound/mailer"
	"bookrack/internal/identity/outbound/mq"
	"bookrack/internal/identity/usecase"
	"bookrack/internal/pkg/clock"
	"bookrack/internal/pkg/config"
	"bookrack/internal/pkg/hash"
	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/jwt"
	"bookrack/internal/pkg/mail"
	"bookrack/internal/pkg/messaging"
	"bookrack/internal/pkg/otp"
	"bookrack/internal/pkg/router"
	"bookrack/internal/pkg/throttle"
	"bookrack/internal/pkg/uid"
	"bookrack/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Throttle   throttle.Throttle          `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Nonce      uid.StringID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Codes      otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
	// OAuthGoogle may be nil when Google sign-in is disabled.
	OAuthGoogle *oauth2.Config
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	repoMail := mailer.NewMailer(dep.Mail, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoMessaging: repoMsg,
		Mailer:        repoMail,
		Throttle:      dep.Throttle,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		HMAC:          dep.HMAC,
		Codes:         dep.Codes,
		UID:           dep.UID,
		Nonce:         dep.Nonce,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		OAuthGoogle:   dep.OAuthGoogle,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
