package app

import (
	"log/slog"
	"os"

	"bookrack/internal/catalog"
	"bookrack/internal/identity"
	"bookrack/internal/notification"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Messaging:   a.messaging,
			Mail:        a.mail,
			Throttle:    a.throttle,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			Nonce:       a.uuid,
			Bcrypt:      a.bcrypt,
			HMAC:        a.hmac,
			Codes:       a.codes,
			Clock:       a.clock,
			Validator:   a.validator,
			JWT:         a.jwt,
			OAuthGoogle: a.oauthGoogle,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.catalog.enabled") {
		if err := catalog.New(catalog.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Storage:    a.storage,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module catalog", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(a.ctx, notification.Dependency{
			Messaging:  a.messaging,
			Mail:       a.mail,
			Goroutine:  a.goroutine,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}
}
