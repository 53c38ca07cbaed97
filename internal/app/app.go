package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"

	"bookrack/internal/pkg/clock"
	"bookrack/internal/pkg/config"
	"bookrack/internal/pkg/goroutine"
	"bookrack/internal/pkg/hash"
	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/jwt"
	"bookrack/internal/pkg/mail"
	"bookrack/internal/pkg/messaging"
	"bookrack/internal/pkg/otp"
	"bookrack/internal/pkg/router"
	"bookrack/internal/pkg/storage"
	"bookrack/internal/pkg/throttle"
	"bookrack/internal/pkg/uid"
	"bookrack/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	codes     otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn      *pgxpool.Pool
	cacheConn   *redis.Client
	throttle    throttle.Throttle
	mail        mail.Mail
	messaging   messaging.Messaging
	storage     storage.Storage
	oauthGoogle *oauth2.Config

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initOAuthGoogle()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
