package catalog

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"bookrack/internal/catalog/inbound"
	"bookrack/internal/catalog/outbound/db"
	"bookrack/internal/catalog/usecase"
	"bookrack/internal/pkg/clock"
	"bookrack/internal/pkg/config"
	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/router"
	"bookrack/internal/pkg/storage"
	"bookrack/internal/pkg/uid"
	"bookrack/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Storage    storage.Storage            `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbCatalog := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbCatalog,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Storage:    dep.Storage,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
