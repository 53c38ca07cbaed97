package usecase

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/trace"

	"bookrack/internal/catalog/entity"
	"bookrack/internal/pkg/clock"
	"bookrack/internal/pkg/config"
	"bookrack/internal/pkg/goerror"
	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/jwt"
	"bookrack/internal/pkg/storage"
	"bookrack/internal/pkg/uid"
	"bookrack/internal/pkg/validator"
)

type repoDB interface {
	ListBooksByUser(ctx context.Context, userID int64) ([]entity.Book, error)
	GetBookByID(ctx context.Context, id int64) (*entity.Book, error)
	CreateBook(ctx context.Context, in entity.NewBook) (*entity.Book, error)
	DeleteBook(ctx context.Context, id, userID int64) error
	UpdateBookCover(ctx context.Context, id, userID int64, coverKey string) error
}

// Usecase implements the catalog operations over a user's books.
type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	storage   storage.Storage
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

// Dependency lists everything Usecase needs.
type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	Storage    storage.Storage
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

// New constructs the catalog usecase.
func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		storage:   dep.Storage,
		uid:       dep.UID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("catalog.usecase").Start(ctx, name)
}

func (s *Usecase) authenticatedUserID(ctx context.Context) (int64, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return 0, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	userID, err := strconv.ParseInt(clm.Subject, 10, 64)
	if err != nil {
		return 0, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return userID, nil
}
