package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"bookrack/internal/pkg/config"
	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/validator"
)

type repoMail interface {
	SendWelcome(ctx context.Context, email, fullName string) error
}

// Usecase handles notification delivery triggered by domain events.
type Usecase struct {
	repoMail  repoMail
	validator validator.Validator
	cfg       config.Config
	ins       instrument.Instrumentation
}

// Dependency lists everything Usecase needs.
type Dependency struct {
	RepoMail   repoMail
	Validator  validator.Validator
	Config     config.Config
	Instrument instrument.Instrumentation
}

// NewNotification constructs the notification usecase.
func NewNotification(dep Dependency) *Usecase {
	return &Usecase{
		repoMail:  dep.RepoMail,
		validator: dep.Validator,
		cfg:       dep.Config,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}
