package notification

import (
	"context"

	"bookrack/internal/notification/inbound"
	"bookrack/internal/notification/outbound/email"
	"bookrack/internal/notification/usecase"
	"bookrack/internal/pkg/config"
	"bookrack/internal/pkg/goroutine"
	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/mail"
	"bookrack/internal/pkg/messaging"
	"bookrack/internal/pkg/uid"
	"bookrack/internal/pkg/validator"
)

type Dependency struct {
	Messaging  messaging.Messaging        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	emailNotification := email.New(dep.Mail, dep.Instrument)

	uc := usecase.NewNotification(usecase.Dependency{
		RepoMail:   emailNotification,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Instrument: dep.Instrument,
	})

	inbound.RegisterMQConsumer(ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)

	return nil
}
