package inbound

import (
	"context"
	"log/slog"
	"slices"

	"bookrack/internal/pkg/config"
	"bookrack/internal/pkg/goroutine"
	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/messaging"
	"bookrack/internal/pkg/uid"
	"bookrack/internal/shared/event"
)

type consumer struct {
	name    string
	source  string
	group   string
	handler messaging.Handler
}

// RegisterMQConsumer starts the notification consumers enabled in config.
//
// Each consumer runs on the goroutine manager and blocks until the parent
// context is canceled.
func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	gm *goroutine.Manager,
	messenger messaging.Messaging,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	handler := NewMQHandler(uc, uuid, ins)

	consumers := []consumer{
		{
			name:    "user_verified",
			source:  event.UserVerifiedDestination,
			group:   event.UserVerifiedConsumerNotification,
			handler: handler.UserVerified,
		},
	}

	enabled := cfg.GetArray("modules.notification.consumer_names")

	for _, c := range consumers {
		if !slices.Contains(enabled, c.name) {
			slog.InfoContext(ctx, "mq consumer disabled", "consumer", c.name)
			continue
		}

		gm.Go(ctx, func(ctx context.Context) error {
			slog.InfoContext(ctx, "mq consumer started", "consumer", c.name, "source", c.source)
			return messenger.Consume(ctx, c.source, c.group, c.handler)
		})
	}
}
