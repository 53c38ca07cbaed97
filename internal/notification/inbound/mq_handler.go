package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"bookrack/internal/notification/usecase"
	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/messaging"
	"bookrack/internal/pkg/uid"
	"bookrack/internal/shared/event"
)

type uc interface {
	ConsumeUserVerified(ctx context.Context, in usecase.ConsumeUserVerifiedInput) error
}

// MQHandler adapts broker messages into usecase calls.
type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func NewMQHandler(uc uc, uuid uid.StringID, ins instrument.Instrumentation) *MQHandler {
	return &MQHandler{uc: uc, uuid: uuid, ins: ins}
}

// ensureCorrelationID propagates the publisher's correlation id when present,
// otherwise mints a fresh one so downstream logs stay traceable.
func (h *MQHandler) ensureCorrelationID(ctx context.Context, msg messaging.Message) context.Context {
	if cid := msg.Headers()["cID"]; cid != "" {
		return instrument.SetCorrelationID(ctx, cid)
	}

	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

// UserVerified handles user verification events.
//
// Malformed payloads are acknowledged so they are not redelivered forever;
// usecase errors propagate so the broker can retry.
func (h *MQHandler) UserVerified(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg)
	ctx, span := h.ins.Tracer("notification.inbound").Start(ctx, "UserVerified")
	defer span.End()

	var payload event.UserVerifiedMessage
	if err := json.Unmarshal(msg.Body(), &payload); err != nil {
		slog.ErrorContext(ctx, "failed to decode user verified message", "error", err, "source", msg.Source())
		return nil
	}

	return h.uc.ConsumeUserVerified(ctx, usecase.ConsumeUserVerifiedInput{
		UserID:   payload.UserID,
		Email:    payload.Email,
		FullName: payload.FullName,
	})
}
