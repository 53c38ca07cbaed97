package mail

import "context"

// Message is a single outbound email.
type Message struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

// Mail sends email messages.
type Mail interface {
	// Send delivers the message synchronously and returns an error when
	// delivery could not be handed off to the mail server.
	Send(ctx context.Context, msg Message) error
}
