package email

import (
	"context"
	"html/template"
	"strings"

	"go.opentelemetry.io/otel/codes"

	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/mail"
)

const welcomeSubject = "Welcome to Book Catalog App"

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Welcome, {{.FullName}}!</h2>
  <p>Your email has been verified and your account is ready.</p>
  <p>Start building your personal book catalog today.</p>
</div>
`))

// Email sends notification emails through the shared mail client.
type Email struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Email {
	return &Email{client: client, ins: ins}
}

// SendWelcome delivers the post-verification welcome email.
func (e *Email) SendWelcome(ctx context.Context, email, fullName string) error {
	ctx, span := e.ins.Tracer("notification.outbound.email").Start(ctx, "SendWelcome")
	defer span.End()

	var body strings.Builder
	if err := welcomeTemplate.Execute(&body, struct{ FullName string }{FullName: fullName}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err := e.client.Send(ctx, mail.Message{
		To:      []string{email},
		Subject: welcomeSubject,
		Body:    body.String(),
		IsHTML:  true,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
