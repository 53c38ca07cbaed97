package mailer

import (
	"context"
	"html/template"
	"strings"

	"go.opentelemetry.io/otel/codes"

	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/mail"
)

const verificationSubject = "Verify Your Email - Book Catalog App"

var verificationTemplate = template.Must(template.New("verification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Email Verification</h2>
  <h3>Welcome {{.Name}}!</h3>
  <p>Thank you for signing up! Please use the following code to verify your email address:</p>
  <div style="background-color: #f4f4f4; padding: 20px; text-align: center; margin: 20px 0;">
    <h1 style="color: #007bff; font-size: 32px; letter-spacing: 8px; margin: 0;">{{.Code}}</h1>
  </div>
  <p>This code will expire in <strong>10 minutes</strong>.</p>
  <p style="color: #666; font-size: 14px;">If you didn't request this verification, please ignore this email.</p>
</div>
`))

// Mailer sends identity emails through the shared mail client.
type Mailer struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func NewMailer(client mail.Mail, ins instrument.Instrumentation) *Mailer {
	return &Mailer{client: client, ins: ins}
}

// SendVerificationCode delivers the signup code synchronously; the caller
// treats a failure as a failed operation.
func (m *Mailer) SendVerificationCode(ctx context.Context, email, fullName, code string) error {
	ctx, span := m.ins.Tracer("identity.outbound.mailer").Start(ctx, "SendVerificationCode")
	defer span.End()

	var body strings.Builder
	if err := verificationTemplate.Execute(&body, struct{ Name, Code string }{Name: fullName, Code: code}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err := m.client.Send(ctx, mail.Message{
		To:      []string{email},
		Subject: verificationSubject,
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
