package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTP is a Mail implementation that delivers via a plain SMTP relay.
type SMTP struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTP creates an SMTP mailer. host and port address the relay, from is
// used as the envelope and header sender. username may be empty for relays
// without authentication.
func NewSMTP(host string, port int, from, username, password string) *SMTP {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTP{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
		auth: auth,
	}
}

// Send delivers the message. The context is consulted before dialing since
// net/smtp does not support cancellation mid-session.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	contentType := "text/plain; charset=UTF-8"
	if msg.IsHTML {
		contentType = "text/html; charset=UTF-8"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	fmt.Fprintf(&b, "\r\n%s\r\n", msg.Body)

	return smtp.SendMail(s.addr, s.auth, s.from, msg.To, []byte(b.String()))
}
