package mailer

import (
	"context"

	"fittrack/gym-app/internal/config"

	"gopkg.in/gomail.v2"
)

// smtpMailer implements the Mailer interface over plain SMTP.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a Mailer backed by the configured SMTP server.
func NewSMTPMailer(cfg config.MailConfig) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers a single HTML email. gomail dials synchronously, so the
// call runs in a goroutine and the context bounds how long we wait; a
// stuck SMTP conversation must not stall the caller's whole tick.
func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
