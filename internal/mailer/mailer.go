package mailer

import "context"

// Mailer defines the interface for sending transactional email. It is
// consumed by the session reminder loop and the contact-form handler.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
