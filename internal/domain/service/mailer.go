package service

import "context"

// Mail is a single outbound email message.
type Mail struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer defines the interface for outbound email. Implementations may be
// no-ops when no SMTP credentials are configured; callers treat delivery as
// best-effort and never fail a request on a mail error.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
