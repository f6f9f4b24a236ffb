// Package mail implements the outbound mailer port over SMTP.
package mail

import (
	"context"
	"log/slog"

	"sagedo/config"
	"sagedo/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// smtpMailer sends transactional mail through a configured SMTP relay.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// noopMailer logs and drops every message. Used when SMTP is not configured
// so the rest of the service never has to nil-check the mailer.
type noopMailer struct {
	logger *slog.Logger
}

// NewMailer builds a Mailer from config. Missing SMTP settings degrade to a
// logging no-op rather than an error.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		logger.Warn("SMTP not configured, outbound mail disabled")

		return &noopMailer{logger: logger}, nil
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Mail.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Mail.Username),
		gomail.WithPassword(cfg.Mail.Password),
	}

	client, err := gomail.NewClient(cfg.Mail.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "smtp client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.Mail.From,
		logger: logger,
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, mail service.Mail) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "mail from")
	}
	if err := msg.To(mail.To); err != nil {
		return errors.Wrap(err, "mail to")
	}
	msg.Subject(mail.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, mail.HTMLBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "send mail")
	}

	m.logger.Debug("Mail sent",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject))

	return nil
}

func (m *noopMailer) Send(_ context.Context, mail service.Mail) error {
	m.logger.Info("Mail suppressed, SMTP not configured",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject))

	return nil
}
