// Package mail delivers transactional emails over SMTP.
package mail

import (
	"context"
	"log/slog"
	"time"

	"natours/config"
	"natours/internal/domain/entity"
	"natours/internal/domain/service"
	"natours/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

const (
	subjectWelcome       = "Welcome to the Natours Family!"
	subjectPasswordReset = "Your password reset token (valid for only 10 minutes)"
	subjectBooking       = "Your Natours booking is confirmed"

	sendTimeout = 15 * time.Second
)

type smtpMailer struct {
	from     string
	fromName string
	send     func(ctx context.Context, msg *gomail.Msg) error
	logger   *slog.Logger
}

// NewSMTPMailer creates a Mailer from the email config section.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Email == nil || cfg.Email.Host == "" {
		return nil, errors.New("email host must be provided")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Email.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(sendTimeout),
	}
	if cfg.Email.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Email.Username),
			gomail.WithPassword(cfg.Email.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Email.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpMailer{
		from:     cfg.Email.From,
		fromName: cfg.Email.FromName,
		send: func(ctx context.Context, msg *gomail.Msg) error {
			return client.DialAndSendWithContext(ctx, msg)
		},
		logger: logger,
	}, nil
}

func (m *smtpMailer) SendWelcome(ctx context.Context, user *entity.User, confirmURL string) error {
	return m.deliver(ctx, user, subjectWelcome, welcomeContent(user.FirstName(), confirmURL))
}

func (m *smtpMailer) SendPasswordReset(ctx context.Context, user *entity.User, resetURL string) error {
	return m.deliver(ctx, user, subjectPasswordReset, passwordResetContent(user.FirstName(), resetURL))
}

func (m *smtpMailer) SendBookingConfirmation(ctx context.Context, user *entity.User, tour *entity.Tour, ticketURL string) error {
	return m.deliver(ctx, user, subjectBooking, bookingContent(user.FirstName(), tour.Name, ticketURL))
}

func (m *smtpMailer) deliver(ctx context.Context, user *entity.User, subject string, content emailContent) error {
	msg, err := m.buildMessage(user.Email, subject, content)
	if err != nil {
		return err
	}

	if err := m.send(ctx, msg); err != nil {
		return errors.Wrapf(err, "send %q", subject)
	}

	m.logger.InfoContext(ctx, "email sent",
		slog.String("to", user.Email),
		slog.String("subject", subject),
	)

	return nil
}

func (m *smtpMailer) buildMessage(to, subject string, content emailContent) (*gomail.Msg, error) {
	html, err := renderHTML(subject, content)
	if err != nil {
		return nil, errors.Wrap(err, "render email")
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return nil, errors.Wrap(err, "set sender")
	}
	if err := msg.To(to); err != nil {
		return nil, errors.Wrap(err, "set recipient")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, html)
	msg.AddAlternativeString(gomail.TypeTextPlain, renderText(content))

	return msg, nil
}
