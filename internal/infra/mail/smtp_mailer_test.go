package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"natours/config"
	"natours/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

func newCapturingMailer(sendErr error) (*smtpMailer, *[]*gomail.Msg) {
	sent := []*gomail.Msg{}

	return &smtpMailer{
		from:     "hello@natours.io",
		fromName: "Natours",
		send: func(_ context.Context, msg *gomail.Msg) error {
			sent = append(sent, msg)

			return sendErr
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, &sent
}

func TestSMTPMailer_SendWelcome(t *testing.T) {
	mailer, sent := newCapturingMailer(nil)
	user := &entity.User{Name: "Laura Wilson", Email: "laura@example.com"}

	err := mailer.SendWelcome(context.Background(), user, "http://localhost:8000/confirm/abc")
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	msg := (*sent)[0]
	assert.Equal(t, []string{subjectWelcome}, msg.GetGenHeader(gomail.HeaderSubject))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "laura@example.com")
}

func TestSMTPMailer_SendFailure(t *testing.T) {
	mailer, _ := newCapturingMailer(errors.New("connection refused"))

	err := mailer.SendPasswordReset(context.Background(), &entity.User{Name: "Sam", Email: "sam@example.com"}, "http://x/reset")
	assert.ErrorContains(t, err, "connection refused")
}

func TestSMTPMailer_InvalidRecipient(t *testing.T) {
	mailer, sent := newCapturingMailer(nil)

	err := mailer.SendWelcome(context.Background(), &entity.User{Name: "Sam", Email: "not an address"}, "http://x")
	assert.Error(t, err)
	assert.Empty(t, *sent)
}

func TestSMTPMailer_SendBookingConfirmation(t *testing.T) {
	mailer, sent := newCapturingMailer(nil)
	user := &entity.User{Name: "Aarav Lynn", Email: "aarav@example.com"}
	tour := &entity.Tour{Name: "The Sea Explorer"}

	err := mailer.SendBookingConfirmation(context.Background(), user, tour, "http://localhost:8000/api/v1/bookings/b1/ticket")
	require.NoError(t, err)
	require.Len(t, *sent, 1)
	assert.Equal(t, []string{subjectBooking}, (*sent)[0].GetGenHeader(gomail.HeaderSubject))

	text := renderText(bookingContent("Aarav", tour.Name, "http://t"))
	assert.Contains(t, text, "Thank you for booking The Sea Explorer!")
	assert.Contains(t, text, "Get your ticket: http://t")
}

func TestRenderTemplates(t *testing.T) {
	content := passwordResetContent("Sam", "http://localhost:8000/api/v1/users/resetPassword/tok")

	html, err := renderHTML(subjectPasswordReset, content)
	require.NoError(t, err)
	assert.Contains(t, html, "Hi Sam,")
	assert.Contains(t, html, `href="http://localhost:8000/api/v1/users/resetPassword/tok"`)
	assert.Contains(t, html, "<title>"+subjectPasswordReset+"</title>")

	text := renderText(content)
	assert.Contains(t, text, "Reset your password: http://localhost:8000/api/v1/users/resetPassword/tok")
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(&config.Config{}, slog.Default())
	assert.Error(t, err)

	mailer, err := NewSMTPMailer(&config.Config{Email: &config.EmailConfig{Host: "smtp.mailtrap.io", Port: 2525}}, slog.Default())
	require.NoError(t, err)
	assert.NotNil(t, mailer)
}
