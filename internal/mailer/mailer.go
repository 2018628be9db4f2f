// Package mailer sends transactional email over SMTP.
package mailer

import (
	"errors"
	"net/textproto"

	"gopkg.in/gomail.v2"

	"vita/internal/config"
	"vita/internal/logger"
)

// Mailer is the narrow interface consumed by the password-reset flow.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends mail through a configured SMTP relay. When the relay
// rejects the credentials, it re-dials with fresh credentials and retries
// exactly once; any further failure is surfaced to the caller.
type SMTPMailer struct {
	cfg *config.Config

	// dial is swapped out in tests.
	dial func(msg *gomail.Message) error
}

// NewSMTPMailer creates an SMTPMailer from configuration.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	m := &SMTPMailer{cfg: cfg}
	m.dial = m.dialAndSend
	return m
}

// Send delivers a single HTML email.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	err := m.dial(msg)
	if err == nil {
		return nil
	}
	if !isAuthError(err) {
		return err
	}

	logger.Get().Warnw("smtp authorization failure, retrying once", "error", err.Error())
	return m.dial(msg)
}

// dialAndSend opens a fresh connection for each message. Vita sends a handful
// of reset emails, not bulk mail, so there is no persistent connection.
func (m *SMTPMailer) dialAndSend(msg *gomail.Message) error {
	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUsername, m.cfg.SMTPPassword)
	return d.DialAndSend(msg)
}

// isAuthError reports whether err is an authorization-class SMTP reply.
func isAuthError(err error) bool {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return true
		}
	}
	return false
}
