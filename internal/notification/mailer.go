// Package notification delivers freshly created credentials to the
// account holder out-of-band.
package notification

import (
	"context"
	"fmt"
	"time"

	"clinic-backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer is what the account usecase depends on; the SMTP implementation
// below is the production one.
type Mailer interface {
	SendCredentials(ctx context.Context, email, doctorID, password string) error
}

type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendCredentials mails the doctor id and password to the new account's
// email address. The send is bounded by the configured timeout and the
// caller's context, whichever ends first.
func (m *SMTPMailer) SendCredentials(ctx context.Context, email, doctorID, password string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your Doctor Credentials")
	msg.SetBody("text/plain", fmt.Sprintf("Doctor ID: %s\nPassword: %s", doctorID, password))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(msg)
	}()

	wait := m.cfg.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if until := time.Until(deadline); until > 0 && until < wait {
			wait = until
		}
	}

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send credentials mail: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}
