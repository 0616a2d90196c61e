// Package mailer delivers transactional email over SMTP. In development
// (Enabled=false) messages are logged instead of sent so auth flows can be
// exercised without an SMTP account.
package mailer

import (
	"fmt"

	"accverse/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	SendVerificationCode(email, code string) error
	SendPasswordResetCode(email, code string) error
}

type smtpMailer struct {
	dialer  *gomail.Dialer
	from    string
	enabled bool
	log     *zap.Logger
}

func NewMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		dialer:  gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:    config.From,
		enabled: config.Enabled,
		log:     log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) SendVerificationCode(email, code string) error {
	body := fmt.Sprintf(`
		<h3>Verify your email address</h3>
		<p>Welcome to Accverse. Use the following code to verify your email:</p>
		<p><strong>%s</strong></p>
		<p>The code expires in 10 minutes. If you did not create an account, ignore this email.</p>
	`, code)

	return m.send(email, "Verify your Accverse account", body)
}

func (m *smtpMailer) SendPasswordResetCode(email, code string) error {
	body := fmt.Sprintf(`
		<h3>Password reset requested</h3>
		<p>We received a request to reset the password for your account.</p>
		<p>Use the following code to reset your password: <strong>%s</strong></p>
		<p>If you did not request this change, you can ignore this email.</p>
	`, code)

	return m.send(email, "Reset your Accverse password", body)
}

func (m *smtpMailer) send(to, subject, body string) error {
	if !m.enabled {
		m.log.Info("Email delivery disabled, logging instead",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}
