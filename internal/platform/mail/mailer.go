// Package mail sends account confirmation email over SMTP.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Config holds the SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// BaseURL is the public address of this service, used to build
	// confirmation links.
	BaseURL string
}

// Mailer delivers confirmation email to newly registered users.
type Mailer struct {
	cfg Config
	// send is swappable in tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer creates a Mailer with the given SMTP settings.
func NewMailer(cfg Config) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

// SendConfirmation mails the confirmation link carrying token to the
// given address.
func (m *Mailer) SendConfirmation(email, username, token string) error {
	link := fmt.Sprintf("%s/api/auth/confirmed_email/%s", strings.TrimRight(m.cfg.BaseURL, "/"), token)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", email)
	b.WriteString("Subject: Confirm your email\r\n")
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\nConfirm your email address by following this link:\r\n%s\r\n", username, link)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	if err := m.send(addr, auth, m.cfg.From, []string{email}, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send confirmation mail: %w", err)
	}
	return nil
}
