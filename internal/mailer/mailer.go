package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/ahmetcoskunkizilkaya/expense-tracker-backend/internal/config"
)

// Sender delivers outbound email. No auth route currently sends mail;
// the transport is constructed at startup so password-reset and
// notification flows can use it when they land.
type Sender interface {
	Send(to, subject, body string) error
}

type SMTPSender struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &SMTPSender{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: from,
	}
}

// Configured reports whether the transport has enough settings to send.
func (s *SMTPSender) Configured() bool {
	return s.host != "" && s.user != ""
}

func (s *SMTPSender) Send(to, subject, body string) error {
	if !s.Configured() {
		return fmt.Errorf("smtp transport is not configured")
	}

	msg := []byte("From: " + s.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	if err := smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
