package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"shop-backend/config"
)

// Mailer delivers outbound mail. The SMTP implementation below is the real
// one; tests substitute a recording fake.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	server string
	port   string
	email  string
	pass   string
	sender string
}

func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	return &SMTPMailer{
		server: cfg.SMTPServer,
		port:   cfg.SMTPPort,
		email:  cfg.SenderEmail,
		pass:   cfg.SenderPass,
		sender: cfg.SenderName,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.email == "" || m.pass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", m.sender, m.email))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.email, m.pass, m.server)
	addr := m.server + ":" + m.port
	return smtp.SendMail(addr, auth, m.email, []string{to}, []byte(msg.String()))
}
