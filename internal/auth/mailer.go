package auth

import (
	"hotelapp-backend/internal/config"

	"github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

// Mailer sends templated mail. The core only needs "send a message";
// delivery mechanics live behind this interface.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

// LogMailer is used when SMTP is not configured (and in tests).
type LogMailer struct{}

func (LogMailer) Send(to, subject, _ string) error {
	logrus.Infof("mail not sent (SMTP disabled): to=%s subject=%q", to, subject)
	return nil
}

// NewMailer picks the SMTP mailer when a host is configured.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return LogMailer{}
	}
	return NewSMTPMailer(cfg)
}
