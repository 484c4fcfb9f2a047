package email

import (
	"errors"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider отправляет почту через gomail
type SMTPProvider struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.FromEmail, p.cfg.FromName))
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.BodyHTML)

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) Validate() error {
	if p.cfg.Host == "" || p.cfg.Port == 0 {
		return errors.New("smtp host and port are required")
	}
	if p.cfg.FromEmail == "" {
		return errors.New("from_email is required")
	}
	return nil
}

// NewEnquiryNotification собирает письмо провайдеру о новой заявке.
// Имя и текст приходят из публичной формы, поэтому экранируются.
func NewEnquiryNotification(to, businessName, clientName, eventType, message string) *Email {
	return &Email{
		To:      []string{to},
		Subject: fmt.Sprintf("New enquiry for %s", businessName),
		BodyHTML: fmt.Sprintf(
			"<p>%s sent you a new enquiry (%s).</p><blockquote>%s</blockquote><p>Reply from your dashboard.</p>",
			html.EscapeString(clientName), html.EscapeString(eventType), html.EscapeString(message),
		),
	}
}

// NewVerificationEmail собирает письмо с токеном подтверждения почты
func NewVerificationEmail(to, token string) *Email {
	return &Email{
		To:      []string{to},
		Subject: "Verify your email",
		BodyHTML: fmt.Sprintf(
			"<p>Your verification code:</p><p><b>%s</b></p>",
			token,
		),
	}
}
