package services

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/mentorlink-dev/mentorlink/internal/config"
	"github.com/sirupsen/logrus"
)

// Mailer sends account emails via SMTP.
type Mailer struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewMailer creates a new mail sender.
func NewMailer(cfg *config.Config, logger *logrus.Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		logger: logger,
	}
}

// SendVerification sends the email-verification link issued at registration.
func (m *Mailer) SendVerification(to, name, token string) error {
	e := email.NewEmail()
	e.From = m.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Verify your MentorLink email address"

	link := fmt.Sprintf("%s/api/auth/confirm?token=%s", m.cfg.BaseURL, token)

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Welcome to MentorLink. Please confirm your email address by opening the link below:\n\n"+
			"%s\n\n"+
			"If you did not create this account, you can ignore this message.\n"+
			"\nBest regards,\nMentorLink",
		name, link,
	)
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", m.cfg.SMTPHost, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)

	if err := e.Send(addr, auth); err != nil {
		m.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
