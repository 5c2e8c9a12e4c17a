package email

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
	"time"
)

// ErrNotConfigured is returned when no SMTP host is set
var ErrNotConfigured = errors.New("email: SMTP host not configured")

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	FrontendURL  string
}

// EmailService sends operator account mail over SMTP
type EmailService struct {
	config   EmailConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config, sendMail: smtp.SendMail}
}

// SendPasswordResetEmail mails the reset link for token to toEmail
func (s *EmailService) SendPasswordResetEmail(toEmail, token string, expiresIn time.Duration) error {
	if s.config.SMTPHost == "" {
		return ErrNotConfigured
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.config.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	htmlContent, err := renderPasswordResetEmail(toEmail, resetURL, expiresIn)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	message := s.buildHTMLEmail(toEmail, "Reset your NJV Travels password", htmlContent)
	return s.sendEmail(toEmail, message)
}

func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := s.sendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

var passwordResetTmpl = template.Must(template.New("password_reset").Parse(passwordResetTemplate))

func renderPasswordResetEmail(email, resetURL string, expiresIn time.Duration) (string, error) {
	data := struct {
		Email     string
		ResetURL  string
		ExpiresIn string
	}{
		Email:     email,
		ResetURL:  resetURL,
		ExpiresIn: expiresIn.String(),
	}

	var buf bytes.Buffer
	if err := passwordResetTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const passwordResetTemplate = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Reset your password</title></head>
<body style="font-family: Arial, sans-serif; color: #2d3748;">
  <h2>NJV Travels</h2>
  <p>A password reset was requested for <strong>{{.Email}}</strong>.</p>
  <p><a href="{{.ResetURL}}">Reset your password</a>. The link expires in {{.ExpiresIn}}.</p>
  <p>If you did not ask for this, ignore this email. Your password stays the same.</p>
  <p style="font-size: 12px; color: #718096;">{{.ResetURL}}</p>
</body>
</html>
`
