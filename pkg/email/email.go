package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// Config holds SMTP configuration
type Config struct {
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	FromName    string
	FromEmail   string
	NotifyEmail string
}

// Service handles email sending
type Service struct {
	config Config
}

// NewService creates a new email service
func NewService(config Config) *Service {
	return &Service{config: config}
}

// Enabled reports whether SMTP delivery is configured. When false the
// senders are no-ops so contact forms still succeed without a mail server.
func (s *Service) Enabled() bool {
	return s.config.SMTPHost != "" && s.config.NotifyEmail != ""
}

// ContactNotification is the payload for an inquiry notification email.
type ContactNotification struct {
	Name        string
	Email       string
	Phone       string
	Town        string
	ServiceType string
	Message     string
}

var contactTemplate = template.Must(template.New("contact").Parse(`
<h2>New inquiry from {{.Name}}</h2>
<table>
  <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
  <tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
  <tr><td><strong>Town</strong></td><td>{{.Town}}</td></tr>
  <tr><td><strong>Service</strong></td><td>{{.ServiceType}}</td></tr>
</table>
<p>{{.Message}}</p>
`))

// SendContactNotification emails the configured notification address about
// a new contact form submission.
func (s *Service) SendContactNotification(n ContactNotification) error {
	if !s.Enabled() {
		return nil
	}

	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, n); err != nil {
		return fmt.Errorf("failed to render contact email: %w", err)
	}

	subject := fmt.Sprintf("New website inquiry from %s", n.Name)
	message := s.buildHTMLEmail(s.config.NotifyEmail, subject, body.String())
	return s.sendEmail(s.config.NotifyEmail, message)
}

// sendEmail sends an email using SMTP
func (s *Service) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUser, s.config.SMTPPass, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *Service) buildHTMLEmail(to, subject, htmlBody string) []byte {
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
