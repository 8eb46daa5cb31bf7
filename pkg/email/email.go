package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
)

// Config holds SMTP configuration
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	NotifyEmail  string
}

// Service handles email sending
type Service struct {
	config Config
}

// NewService creates a new email service
func NewService(config Config) *Service {
	return &Service{config: config}
}

// Enabled reports whether the service has enough configuration to send mail
func (s *Service) Enabled() bool {
	return s.config.SMTPHost != "" && s.config.NotifyEmail != ""
}

// SendContractExpiryNotice mails the configured address a list of vehicles
// whose contracts expire within the sweep window
func (s *Service) SendContractExpiryNotice(vehicles []entity.Vehicle, windowDays int) error {
	htmlContent, err := s.renderExpiryNotice(vehicles, windowDays)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("FleetDesk: %d vehicle contract(s) expiring soon", len(vehicles))
	message := s.buildHTMLEmail(s.config.NotifyEmail, subject, htmlContent)

	return s.sendEmail(s.config.NotifyEmail, message)
}

// sendEmail sends an email using SMTP
func (s *Service) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

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

type expiryRow struct {
	Number string
	Name   string
	Expiry string
}

type expiryNoticeData struct {
	WindowDays int
	Rows       []expiryRow
}

// renderExpiryNotice renders the contract expiry email template
func (s *Service) renderExpiryNotice(vehicles []entity.Vehicle, windowDays int) (string, error) {
	tmpl, err := template.New("contract_expiry").Parse(expiryNoticeTemplate)
	if err != nil {
		return "", err
	}

	data := expiryNoticeData{WindowDays: windowDays}
	for _, v := range vehicles {
		expiry := ""
		if v.ContractExpiry != nil {
			expiry = v.ContractExpiry.Format(time.DateOnly)
		}
		data.Rows = append(data.Rows, expiryRow{Number: v.Number, Name: v.Name, Expiry: expiry})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

const expiryNoticeTemplate = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Vehicle contracts expiring within {{.WindowDays}} days</h2>
    <table border="1" cellpadding="6" cellspacing="0" style="border-collapse: collapse;">
      <tr><th>Number</th><th>Name</th><th>Contract expiry</th></tr>
      {{range .Rows}}
      <tr><td>{{.Number}}</td><td>{{.Name}}</td><td>{{.Expiry}}</td></tr>
      {{end}}
    </table>
    <p>Review these vehicles in the FleetDesk admin panel.</p>
  </body>
</html>`
