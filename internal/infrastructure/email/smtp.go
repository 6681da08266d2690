package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/domus-inc/domus/internal/shared/config"
)

// Sender delivers ticket notification emails. Implementations must be safe
// for concurrent use.
type Sender interface {
	SendTicketCreatedEmail(to, ticketTitle string, ticketID uint) error
	SendTicketStatusChangedEmail(to, ticketTitle string, ticketID uint, newStatus string) error
	SendTicketAssignedEmail(to, ticketTitle string, ticketID uint) error
}

type SMTPEmailService struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendTicketCreatedEmail(to, ticketTitle string, ticketID uint) error {
	subject := fmt.Sprintf("Ticket #%d opened: %s", ticketID, ticketTitle)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your service ticket has been opened</h2>
			<p>Ticket <strong>#%d</strong>: %s</p>
			<p>We will keep you updated as it progresses.</p>
		</body>
		</html>
	`, ticketID, html.EscapeString(ticketTitle))

	plainBody := fmt.Sprintf(`
Your service ticket has been opened.

Ticket #%d: %s

We will keep you updated as it progresses.
	`, ticketID, ticketTitle)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketStatusChangedEmail(to, ticketTitle string, ticketID uint, newStatus string) error {
	subject := fmt.Sprintf("Ticket #%d is now %s", ticketID, newStatus)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket status updated</h2>
			<p>Ticket <strong>#%d</strong>: %s</p>
			<p>New status: <strong>%s</strong></p>
		</body>
		</html>
	`, ticketID, html.EscapeString(ticketTitle), html.EscapeString(newStatus))

	plainBody := fmt.Sprintf(`
Ticket status updated.

Ticket #%d: %s
New status: %s
	`, ticketID, ticketTitle, newStatus)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketAssignedEmail(to, ticketTitle string, ticketID uint) error {
	subject := fmt.Sprintf("Ticket #%d assigned to you", ticketID)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>A ticket has been assigned to you</h2>
			<p>Ticket <strong>#%d</strong>: %s</p>
			<p>Please review it at your earliest convenience.</p>
		</body>
		</html>
	`, ticketID, html.EscapeString(ticketTitle))

	plainBody := fmt.Sprintf(`
A ticket has been assigned to you.

Ticket #%d: %s

Please review it at your earliest convenience.
	`, ticketID, ticketTitle)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
