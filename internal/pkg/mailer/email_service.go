package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendAssignmentNotice(toEmail, agentName, sessionToken, priority string) error
	SendEscalationAlert(toEmail, sessionToken, reason string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendAssignmentNotice(toEmail, agentName, sessionToken, priority string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "New Chat Session Assigned")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>A chat session has been assigned to you.</p>
			<p><b>Session:</b> %s</p>
			<p><b>Priority:</b> %s</p>
			<p>Please open your agent dashboard to respond.</p>
		</div>
	`, agentName, sessionToken, priority)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send assignment notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Assignment notice sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendEscalationAlert(toEmail, sessionToken, reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Chat Session Escalated")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Session Escalated</h2>
			<p>A visitor requested a human advisor.</p>
			<p><b>Session:</b> %s</p>
			<p><b>Reason:</b> %s</p>
			<p>The session is waiting in the unassigned queue.</p>
		</div>
	`, sessionToken, reason)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send escalation alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Escalation alert sent to %s\n", toEmail)
	return nil
}
