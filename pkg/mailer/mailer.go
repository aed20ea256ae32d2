package mailer

import (
	"fmt"
	"log"
	"os"
	"smartlearn-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

// NewFromEnv returns a SendGrid mailer when SENDGRID_API_KEY is set and
// a console mailer otherwise, so local runs need no external account.
func NewFromEnv() domain.Mailer {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY not set, emails will be printed to console")
		return &consoleMailer{}
	}
	return &sendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  "SmartLearn",
		fromEmail: os.Getenv("MAIL_FROM"),
	}
}

func (m *sendGridMailer) Send(to, subject, body string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, body)
	resp, err := m.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

type consoleMailer struct{}

func (m *consoleMailer) Send(to, subject, body string) error {
	fmt.Printf("--- EMAIL ---\nTo: %s\nSubject: %s\nBody: %s\n-------------\n", to, subject, body)
	return nil
}
