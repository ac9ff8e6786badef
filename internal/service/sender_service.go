package service

import (
	"fmt"
	"log"
	"os"

	"congocar/internal/entities"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender delivers mail through the SendGrid API instead of the SMTP
// relay. Selected with EMAIL_PROVIDER=sendgrid.
type SendGridSender struct{}

func (SendGridSender) Send(email entities.Email) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = "no-reply@congocar.com"
	}

	from := mail.NewEmail("CONGOCAR EXCLUSIVE", fromEmail)
	to := mail.NewEmail("", email.To)
	message := mail.NewSingleEmail(from, email.Subject, to, email.Body, "")

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// NewEmailSenderFromEnv picks the outbound backend from EMAIL_PROVIDER.
// Default is the SMTP relay.
func NewEmailSenderFromEnv() EmailSender {
	if os.Getenv("EMAIL_PROVIDER") == "sendgrid" {
		log.Println("Email sender: SendGrid")
		return SendGridSender{}
	}
	log.Println("Email sender: SMTP relay")
	return SMTPSender{}
}
