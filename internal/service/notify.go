package service

import (
	"fmt"
	"net/smtp"
	"os"

	"congocar/internal/entities"
)

// SMTPSender delivers mail through a plain SMTP relay. The relay credential
// is the operator mailbox itself (ADMIN_EMAIL / ADMIN_EMAIL_PASSWORD).
type SMTPSender struct{}

func (SMTPSender) Send(mail entities.Email) error {
	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}
	smtpUser := os.Getenv("ADMIN_EMAIL")
	smtpPass := os.Getenv("ADMIN_EMAIL_PASSWORD")
	if smtpUser == "" || smtpPass == "" {
		return fmt.Errorf("ADMIN_EMAIL or ADMIN_EMAIL_PASSWORD not set")
	}

	msg := "From: " + mail.From + "\n" +
		"To: " + mail.To + "\n" +
		"Subject: " + mail.Subject + "\n\n" +
		mail.Body

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := smtpHost + ":" + smtpPort
	if err := smtp.SendMail(addr, auth, smtpUser, []string{mail.To}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
