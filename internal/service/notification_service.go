package service

import (
	"fmt"
	"os"

	"congocar/internal/entities"
)

const (
	notificationFrom = "CONGOCAR EXCLUSIVE <no-reply@congocar.com>"

	adminSubject  = "Nouvelle réservation – CONGOCAR EXCLUSIVE"
	clientSubject = "Confirmation de votre réservation – CONGOCAR EXCLUSIVE"
)

// BuildReservationEmails renders the two fixed plain-text reservation emails:
// one to the site operator, one confirming to the requester.
func BuildReservationEmails(payload entities.NotificationPayload, operatorEmail string) (admin, client entities.Email) {
	message := payload.Message
	if message == "" {
		message = "Aucun message"
	}

	admin = entities.Email{
		From:    notificationFrom,
		To:      operatorEmail,
		Subject: adminSubject,
		Body: fmt.Sprintf(
			"Une nouvelle réservation a été effectuée :\n\n"+
				"Nom: %s\n"+
				"Email: %s\n"+
				"Téléphone: %s\n"+
				"Voiture: %s\n"+
				"Message: %s",
			payload.Name, payload.Email, payload.Phone, payload.Car, message,
		),
	}

	client = entities.Email{
		From:    notificationFrom,
		To:      payload.Email,
		Subject: clientSubject,
		Body: fmt.Sprintf(
			"Bonjour %s,\n\n"+
				"Merci pour votre réservation pour le véhicule suivant : %s.\n"+
				"L'administrateur de CONGOCAR EXCLUSIVE a bien reçu votre demande et vous contactera très prochainement au numéro %s.\n\n"+
				"Cordialement,\n"+
				"L'équipe CONGOCAR EXCLUSIVE",
			payload.Name, payload.Car, payload.Phone,
		),
	}

	return admin, client
}

// EmailSender delivers one message through an outbound backend.
type EmailSender interface {
	Send(mail entities.Email) error
}

// NotificationService sends the reservation notification pair. Stateless: one
// synchronous attempt per call, no queue, no partial-success reporting.
type NotificationService struct {
	Sender EmailSender
}

func NewNotificationService(sender EmailSender) *NotificationService {
	return &NotificationService{Sender: sender}
}

// SendReservationNotification sends the operator email then the requester
// confirmation. The first failure aborts the call; the caller treats the
// whole thing as advisory.
func (s *NotificationService) SendReservationNotification(payload entities.NotificationPayload) error {
	operatorEmail := os.Getenv("ADMIN_EMAIL")
	if operatorEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL not set")
	}

	adminMail, clientMail := BuildReservationEmails(payload, operatorEmail)
	if err := s.Sender.Send(adminMail); err != nil {
		return fmt.Errorf("sending operator notification: %w", err)
	}
	if err := s.Sender.Send(clientMail); err != nil {
		return fmt.Errorf("sending requester confirmation: %w", err)
	}
	return nil
}
