package service

import (
	"errors"
	"testing"

	"congocar/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent    []entities.Email
	failOn  int // 1-based index of the send that fails; 0 = never
	failErr error
}

func (s *recordingSender) Send(mail entities.Email) error {
	if s.failOn == len(s.sent)+1 {
		return s.failErr
	}
	s.sent = append(s.sent, mail)
	return nil
}

func testPayload() entities.NotificationPayload {
	return entities.NotificationPayload{
		Name:    "Jean",
		Email:   "j@x.com",
		Phone:   "+243000000",
		Car:     "Mercedes-Benz Classe S (2024)",
		Message: "Je suis intéressé.",
	}
}

func TestBuildReservationEmails(t *testing.T) {
	admin, client := BuildReservationEmails(testPayload(), "operator@congocar.com")

	assert.Equal(t, "operator@congocar.com", admin.To)
	assert.Equal(t, "Nouvelle réservation – CONGOCAR EXCLUSIVE", admin.Subject)
	assert.Contains(t, admin.Body, "Nom: Jean")
	assert.Contains(t, admin.Body, "Email: j@x.com")
	assert.Contains(t, admin.Body, "Téléphone: +243000000")
	assert.Contains(t, admin.Body, "Voiture: Mercedes-Benz Classe S (2024)")
	assert.Contains(t, admin.Body, "Message: Je suis intéressé.")

	assert.Equal(t, "j@x.com", client.To)
	assert.Equal(t, "Confirmation de votre réservation – CONGOCAR EXCLUSIVE", client.Subject)
	assert.Contains(t, client.Body, "Bonjour Jean")
	assert.Contains(t, client.Body, "Mercedes-Benz Classe S (2024)")
	assert.Contains(t, client.Body, "+243000000")

	assert.Equal(t, "CONGOCAR EXCLUSIVE <no-reply@congocar.com>", admin.From)
	assert.Equal(t, admin.From, client.From)
}

func TestBuildReservationEmailsEmptyMessageDefaults(t *testing.T) {
	payload := testPayload()
	payload.Message = ""
	admin, _ := BuildReservationEmails(payload, "operator@congocar.com")
	assert.Contains(t, admin.Body, "Message: Aucun message")
}

func TestSendReservationNotificationSendsBoth(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "operator@congocar.com")
	sender := &recordingSender{}
	svc := NewNotificationService(sender)

	err := svc.SendReservationNotification(testPayload())
	require.NoError(t, err)
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "operator@congocar.com", sender.sent[0].To)
	assert.Equal(t, "j@x.com", sender.sent[1].To)
}

func TestSendReservationNotificationFirstFailureAborts(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "operator@congocar.com")
	sender := &recordingSender{failOn: 1, failErr: errors.New("relay rejected")}
	svc := NewNotificationService(sender)

	err := svc.SendReservationNotification(testPayload())
	require.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestSendReservationNotificationSecondFailureFailsWhole(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "operator@congocar.com")
	sender := &recordingSender{failOn: 2, failErr: errors.New("relay rejected")}
	svc := NewNotificationService(sender)

	err := svc.SendReservationNotification(testPayload())
	require.Error(t, err)
	// The operator email went out, but the call still reports one failure.
	assert.Len(t, sender.sent, 1)
}

func TestSendReservationNotificationMissingOperator(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	sender := &recordingSender{}
	svc := NewNotificationService(sender)

	err := svc.SendReservationNotification(testPayload())
	require.Error(t, err)
	assert.Empty(t, sender.sent)
}
