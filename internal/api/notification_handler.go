package api

import (
	"encoding/json"
	"log"
	"net/http"

	"congocar/internal/entities"
	"congocar/internal/service"
)

// NotificationHandler is the HTTP adapter over the notification service. It
// replaces the three per-host serverless bindings with a single endpoint.
type NotificationHandler struct {
	Service *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// SendReservation accepts {name, email, phone, car, message} and sends the
// operator and requester emails. Any failure reports a single generic error;
// there is no partial-success reporting.
func (h *NotificationHandler) SendReservation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload entities.NotificationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&payload); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Service.SendReservationNotification(payload); err != nil {
		log.Printf("Email Error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
