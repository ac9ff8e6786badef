package api

import (
	"net/http"

	"congocar/internal/entities"
	"congocar/internal/service"
)

type MessageHandler struct {
	Service *service.MessageService
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{Service: svc}
}

// CreateMessage records a contact-form submission.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req entities.ContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.Service.CreateMessage(&req); err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Message sent."})
}
