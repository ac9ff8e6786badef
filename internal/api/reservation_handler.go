package api

import (
	"net/http"

	"congocar/internal/entities"
	"congocar/internal/service"
)

type ReservationHandler struct {
	Service *service.ReservationService
}

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// CreateReservation records a buyer's request of interest for one car. The
// email notification happens after the insert and never affects the response.
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.ReservationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reservation, err := h.Service.CreateReservation(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.ReservationResponse{
		ReservationID: reservation.ID,
		Message:       "Reservation confirmed.",
	})
}
