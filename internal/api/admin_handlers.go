package api

import (
	"net/http"

	"congocar/internal/db"
	"congocar/internal/entities"
	"congocar/internal/service"

	"github.com/gorilla/mux"
)

// AdminHandler serves the three dashboard views: cars, reservations and
// messages. Every list is a fresh fetch; nothing is cached across requests.
type AdminHandler struct {
	Cars         *service.CarService
	Reservations *service.ReservationService
	Messages     *service.MessageService
}

func NewAdminHandler(cars *service.CarService, reservations *service.ReservationService, messages *service.MessageService) *AdminHandler {
	return &AdminHandler{
		Cars:         cars,
		Reservations: reservations,
		Messages:     messages,
	}
}

func (h *AdminHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Cars.ListCatalogue("", "")
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if cars == nil {
		cars = []db.Car{}
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *AdminHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req entities.CarRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	car, err := h.Cars.CreateCar(&req)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *AdminHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req entities.CarRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	car, err := h.Cars.UpdateCar(id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *AdminHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Cars.DeleteCar(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Car deleted"})
}

// ToggleCarStatus flips a car between "Disponible" and "Vendu".
func (h *AdminHandler) ToggleCarStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	status, err := h.Cars.ToggleStatus(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Reservations.ListReservations()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if reservations == nil {
		reservations = []entities.AdminReservation{}
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *AdminHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Reservations.DeleteReservation(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reservation deleted"})
}

func (h *AdminHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Messages.ListMessages()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if messages == nil {
		messages = []db.UserMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}
